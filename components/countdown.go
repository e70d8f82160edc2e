package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CountdownData animates the countdown numbers. Each new number restarts
// the pulse.
type CountdownData struct {
	Shown int
	Pulse *gween.Tween
	Scale float32
}

var Countdown = donburi.NewComponentType[CountdownData]()
