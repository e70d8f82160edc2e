package components

import (
	cfg "github.com/automoto/showdown/config"
	"github.com/yohamta/donburi"
)

// Point is a logical screen position.
type Point struct {
	X, Y float64
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Taps holds touches and left clicks that started this frame.
	Taps   []Point
	Cursor Point

	Primed bool // false until the first poll
}

var Input = donburi.NewComponentType[InputData]()

// JustPressed reports whether the action went down this frame.
func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}
