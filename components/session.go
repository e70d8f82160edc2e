package components

import (
	"github.com/automoto/showdown/core"
	"github.com/yohamta/donburi"
)

// SessionData holds the snapshot taken after the last session tick. Renderers
// read it instead of the live session.
type SessionData struct {
	Snapshot core.SessionSnapshot
}

var Session = donburi.NewComponentType[SessionData]()
