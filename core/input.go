package core

import dc "github.com/automoto/showdown/shared/duelconfig"

// InputKind is a normalized player action. The shell maps keys, clicks and
// touches onto these.
type InputKind int

const (
	InputNone InputKind = iota
	InputFire
	InputSelectMode
	InputShowAchievements
	InputContinue
	InputQuit
)

func (k InputKind) String() string {
	switch k {
	case InputFire:
		return "fire"
	case InputSelectMode:
		return "select_mode"
	case InputShowAchievements:
		return "show_achievements"
	case InputContinue:
		return "continue"
	case InputQuit:
		return "quit"
	}
	return "none"
}

// Input is one action delivered to the session. Side is used by fire,
// Mode by select_mode.
type Input struct {
	Kind InputKind
	Side dc.Side
	Mode dc.ModeID
}

// Fire returns a fire action for side.
func Fire(side dc.Side) Input { return Input{Kind: InputFire, Side: side} }

// SelectMode returns a select_mode action.
func SelectMode(mode dc.ModeID) Input { return Input{Kind: InputSelectMode, Mode: mode} }

// Continue returns a continue action.
func Continue() Input { return Input{Kind: InputContinue} }

// ShowAchievements returns a show_achievements action.
func ShowAchievements() Input { return Input{Kind: InputShowAchievements} }

// Quit returns a quit action.
func Quit() Input { return Input{Kind: InputQuit} }
