package systems

import (
	"github.com/automoto/showdown/archetypes"
	"github.com/automoto/showdown/components"
	cfg "github.com/automoto/showdown/config"
	"github.com/automoto/showdown/core"
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/automoto/showdown/shared/toast"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateSession creates the system that feeds this frame's input to the
// session, ticks it with one clock sample, forwards its audio cues and unlock
// notifications, and refreshes the snapshot the renderers read. onState is
// called when the session moves to another screen.
func NewUpdateSession(sess *core.Session, clock core.Clock, layout arena.Layout, toasts *toast.Board, onState func(dc.SessionStateID)) ecs.System {
	return func(e *ecs.ECS) {
		view := GetOrCreateSessionView(e, sess)
		input := getOrCreateInput(e)
		before := sess.State()

		sess.Tick(clock.Now(), collectInputs(input, view.Snapshot, layout))

		for _, c := range sess.DrainCues() {
			switch c.Kind {
			case core.CuePlaySound:
				PlaySFX(e, c.Sound)
			case core.CuePlayMusic:
				PlayMusic(e, c.Music)
			case core.CueStopMusic:
				StopMusic(e)
			}
		}
		for _, id := range sess.DrainUnlocks() {
			toasts.Push(cfg.Toast.Prefix + cfg.Achievements.Text[id].Name)
		}

		view.Snapshot = sess.Snapshot()

		if after := sess.State(); after != before && onState != nil {
			onState(after)
		}
	}
}

// collectInputs maps this frame's actions and taps to session inputs. prev is
// the snapshot from the previous frame and decides what a tap means.
func collectInputs(input *components.InputData, prev core.SessionSnapshot, layout arena.Layout) []core.Input {
	var out []core.Input

	switch prev.State {
	case dc.SessionMenu:
		if input.JustPressed(cfg.ActionArcade) {
			out = append(out, core.SelectMode(dc.ModeArcade))
		}
		if input.JustPressed(cfg.ActionVersus) {
			out = append(out, core.SelectMode(dc.ModeVersus))
		}
		if input.JustPressed(cfg.ActionAchievements) {
			out = append(out, core.ShowAchievements())
		}
		for _, t := range input.Taps {
			name, ok := layout.ControlAt(t.X, t.Y, arena.ControlArcade, arena.ControlVersus, arena.ControlAchievements)
			if !ok {
				continue
			}
			switch name {
			case arena.ControlArcade:
				out = append(out, core.SelectMode(dc.ModeArcade))
			case arena.ControlVersus:
				out = append(out, core.SelectMode(dc.ModeVersus))
			case arena.ControlAchievements:
				out = append(out, core.ShowAchievements())
			}
		}

	case dc.SessionAchievements:
		if input.JustPressed(cfg.ActionContinue) || len(input.Taps) > 0 {
			out = append(out, core.Continue())
		}

	case dc.SessionMatch:
		if input.JustPressed(cfg.ActionFireLeft) {
			out = append(out, core.Fire(dc.SidePlayer))
		}
		if input.JustPressed(cfg.ActionFireRight) {
			out = append(out, core.Fire(dc.SideOpponent))
		}
		resolved := prev.Duel != nil && prev.Duel.State == dc.DuelResolved
		for _, t := range input.Taps {
			if resolved {
				out = append(out, core.Continue())
				break
			}
			name, ok := layout.ControlAt(t.X, t.Y, arena.ControlFireLeft, arena.ControlFireRight)
			if !ok {
				continue
			}
			if name == arena.ControlFireLeft {
				out = append(out, core.Fire(dc.SidePlayer))
			} else {
				out = append(out, core.Fire(dc.SideOpponent))
			}
		}
		if input.JustPressed(cfg.ActionContinue) {
			out = append(out, core.Continue())
		}
	}

	if input.JustPressed(cfg.ActionBack) {
		out = append(out, core.Quit())
	}
	return out
}

// GetOrCreateSessionView returns the singleton Session snapshot component,
// creating it from the live session if needed
func GetOrCreateSessionView(e *ecs.ECS, sess *core.Session) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		entry = archetypes.Session.Spawn(e)
		components.Session.SetValue(entry, components.SessionData{Snapshot: sess.Snapshot()})
	}
	return components.Session.Get(entry)
}
