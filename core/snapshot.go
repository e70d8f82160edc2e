package core

import (
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
)

// CombatantSnapshot is a read-only copy of a combatant.
type CombatantSnapshot struct {
	Side dc.Side
	Box  arena.Rect
	Anim dc.AnimState
}

// DuelSnapshot is a read-only copy of a duel for rendering.
type DuelSnapshot struct {
	State       dc.DuelStateID
	Countdown   int
	ActiveAt    int64
	Winner      dc.Side
	Multiplier  float64
	Combatants  [dc.SideCount]CombatantSnapshot
	Projectiles []Projectile
	Stats       [dc.SideCount]ShotStats
}

// Accuracy returns a side's hit percentage in this duel, 0 with no shots.
func (s DuelSnapshot) Accuracy(side dc.Side) float64 {
	if !side.Valid() || s.Stats[side].Fired == 0 {
		return 0
	}
	return float64(s.Stats[side].Hit) / float64(s.Stats[side].Fired) * 100
}

// MatchSnapshot is a read-only copy of the match counters.
type MatchSnapshot struct {
	Mode       dc.ModeID
	Round      int
	Wins       int
	Score      [dc.SideCount]int
	Difficulty float64
	Finished   bool
}

// SessionSnapshot is everything a renderer needs for one frame.
type SessionSnapshot struct {
	State dc.SessionStateID
	Now   int64

	// Set while State is SessionMatch.
	Match *MatchSnapshot
	Duel  *DuelSnapshot

	// Set while State is SessionAchievements.
	Achievements []AchievementStatus
	Today        string
}
