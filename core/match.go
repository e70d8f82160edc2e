package core

import dc "github.com/automoto/showdown/shared/duelconfig"

// Match is a sequence of duels under one mode.
type Match struct {
	Mode  dc.ModeID
	Round int // arcade, 1-indexed
	Wins  int // arcade, cumulative
	Score [dc.SideCount]int

	finished bool
}

// NewMatch starts a match. Arcade always starts at round 1.
func NewMatch(mode dc.ModeID) *Match {
	return &Match{Mode: mode, Round: 1}
}

// Multiplier is the bullet speed multiplier for the current duel.
func (m *Match) Multiplier() float64 {
	if m.Mode == dc.ModeArcade {
		return Difficulty(m.Round)
	}
	return 1.0
}

// Finished reports whether the last recorded outcome ended the match.
func (m *Match) Finished() bool { return m.finished }

// Record applies a duel outcome to the counters.
func (m *Match) Record(out Outcome) {
	switch m.Mode {
	case dc.ModeArcade:
		if out.Winner != dc.SidePlayer {
			m.finished = true
			return
		}
		m.Wins++
		if m.Round >= ArcadeRounds {
			m.finished = true
		}
	case dc.ModeVersus:
		if out.Winner.Valid() {
			m.Score[out.Winner]++
		}
		if m.Score[dc.SidePlayer] >= VersusTargetScore || m.Score[dc.SideOpponent] >= VersusTargetScore {
			m.finished = true
		}
	}
}

// Advance moves to the next duel after a continue. It returns false when the
// match is over.
func (m *Match) Advance() bool {
	if m.finished {
		return false
	}
	if m.Mode == dc.ModeArcade {
		m.Round++
	}
	return true
}
