package core

import (
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
)

// Session owns the whole game state: the current screen, the match and its
// duel, and the achievement ledger it reports to. It is driven by Tick once
// per frame with a single clock sample.
type Session struct {
	layout arena.Layout
	ledger AchievementLedger
	rng    RandSource

	state    dc.SessionStateID
	now      int64
	match    *Match
	duel     *Duel
	opponent *Opponent

	cues    []Cue
	unlocks []dc.AchievementID
	exit    bool
}

// NewSession starts on the menu.
func NewSession(layout arena.Layout, ledger AchievementLedger, rng RandSource) *Session {
	return &Session{
		layout: layout,
		ledger: ledger,
		rng:    rng,
		state:  dc.SessionMenu,
	}
}

// State returns the current screen.
func (s *Session) State() dc.SessionStateID { return s.state }

// Now returns the last tick time.
func (s *Session) Now() int64 { return s.now }

// ExitRequested reports whether quit was chosen on the menu.
func (s *Session) ExitRequested() bool { return s.exit }

// DrainCues returns and clears the queued audio cues.
func (s *Session) DrainCues() []Cue {
	cues := s.cues
	s.cues = nil
	return cues
}

// DrainUnlocks returns and clears the achievements unlocked since the last
// call, in unlock order.
func (s *Session) DrainUnlocks() []dc.AchievementID {
	ids := s.unlocks
	s.unlocks = nil
	return ids
}

// Tick applies the inputs gathered this frame and advances the simulation to
// now. A now earlier than the previous tick is treated as no time passing.
func (s *Session) Tick(now int64, inputs []Input) {
	if now < s.now {
		now = s.now
	}
	s.now = now

	for _, in := range inputs {
		s.handle(in)
	}

	if s.state != dc.SessionMatch || s.duel == nil {
		return
	}

	wasCountdown := s.duel.State() == dc.DuelCountdown
	out, resolved := s.duel.Update(now)
	if wasCountdown && s.duel.State() == dc.DuelActive {
		s.cue(soundCue(dc.SoundClick))
	}
	if resolved {
		s.finishDuel(out)
		return
	}

	if s.opponent != nil && s.opponent.Tick(s.duel, now) {
		s.shotFired()
	}
}

func (s *Session) handle(in Input) {
	switch s.state {
	case dc.SessionMenu:
		s.handleMenu(in)
	case dc.SessionAchievements:
		switch in.Kind {
		case InputContinue, InputQuit, InputShowAchievements:
			s.toMenu()
		}
	case dc.SessionMatch:
		s.handleMatch(in)
	}
}

func (s *Session) handleMenu(in Input) {
	switch in.Kind {
	case InputSelectMode:
		if in.Mode == dc.ModeArcade || in.Mode == dc.ModeVersus {
			s.startMatch(in.Mode)
		}
	case InputShowAchievements:
		s.state = dc.SessionAchievements
		s.cue(musicCue(dc.MusicAchievements))
	case InputQuit:
		s.exit = true
	}
}

func (s *Session) handleMatch(in Input) {
	switch in.Kind {
	case InputFire:
		s.fire(in.Side)
	case InputContinue:
		if s.duel.State() != dc.DuelResolved {
			return
		}
		if !s.match.Advance() {
			s.toMenu()
			return
		}
		s.startDuel()
	case InputQuit:
		s.toMenu()
	}
}

func (s *Session) fire(side dc.Side) {
	if s.match.Mode == dc.ModeArcade && side != dc.SidePlayer {
		return
	}
	if !s.duel.Fire(side, s.now) {
		return
	}
	s.shotFired()
}

// shotFired runs after any accepted fire, human or opponent.
func (s *Session) shotFired() {
	s.cue(soundCue(dc.SoundShot))

	shots := s.ledger.AddDailyShot()
	if shots >= DailyShotsGoal {
		s.unlock(dc.Daily10Shots)
	}
}

func (s *Session) startMatch(mode dc.ModeID) {
	s.match = NewMatch(mode)
	s.state = dc.SessionMatch
	s.cue(musicCue(dc.MusicDuel))
	s.startDuel()
}

func (s *Session) startDuel() {
	s.duel = NewDuel(s.now, s.layout, s.match.Multiplier())
	s.opponent = nil
	if s.match.Mode == dc.ModeArcade {
		s.opponent = NewOpponent(s.match.Round, s.rng)
	}
	s.cue(soundCue(dc.SoundClick))
}

// toMenu abandons any match in progress. Nothing is persisted.
func (s *Session) toMenu() {
	s.match = nil
	s.duel = nil
	s.opponent = nil
	s.state = dc.SessionMenu
	s.cue(stopMusicCue())
}

func (s *Session) finishDuel(out Outcome) {
	if out.Winner == dc.SidePlayer {
		s.cue(soundCue(dc.SoundWin))
	} else {
		s.cue(soundCue(dc.SoundLose))
	}

	s.match.Record(out)

	switch s.match.Mode {
	case dc.ModeArcade:
		if out.Winner != dc.SidePlayer {
			return
		}
		s.dailyWin()
		for _, id := range arcadeWinAchievements(s.match.Round, s.match.Wins, out) {
			s.unlock(id)
		}
	case dc.ModeVersus:
		// Both seats share the device, so either seat's win counts for the day.
		s.dailyWin()
		if s.match.Finished() {
			s.unlock(dc.PvPWinner)
		}
	}
}

func (s *Session) dailyWin() {
	for _, id := range dailyWinAchievements(s.ledger.AddDailyWin()) {
		s.unlock(id)
	}
}

func (s *Session) unlock(id dc.AchievementID) {
	if !s.ledger.Unlock(id) {
		return
	}
	s.unlocks = append(s.unlocks, id)
	s.cue(soundCue(dc.SoundAchievement))
}

func (s *Session) cue(c Cue) {
	s.cues = append(s.cues, c)
}

// Snapshot copies the state a renderer needs.
func (s *Session) Snapshot() SessionSnapshot {
	snap := SessionSnapshot{State: s.state, Now: s.now}
	switch s.state {
	case dc.SessionMatch:
		m := s.match
		snap.Match = &MatchSnapshot{
			Mode:       m.Mode,
			Round:      m.Round,
			Wins:       m.Wins,
			Score:      m.Score,
			Difficulty: m.Multiplier(),
			Finished:   m.Finished(),
		}
		d := s.duel.Snapshot(s.now)
		snap.Duel = &d
	case dc.SessionAchievements:
		snap.Achievements = achievementStatuses(s.ledger)
		snap.Today = s.ledger.LastPlayDate()
	}
	return snap
}
