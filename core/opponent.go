package core

import dc "github.com/automoto/showdown/shared/duelconfig"

// RandSource is the random source used by the opponent. *rand.Rand satisfies
// it; tests pass a scripted sequence.
type RandSource interface {
	Float64() float64
}

// Opponent decides each active tick whether the arcade opponent fires.
type Opponent struct {
	rng    RandSource
	window int64
	chance float64

	// reactionDeadline only moves when one of our shots is accepted.
	reactionDeadline int64
	hasFired         bool
}

// NewOpponent builds the controller for a 1-indexed arcade round.
func NewOpponent(round int, rng RandSource) *Opponent {
	return &Opponent{
		rng:    rng,
		window: ReactionWindow(round),
		chance: FireChance(round),
	}
}

// ready reports whether the warmup and reaction timers allow a shot.
func (o *Opponent) ready(d *Duel, now int64) bool {
	if d.State() != dc.DuelActive {
		return false
	}
	if elapsed(now, d.ActiveAt()) < OpponentWarmupMS {
		return false
	}
	return !o.hasFired || now >= o.reactionDeadline
}

// Tick fires for the opponent side when the timers allow it and the
// per-tick draw succeeds. It returns true if the duel accepted the shot.
func (o *Opponent) Tick(d *Duel, now int64) bool {
	if !o.ready(d, now) {
		return false
	}
	if o.rng.Float64() >= o.chance {
		return false
	}
	if !d.Fire(dc.SideOpponent, now) {
		return false
	}
	o.hasFired = true
	o.reactionDeadline = now + o.window
	return true
}
