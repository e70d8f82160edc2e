package core

import (
	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
)

// Combatant is one gunslinger. Its box never moves during a duel.
type Combatant struct {
	Side      dc.Side
	Box       arena.Rect
	Anim      dc.AnimState
	poseUntil int64 // shoot pose deadline
}

// frontX is the edge facing the other gunslinger. Bullets spawn there, and
// an incoming bullet hits once it crosses it.
func (c *Combatant) frontX() float64 {
	if c.Side.Facing() > 0 {
		return c.Box.Right()
	}
	return c.Box.X
}

// Projectile is a bullet in flight. The sign of VX is its direction.
type Projectile struct {
	Owner dc.Side
	X, Y  float64
	VX    float64
}

// ShotStats counts one side's shots within a duel.
type ShotStats struct {
	Fired int
	Hit   int
}

// Outcome is reported exactly once, on the tick a duel resolves.
type Outcome struct {
	Winner     dc.Side
	Loser      dc.Side
	ResolvedAt int64
	// ActiveFor is the time between the draw and the fatal hit.
	ActiveFor int64
	Stats     [dc.SideCount]ShotStats
}

// Duel is one countdown-through-resolution exchange.
type Duel struct {
	layout     arena.Layout
	multiplier float64

	state             dc.DuelStateID
	startedAt         int64
	countdownDeadline int64
	activeAt          int64
	resolvedAt        int64
	cooldownDeadline  int64
	fired             bool // at least one shot accepted; the cooldown gate is open before that

	combatants  [dc.SideCount]Combatant
	projectiles []Projectile
	stats       [dc.SideCount]ShotStats
	winner      dc.Side
}

// NewDuel starts a duel in countdown at time now. The multiplier scales
// bullet speed.
func NewDuel(now int64, layout arena.Layout, multiplier float64) *Duel {
	if multiplier <= 0 {
		multiplier = 1
	}
	d := &Duel{
		layout:            layout,
		multiplier:        multiplier,
		state:             dc.DuelCountdown,
		startedAt:         now,
		countdownDeadline: now + CountdownSteps*CountdownStepMS,
		winner:            dc.SideNone,
	}
	for _, side := range []dc.Side{dc.SidePlayer, dc.SideOpponent} {
		d.combatants[side] = Combatant{
			Side: side,
			Box:  layout.Gunslinger(side),
			Anim: dc.AnimIdle,
		}
	}
	return d
}

// State returns the current lifecycle state.
func (d *Duel) State() dc.DuelStateID { return d.state }

// Winner returns the winning side, or SideNone while unresolved.
func (d *Duel) Winner() dc.Side { return d.winner }

// ActiveAt returns when the duel entered the active state. Only meaningful
// once the countdown is over.
func (d *Duel) ActiveAt() int64 { return d.activeAt }

// Stats returns the shot counters for a side.
func (d *Duel) Stats(side dc.Side) ShotStats {
	if !side.Valid() {
		return ShotStats{}
	}
	return d.stats[side]
}

// Countdown returns the number shown during the countdown: 3, 2, 1, then 0.
func (d *Duel) Countdown(now int64) int {
	if d.state != dc.DuelCountdown {
		return 0
	}
	step := int(elapsed(now, d.startedAt) / CountdownStepMS)
	remaining := CountdownSteps - step
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanFire reports whether a shot would be accepted at time now.
func (d *Duel) CanFire(now int64) bool {
	if d.state != dc.DuelActive {
		return false
	}
	return !d.fired || now >= d.cooldownDeadline
}

// Fire attempts a shot for side. Shots outside the active state or inside
// the shared cooldown window are ignored and return false.
func (d *Duel) Fire(side dc.Side, now int64) bool {
	if !side.Valid() || !d.CanFire(now) {
		return false
	}

	c := &d.combatants[side]
	d.stats[side].Fired++
	d.projectiles = append(d.projectiles, Projectile{
		Owner: side,
		X:     c.frontX(),
		Y:     c.Box.Y + c.Box.H/2,
		VX:    side.Facing() * BaseBulletSpeed * d.multiplier,
	})
	c.Anim = dc.AnimShoot
	c.poseUntil = now + ShootPoseMS

	d.fired = true
	d.cooldownDeadline = now + FireCooldownMS
	return true
}

// Update advances the duel to time now. It returns the outcome and true only
// on the tick the duel resolves.
func (d *Duel) Update(now int64) (Outcome, bool) {
	var (
		out      Outcome
		resolved bool
	)

	switch d.state {
	case dc.DuelCountdown:
		if now >= d.countdownDeadline {
			d.state = dc.DuelActive
			d.activeAt = now
		}
	case dc.DuelActive:
		out, resolved = d.stepProjectiles(now, true)
	case dc.DuelResolved:
		d.stepProjectiles(now, false)
	}

	d.updatePoses(now)
	return out, resolved
}

// stepProjectiles moves every bullet, drops the ones that left the screen and
// resolves the duel on the first hit when collide is set.
func (d *Duel) stepProjectiles(now int64, collide bool) (Outcome, bool) {
	var (
		out      Outcome
		resolved bool
	)

	kept := d.projectiles[:0]
	for _, p := range d.projectiles {
		p.X += p.VX

		if collide && !resolved && d.hits(p) {
			out = d.resolve(p.Owner, now)
			resolved = true
			continue
		}
		if p.X < 0 || p.X > d.layout.Width {
			continue
		}
		kept = append(kept, p)
	}
	d.projectiles = kept
	return out, resolved
}

func (d *Duel) hits(p Projectile) bool {
	target := &d.combatants[p.Owner.Other()]
	return p.Owner.Facing()*(p.X-target.frontX()) > 0
}

func (d *Duel) resolve(winner dc.Side, now int64) Outcome {
	loser := winner.Other()
	d.combatants[loser].Anim = dc.AnimDead
	d.winner = winner
	d.stats[winner].Hit++
	d.state = dc.DuelResolved
	d.resolvedAt = now

	return Outcome{
		Winner:     winner,
		Loser:      loser,
		ResolvedAt: now,
		ActiveFor:  elapsed(now, d.activeAt),
		Stats:      d.stats,
	}
}

func (d *Duel) updatePoses(now int64) {
	for i := range d.combatants {
		c := &d.combatants[i]
		if c.Anim == dc.AnimShoot && now >= c.poseUntil {
			c.Anim = dc.AnimIdle
		}
	}
}

// Snapshot copies the duel state for rendering.
func (d *Duel) Snapshot(now int64) DuelSnapshot {
	snap := DuelSnapshot{
		State:       d.state,
		Countdown:   d.Countdown(now),
		ActiveAt:    d.activeAt,
		Winner:      d.winner,
		Multiplier:  d.multiplier,
		Stats:       d.stats,
		Projectiles: append([]Projectile(nil), d.projectiles...),
	}
	for i, c := range d.combatants {
		snap.Combatants[i] = CombatantSnapshot{Side: c.Side, Box: c.Box, Anim: c.Anim}
	}
	return snap
}
