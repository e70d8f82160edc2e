package core

import (
	"math"
	"testing"

	"github.com/automoto/showdown/shared/arena"
	dc "github.com/automoto/showdown/shared/duelconfig"
)

const tick = 16

// scriptedRand returns values in order, then fallback forever.
type scriptedRand struct {
	values   []float64
	fallback float64
	calls    int
}

func (r *scriptedRand) Float64() float64 {
	r.calls++
	if len(r.values) == 0 {
		return r.fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// memLedger is an in-memory AchievementLedger that counts writes.
type memLedger struct {
	flags  map[dc.AchievementID]bool
	wins   int
	shots  int
	writes int
}

func newMemLedger() *memLedger {
	return &memLedger{flags: map[dc.AchievementID]bool{}}
}

func (l *memLedger) Unlocked(id dc.AchievementID) bool { return l.flags[id] }

func (l *memLedger) Unlock(id dc.AchievementID) bool {
	if l.flags[id] {
		return false
	}
	l.flags[id] = true
	l.writes++
	return true
}

func (l *memLedger) AddDailyWin() int {
	l.wins++
	l.writes++
	return l.wins
}

func (l *memLedger) AddDailyShot() int {
	l.shots++
	l.writes++
	return l.shots
}

func (l *memLedger) DailyWins() int       { return l.wins }
func (l *memLedger) DailyShots() int      { return l.shots }
func (l *memLedger) LastPlayDate() string { return "2026-10-16" }

// activeDuel returns a duel that went active at 3000.
func activeDuel(t *testing.T, multiplier float64) *Duel {
	t.Helper()
	d := NewDuel(0, arena.Default(), multiplier)
	d.Update(CountdownSteps * CountdownStepMS)
	if d.State() != dc.DuelActive {
		t.Fatalf("duel state = %v, want active", d.State())
	}
	return d
}

func TestDifficultyCurve(t *testing.T) {
	for r := 1; r <= ArcadeRounds; r++ {
		if Difficulty(r) > OpponentMaxDifficulty {
			t.Fatalf("Difficulty(%d) = %v exceeds cap", r, Difficulty(r))
		}
		if ReactionWindow(r) < OpponentReactionFloorMS {
			t.Fatalf("ReactionWindow(%d) = %v below floor", r, ReactionWindow(r))
		}
		if r > 1 {
			if Difficulty(r) < Difficulty(r-1) {
				t.Fatalf("Difficulty decreased at round %d", r)
			}
			if ReactionWindow(r) > ReactionWindow(r-1) {
				t.Fatalf("ReactionWindow increased at round %d", r)
			}
		}
	}

	if got := Difficulty(1); math.Abs(got-1.9) > 1e-9 {
		t.Fatalf("Difficulty(1) = %v, want 1.9", got)
	}
	if got := Difficulty(20); got != 10.0 {
		t.Fatalf("Difficulty(20) = %v, want 10", got)
	}
	if got := ReactionWindow(1); got != 460 {
		t.Fatalf("ReactionWindow(1) = %v, want 460", got)
	}
	if got := ReactionWindow(20); got != 100 {
		t.Fatalf("ReactionWindow(20) = %v, want 100", got)
	}
}

func TestCountdownIsTimerDriven(t *testing.T) {
	d := NewDuel(1000, arena.Default(), 1)

	tests := []struct {
		now  int64
		want int
	}{
		{500, 3}, // clock skew clamps to zero elapsed
		{1000, 3},
		{1999, 3},
		{2000, 2},
		{3999, 1},
	}
	for _, tt := range tests {
		if got := d.Countdown(tt.now); got != tt.want {
			t.Errorf("Countdown(%d) = %d, want %d", tt.now, got, tt.want)
		}
	}

	if d.Fire(dc.SidePlayer, 2500) {
		t.Fatalf("fire during countdown must be ignored")
	}
	d.Update(3999)
	if d.State() != dc.DuelCountdown {
		t.Fatalf("duel went active early")
	}
	d.Update(4000)
	if d.State() != dc.DuelActive || d.ActiveAt() != 4000 {
		t.Fatalf("state = %v activeAt = %d, want active at 4000", d.State(), d.ActiveAt())
	}
	if d.Countdown(4000) != 0 {
		t.Fatalf("countdown should read 0 once active")
	}
}

func TestSharedCooldown(t *testing.T) {
	d := activeDuel(t, 1)

	if !d.Fire(dc.SidePlayer, 3000) {
		t.Fatalf("first shot should be accepted")
	}
	if d.Fire(dc.SideOpponent, 3299) {
		t.Fatalf("opposite side fired inside the shared cooldown")
	}
	if d.Fire(dc.SidePlayer, 3100) {
		t.Fatalf("same side fired inside the cooldown")
	}
	if !d.Fire(dc.SideOpponent, 3300) {
		t.Fatalf("shot at the cooldown deadline should be accepted")
	}

	if got := d.Stats(dc.SidePlayer).Fired; got != 1 {
		t.Fatalf("player fired = %d, want 1", got)
	}
	if got := d.Stats(dc.SideOpponent).Fired; got != 1 {
		t.Fatalf("opponent fired = %d, want 1", got)
	}
}

func TestFireSpawnsProjectileTowardOpponent(t *testing.T) {
	d := activeDuel(t, 2)
	layout := arena.Default()

	d.Fire(dc.SideOpponent, 3000)
	snap := d.Snapshot(3000)
	if len(snap.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(snap.Projectiles))
	}
	p := snap.Projectiles[0]
	box := layout.Gunslinger(dc.SideOpponent)
	if p.X != box.X || p.Y != box.Y+box.H/2 {
		t.Fatalf("projectile at (%v,%v), want opponent's front edge", p.X, p.Y)
	}
	if p.VX != -BaseBulletSpeed*2 {
		t.Fatalf("VX = %v, want %v", p.VX, -BaseBulletSpeed*2)
	}
	if snap.Combatants[dc.SideOpponent].Anim != dc.AnimShoot {
		t.Fatalf("shooter should be in shoot pose")
	}

	d.Update(3199)
	if d.Snapshot(3199).Combatants[dc.SideOpponent].Anim != dc.AnimShoot {
		t.Fatalf("shoot pose ended early")
	}
	d.Update(3200)
	if d.Snapshot(3200).Combatants[dc.SideOpponent].Anim != dc.AnimIdle {
		t.Fatalf("shoot pose should revert after %dms", ShootPoseMS)
	}
}

func TestDuelResolvesOnce(t *testing.T) {
	d := activeDuel(t, 1)
	d.Fire(dc.SidePlayer, 3000)

	now := int64(3000)
	resolutions := 0
	var out Outcome
	for i := 0; i < 100; i++ {
		now += tick
		if o, ok := d.Update(now); ok {
			resolutions++
			out = o
		}
	}

	if resolutions != 1 {
		t.Fatalf("duel resolved %d times, want 1", resolutions)
	}
	if out.Winner != dc.SidePlayer || out.Loser != dc.SideOpponent {
		t.Fatalf("outcome = %+v, want player win", out)
	}
	if d.Winner() != dc.SidePlayer || d.State() != dc.DuelResolved {
		t.Fatalf("duel not resolved for player")
	}
	snap := d.Snapshot(now)
	if snap.Combatants[dc.SideOpponent].Anim != dc.AnimDead {
		t.Fatalf("loser should be dead")
	}
	if len(snap.Projectiles) != 0 {
		t.Fatalf("hitting projectile should be removed")
	}
	if d.Fire(dc.SideOpponent, now+1000) {
		t.Fatalf("fire after resolution must be ignored")
	}
}

func TestOnlyOneProjectileResolves(t *testing.T) {
	d := activeDuel(t, 1)
	opp := arena.Default().Gunslinger(dc.SideOpponent)

	// Both bullets cross the edge on the same tick.
	d.projectiles = []Projectile{
		{Owner: dc.SidePlayer, X: opp.X - 10, VX: BaseBulletSpeed},
		{Owner: dc.SidePlayer, X: opp.X - 5, VX: BaseBulletSpeed},
	}

	out, ok := d.Update(3016)
	if !ok {
		t.Fatalf("expected resolution")
	}
	if out.Stats[dc.SidePlayer].Hit != 1 {
		t.Fatalf("hits = %d, want 1", out.Stats[dc.SidePlayer].Hit)
	}
	if len(d.projectiles) != 1 {
		t.Fatalf("second bullet should stay in flight, got %d", len(d.projectiles))
	}
	if _, ok := d.Update(3032); ok {
		t.Fatalf("resolved duel reported a second outcome")
	}
}

func TestProjectilesLeavingScreenAreDropped(t *testing.T) {
	d := activeDuel(t, 1)
	layout := arena.Default()
	d.projectiles = []Projectile{{Owner: dc.SideOpponent, X: layout.Width + 1, VX: 1}}

	if _, ok := d.Update(3016); ok {
		t.Fatalf("off-screen bullet should not resolve")
	}
	if len(d.projectiles) != 0 {
		t.Fatalf("off-screen bullet should be dropped")
	}
}

func TestOpponentTimers(t *testing.T) {
	d := activeDuel(t, Difficulty(1))
	rng := &scriptedRand{values: []float64{0.5, 0.0, 0.0}, fallback: 1}
	o := NewOpponent(1, rng)

	if o.Tick(d, 3050) {
		t.Fatalf("fired before warmup")
	}
	if rng.calls != 0 {
		t.Fatalf("draw taken before warmup")
	}
	if o.Tick(d, 3100) {
		t.Fatalf("fired on a failed draw")
	}
	if !o.Tick(d, 3116) {
		t.Fatalf("expected shot on a successful draw")
	}
	if o.Tick(d, 3116+ReactionWindow(1)-1) {
		t.Fatalf("fired inside its reaction window")
	}
	if rng.calls != 2 {
		t.Fatalf("draws = %d, want 2", rng.calls)
	}
	if !o.Tick(d, 3116+ReactionWindow(1)) {
		t.Fatalf("expected shot once the reaction window passed")
	}
}

func TestOpponentDeadlineMovesOnlyOnAcceptedFire(t *testing.T) {
	d := activeDuel(t, Difficulty(1))
	o := NewOpponent(1, &scriptedRand{fallback: 0})

	d.Fire(dc.SidePlayer, 3100)
	if o.Tick(d, 3200) {
		t.Fatalf("opponent shot inside the shared cooldown")
	}
	if !o.Tick(d, 3400) {
		t.Fatalf("rejected shot must not start the reaction window")
	}
}

func TestNoMissPredicate(t *testing.T) {
	win := func(fired, hit int) Outcome {
		var out Outcome
		out.Winner = dc.SidePlayer
		out.Stats[dc.SidePlayer] = ShotStats{Fired: fired, Hit: hit}
		return out
	}

	if !noMiss(win(3, 3)) {
		t.Fatalf("3 of 3 should earn no_miss")
	}
	if noMiss(win(3, 2)) {
		t.Fatalf("3 shots with a miss should not earn no_miss")
	}
	if noMiss(win(0, 0)) {
		t.Fatalf("no shots should not earn no_miss")
	}
	lost := win(3, 3)
	lost.Winner = dc.SideOpponent
	if noMiss(lost) {
		t.Fatalf("a loss should not earn no_miss")
	}
}

func TestMatchArcadeRules(t *testing.T) {
	m := NewMatch(dc.ModeArcade)
	m.Round = ArcadeRounds
	m.Record(Outcome{Winner: dc.SidePlayer})
	if !m.Finished() || m.Advance() {
		t.Fatalf("round %d win should end the match", ArcadeRounds)
	}

	m = NewMatch(dc.ModeArcade)
	m.Record(Outcome{Winner: dc.SideOpponent})
	if !m.Finished() || m.Advance() {
		t.Fatalf("an arcade loss should end the match")
	}
	if m.Multiplier() != Difficulty(1) {
		t.Fatalf("arcade multiplier = %v, want %v", m.Multiplier(), Difficulty(1))
	}
	if NewMatch(dc.ModeVersus).Multiplier() != 1 {
		t.Fatalf("versus multiplier should be 1")
	}
}

func TestArcadeWinAchievements(t *testing.T) {
	clean := [dc.SideCount]ShotStats{dc.SidePlayer: {Fired: 1, Hit: 1}}
	missed := [dc.SideCount]ShotStats{dc.SidePlayer: {Fired: 2, Hit: 1}}

	tests := []struct {
		name      string
		round     int
		wins      int
		activeFor int64
		stats     [dc.SideCount]ShotStats
		want      []dc.AchievementID
		notWant   []dc.AchievementID
	}{
		{"first win fast and clean", 1, 1, 999, clean,
			[]dc.AchievementID{dc.FirstBlood, dc.FastWinner, dc.NoMiss},
			[]dc.AchievementID{dc.Round5, dc.Round10, dc.Perfect10}},
		{"round 4", 4, 4, 1000, clean,
			nil,
			[]dc.AchievementID{dc.FirstBlood, dc.Round5, dc.FastWinner}},
		{"round 5 at the fast window", 5, 5, 1000, missed,
			[]dc.AchievementID{dc.Round5},
			[]dc.AchievementID{dc.FastWinner, dc.NoMiss, dc.Round10}},
		{"round 9", 9, 9, 2000, clean,
			[]dc.AchievementID{dc.Round5, dc.NoMiss},
			[]dc.AchievementID{dc.Round10, dc.Perfect10}},
		{"round 10 with 9 wins", 10, 9, 500, clean,
			[]dc.AchievementID{dc.Round5, dc.Round10, dc.FastWinner},
			[]dc.AchievementID{dc.Perfect10}},
		{"perfect run", 10, 10, 1500, clean,
			[]dc.AchievementID{dc.Round5, dc.Round10, dc.Perfect10},
			[]dc.AchievementID{dc.FirstBlood, dc.FastWinner}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Outcome{Winner: dc.SidePlayer, Loser: dc.SideOpponent, ActiveFor: tt.activeFor, Stats: tt.stats}
			got := map[dc.AchievementID]bool{}
			for _, id := range arcadeWinAchievements(tt.round, tt.wins, out) {
				got[id] = true
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("missing %s", id)
				}
			}
			for _, id := range tt.notWant {
				if got[id] {
					t.Errorf("unexpected %s", id)
				}
			}
		})
	}
}
