package core

// Duel timing and physics tuning. All durations are in milliseconds of the
// session clock; speeds are in logical pixels per tick.
const (
	CountdownSteps    = 3    // 3, 2, 1
	CountdownStepMS   = 1000 // one step per second, independent of frame rate
	FireCooldownMS    = 300  // shared by both gunslingers
	ShootPoseMS       = 200  // shoot pose holds this long after a shot
	BaseBulletSpeed   = 25.0
	FastWinWindowMS   = 1000
	ArcadeRounds      = 10
	VersusTargetScore = 5
)

// Opponent tuning for arcade mode.
const (
	OpponentWarmupMS         = 100   // minimum time after the draw before the first shot
	OpponentMaxDifficulty    = 10.0
	OpponentDifficultyBase   = 1.0
	OpponentDifficultyStep   = 0.9
	OpponentReactionBaseMS   = 500
	OpponentReactionStepMS   = 40
	OpponentReactionFloorMS  = 100
	OpponentFireChancePerLvl = 0.03 // per-tick fire probability per difficulty point
)

// Daily achievement thresholds.
const (
	DailyWinsGoal  = 5
	DailyShotsGoal = 10
)
