package core

import "math"

// Difficulty returns the arcade difficulty multiplier for a 1-indexed round.
// It grows by 0.9 per round and caps at 10.0.
func Difficulty(round int) float64 {
	if round < 0 {
		round = 0
	}
	return math.Min(OpponentMaxDifficulty, OpponentDifficultyBase+OpponentDifficultyStep*float64(round))
}

// ReactionWindow returns the minimum gap in milliseconds between two
// opponent shots for a 1-indexed round. It shrinks by 40ms per round and
// floors at 100ms.
func ReactionWindow(round int) int64 {
	if round < 0 {
		round = 0
	}
	w := int64(OpponentReactionBaseMS - OpponentReactionStepMS*round)
	if w < OpponentReactionFloorMS {
		return OpponentReactionFloorMS
	}
	return w
}

// FireChance returns the per-tick probability that the opponent pulls the
// trigger once its timers allow it.
func FireChance(round int) float64 {
	return OpponentFireChancePerLvl * Difficulty(round)
}
