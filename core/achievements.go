package core

import dc "github.com/automoto/showdown/shared/duelconfig"

// AchievementLedger is the persisted flag and daily-counter store the
// session reports progress to. ledger.Ledger implements it.
type AchievementLedger interface {
	Unlocked(id dc.AchievementID) bool
	// Unlock returns true only when the flag was newly set.
	Unlock(id dc.AchievementID) bool
	AddDailyWin() int
	AddDailyShot() int
	DailyWins() int
	DailyShots() int
	LastPlayDate() string
}

// arcadeWinAchievements returns the ids earned by an arcade duel the player
// just won. round is the round that was played, wins includes this win.
func arcadeWinAchievements(round, wins int, out Outcome) []dc.AchievementID {
	var ids []dc.AchievementID
	if wins == 1 {
		ids = append(ids, dc.FirstBlood)
	}
	if round >= 5 {
		ids = append(ids, dc.Round5)
	}
	if round >= ArcadeRounds {
		ids = append(ids, dc.Round10)
	}
	if wins >= ArcadeRounds {
		ids = append(ids, dc.Perfect10)
	}
	if out.Winner == dc.SidePlayer && out.ActiveFor < FastWinWindowMS {
		ids = append(ids, dc.FastWinner)
	}
	if noMiss(out) {
		ids = append(ids, dc.NoMiss)
	}
	return ids
}

// noMiss reports whether the player won without missing a shot.
func noMiss(out Outcome) bool {
	s := out.Stats[dc.SidePlayer]
	return out.Winner == dc.SidePlayer && s.Fired > 0 && s.Hit == s.Fired
}

// dailyWinAchievements returns the ids earned at a daily win count.
func dailyWinAchievements(dailyWins int) []dc.AchievementID {
	var ids []dc.AchievementID
	if dailyWins >= 1 {
		ids = append(ids, dc.DailyWin)
	}
	if dailyWins >= DailyWinsGoal {
		ids = append(ids, dc.Daily5Wins)
	}
	return ids
}

// AchievementStatus is one row of the achievements screen.
type AchievementStatus struct {
	ID       dc.AchievementID
	Unlocked bool
	// Progress and Goal are set for counter-backed daily achievements.
	Progress int
	Goal     int
}

func achievementStatuses(l AchievementLedger) []AchievementStatus {
	out := make([]AchievementStatus, 0, len(dc.AchievementIDs))
	for _, id := range dc.AchievementIDs {
		st := AchievementStatus{ID: id, Unlocked: l.Unlocked(id)}
		switch id {
		case dc.Daily5Wins:
			st.Progress, st.Goal = min(l.DailyWins(), DailyWinsGoal), DailyWinsGoal
		case dc.Daily10Shots:
			st.Progress, st.Goal = min(l.DailyShots(), DailyShotsGoal), DailyShotsGoal
		}
		out = append(out, st)
	}
	return out
}
