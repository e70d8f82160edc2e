// Package duelconfig defines lightweight identifiers shared between the
// headless duel core and the ebiten shell. It must have zero dependencies on
// ebiten or any graphics library so the core and its tests stay headless.
package duelconfig

// Side identifies one of the two combatants. It doubles as the index into
// fixed-size per-side arrays.
type Side int

const (
	SideNone Side = iota - 1
	SidePlayer
	SideOpponent
)

// SideCount is the number of combatants in a duel. Used for array sizing.
const SideCount = 2

// Other returns the opposing side.
func (s Side) Other() Side {
	switch s {
	case SidePlayer:
		return SideOpponent
	case SideOpponent:
		return SidePlayer
	}
	return SideNone
}

// Facing returns +1 for the left gunslinger and -1 for the right one.
func (s Side) Facing() float64 {
	if s == SideOpponent {
		return -1
	}
	return 1
}

// Valid reports whether s indexes a combatant.
func (s Side) Valid() bool {
	return s == SidePlayer || s == SideOpponent
}

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player1"
	case SideOpponent:
		return "player2"
	}
	return "none"
}

// AnimState is the purely cosmetic pose of a combatant.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimShoot
	AnimDead
)

func (a AnimState) String() string {
	switch a {
	case AnimShoot:
		return "shoot"
	case AnimDead:
		return "dead"
	}
	return "idle"
}

// DuelStateID represents the lifecycle state of a single duel.
type DuelStateID int

const (
	DuelCountdown DuelStateID = iota // 3, 2, 1 before the draw
	DuelActive                       // shots accepted, collisions evaluated
	DuelResolved                     // someone was hit, waiting for continue
)

func (d DuelStateID) String() string {
	switch d {
	case DuelCountdown:
		return "countdown"
	case DuelActive:
		return "active"
	case DuelResolved:
		return "resolved"
	}
	return "unknown"
}

// ModeID selects the match rules.
type ModeID int

const (
	ModeNone ModeID = iota
	ModeArcade
	ModeVersus
)

func (m ModeID) String() string {
	switch m {
	case ModeArcade:
		return "arcade"
	case ModeVersus:
		return "versus"
	}
	return "none"
}

// SessionStateID represents which screen the session is on.
type SessionStateID int

const (
	SessionMenu SessionStateID = iota
	SessionAchievements
	SessionMatch
)

func (s SessionStateID) String() string {
	switch s {
	case SessionAchievements:
		return "achievements"
	case SessionMatch:
		return "match"
	}
	return "menu"
}

// SoundID represents a logical sound effect.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShot
	SoundWin
	SoundLose
	SoundAchievement
	SoundClick
)

// SoundIDs lists every playable sound effect.
var SoundIDs = []SoundID{SoundShot, SoundWin, SoundLose, SoundAchievement, SoundClick}

func (s SoundID) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	case SoundAchievement:
		return "achievement_unlocked"
	case SoundClick:
		return "click"
	}
	return "none"
}

// MusicID represents a looping music track.
type MusicID int

const (
	MusicNone MusicID = iota
	MusicDuel
	MusicAchievements
)

func (m MusicID) String() string {
	switch m {
	case MusicDuel:
		return "duel"
	case MusicAchievements:
		return "achievements"
	}
	return "none"
}

// AchievementID is the stable key of an achievement in the persisted ledger.
type AchievementID string

const (
	FirstBlood   AchievementID = "first_blood"
	Round5       AchievementID = "round_5"
	Round10      AchievementID = "round_10"
	Perfect10    AchievementID = "perfect_10"
	FastWinner   AchievementID = "fast_winner"
	NoMiss       AchievementID = "no_miss"
	PvPWinner    AchievementID = "pvp_winner"
	DailyWin     AchievementID = "daily_win"
	Daily5Wins   AchievementID = "daily_5wins"
	Daily10Shots AchievementID = "daily_10shots"
)

// AchievementIDs lists every achievement in display order.
var AchievementIDs = []AchievementID{
	FirstBlood,
	Round5,
	Round10,
	FastWinner,
	NoMiss,
	Perfect10,
	PvPWinner,
	DailyWin,
	Daily5Wins,
	Daily10Shots,
}

// IsDaily reports whether the achievement is re-earnable each calendar day.
func (a AchievementID) IsDaily() bool {
	return a == DailyWin || a == Daily5Wins || a == Daily10Shots
}

// Known reports whether a is one of the defined achievements.
func (a AchievementID) Known() bool {
	for _, id := range AchievementIDs {
		if id == a {
			return true
		}
	}
	return false
}
