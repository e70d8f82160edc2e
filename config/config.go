package config

import (
	"image/color"

	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// Config contains window and arena file configuration
type Config struct {
	Width     int
	Height    int
	TPS       int
	Title     string
	ArenaPath string // TMX path inside the embedded assets
}

// MenuConfig contains main menu layout and colors
type MenuConfig struct {
	Title         string
	TitleY        float64
	ButtonLabels  map[string]string
	ButtonColor   color.RGBA
	ButtonHover   color.RGBA
	TextColor     color.RGBA
	HintColor     color.RGBA
	BackgroundTop color.RGBA
	BackgroundBot color.RGBA
	HintText      string
}

// HUDConfig contains in-duel overlay values
type HUDConfig struct {
	Margin          float64
	TextColor       color.RGBA
	CountdownColor  color.RGBA
	DrawColor       color.RGBA
	VictoryColor    color.RGBA
	DefeatColor     color.RGBA
	OverlayColor    color.RGBA
	FireButtonColor color.RGBA
	GroundColor     color.RGBA
	BulletColor     color.RGBA
	BulletWidth     float64
	BulletHeight    float64
	DrawText        string
	ContinueHint    string
	CountdownPulse  float32 // seconds for one countdown number to shrink
}

// AchievementText is the display name and description of an achievement
type AchievementText struct {
	Name        string
	Description string
}

// AchievementsConfig contains the achievements screen values
type AchievementsConfig struct {
	Title         string
	Text          map[dc.AchievementID]AchievementText
	RowHeight     float64
	StartY        float64
	LockedColor   color.RGBA
	UnlockedColor color.RGBA
	ProgressColor color.RGBA
	BackHint      string
}

// ToastConfig contains unlock notification values
type ToastConfig struct {
	Width      float64
	Height     float64
	Duration   float32 // seconds on screen
	SlideTime  float32 // seconds to slide in
	Background color.RGBA
	TextColor  color.RGBA
	Prefix     string
}

// SpriteConfig contains procedural gunslinger art values
type SpriteConfig struct {
	PlayerColor   color.RGBA
	OpponentColor color.RGBA
	HatColor      color.RGBA
	GunColor      color.RGBA
	DeadTint      color.RGBA
}

var C *Config
var Menu MenuConfig
var HUD HUDConfig
var Achievements AchievementsConfig
var Toast ToastConfig
var Sprite SpriteConfig

func init() {
	C = &Config{
		Width:     1280,
		Height:    720,
		TPS:       60,
		Title:     "Showdown",
		ArenaPath: "arena/showdown.tmx",
	}

	Menu = MenuConfig{
		Title:  "SHOWDOWN",
		TitleY: 140,
		ButtonLabels: map[string]string{
			"arcade":       "Arcade",
			"versus":       "Versus",
			"achievements": "Achievements",
		},
		ButtonColor:   color.RGBA{90, 60, 40, 255},
		ButtonHover:   color.RGBA{140, 95, 55, 255},
		TextColor:     color.RGBA{255, 240, 210, 255},
		HintColor:     color.RGBA{200, 180, 150, 255},
		BackgroundTop: color.RGBA{250, 170, 90, 255},
		BackgroundBot: color.RGBA{120, 50, 30, 255},
		HintText:      "1 Arcade   2 Versus   3 Achievements   Esc Quit",
	}

	HUD = HUDConfig{
		Margin:          24,
		TextColor:       color.RGBA{255, 255, 255, 255},
		CountdownColor:  color.RGBA{255, 220, 120, 255},
		DrawColor:       color.RGBA{255, 80, 60, 255},
		VictoryColor:    color.RGBA{120, 230, 120, 255},
		DefeatColor:     color.RGBA{230, 90, 90, 255},
		OverlayColor:    color.RGBA{0, 0, 0, 150},
		FireButtonColor: color.RGBA{255, 255, 255, 60},
		GroundColor:     color.RGBA{90, 55, 30, 255},
		BulletColor:     color.RGBA{255, 230, 90, 255},
		BulletWidth:     14,
		BulletHeight:    4,
		DrawText:        "DRAW!",
		ContinueHint:    "Tap, click or press Enter to continue",
		CountdownPulse:  0.6,
	}

	Achievements = AchievementsConfig{
		Title: "ACHIEVEMENTS",
		Text: map[dc.AchievementID]AchievementText{
			dc.FirstBlood:   {"First Blood", "Win your first arcade duel"},
			dc.Round5:       {"Halfway There", "Win an arcade duel in round 5"},
			dc.Round10:      {"Last Man Standing", "Win an arcade duel in round 10"},
			dc.FastWinner:   {"Quick Draw", "Win within one second of the draw"},
			dc.NoMiss:       {"Dead Eye", "Win a duel without missing a shot"},
			dc.Perfect10:    {"Perfect Ten", "Win all ten arcade rounds"},
			dc.PvPWinner:    {"Town Champion", "Finish a versus match"},
			dc.DailyWin:     {"Daily Duelist", "Win a duel today"},
			dc.Daily5Wins:   {"Daily Legend", "Win five duels today"},
			dc.Daily10Shots: {"Trigger Happy", "Fire ten shots today"},
		},
		RowHeight:     52,
		StartY:        130,
		LockedColor:   color.RGBA{150, 150, 150, 255},
		UnlockedColor: color.RGBA{255, 215, 90, 255},
		ProgressColor: color.RGBA{180, 220, 255, 255},
		BackHint:      "Esc, Enter or tap to go back",
	}

	Toast = ToastConfig{
		Width:      560,
		Height:     56,
		Duration:   2.5,
		SlideTime:  0.3,
		Background: color.RGBA{30, 30, 30, 220},
		TextColor:  color.RGBA{255, 215, 90, 255},
		Prefix:     "Achievement unlocked: ",
	}

	Sprite = SpriteConfig{
		PlayerColor:   color.RGBA{200, 50, 50, 255},
		OpponentColor: color.RGBA{50, 80, 200, 255},
		HatColor:      color.RGBA{70, 45, 25, 255},
		GunColor:      color.RGBA{40, 40, 40, 255},
		DeadTint:      color.RGBA{110, 110, 110, 255},
	}
}
