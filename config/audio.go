package config

import (
	"github.com/automoto/showdown/assets/synth"
	dc "github.com/automoto/showdown/shared/duelconfig"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	Shape           synth.Shape
}

// SoundConfig maps sound and music IDs to file names and fallback tones
type SoundConfig struct {
	// Files are looked up in the asset override directory first.
	SFXFiles          map[dc.SoundID]string
	MusicFiles        map[dc.MusicID]string
	SFXTones          map[dc.SoundID][]synth.Note
	MusicTones        map[dc.MusicID][]synth.Note
	VolumeMultipliers map[dc.SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.4,
		DefaultSFXVol:   0.8,
		Shape:           synth.Shape{Attack: 0.005, Release: 0.05},
	}

	Sound = SoundConfig{
		SFXFiles: map[dc.SoundID]string{
			dc.SoundShot:        "shot.wav",
			dc.SoundWin:         "win.wav",
			dc.SoundLose:        "lose.wav",
			dc.SoundAchievement: "achievement_unlocked.wav",
			dc.SoundClick:       "click.wav",
		},
		MusicFiles: map[dc.MusicID]string{
			dc.MusicDuel:         "duel_music.ogg",
			dc.MusicAchievements: "achievements_music.ogg",
		},
		SFXTones: map[dc.SoundID][]synth.Note{
			dc.SoundShot: {
				{Freq: 0, Duration: 0.12, Wave: synth.WaveNoise},
			},
			dc.SoundWin: {
				{Freq: 523.25, Duration: 0.12, Wave: synth.WaveSquare},
				{Freq: 659.25, Duration: 0.12, Wave: synth.WaveSquare},
				{Freq: 783.99, Duration: 0.25, Wave: synth.WaveSquare},
			},
			dc.SoundLose: {
				{Freq: 392.00, Duration: 0.18, Wave: synth.WaveSaw},
				{Freq: 311.13, Duration: 0.18, Wave: synth.WaveSaw},
				{Freq: 261.63, Duration: 0.35, Wave: synth.WaveSaw},
			},
			dc.SoundAchievement: {
				{Freq: 987.77, Duration: 0.08, Wave: synth.WaveSine},
				{Freq: 1318.51, Duration: 0.2, Wave: synth.WaveSine},
			},
			dc.SoundClick: {
				{Freq: 1200, Duration: 0.03, Wave: synth.WaveSquare},
			},
		},
		MusicTones: map[dc.MusicID][]synth.Note{
			dc.MusicDuel: {
				{Freq: 220.00, Duration: 0.4, Wave: synth.WaveSaw},
				{Freq: 0, Duration: 0.2},
				{Freq: 246.94, Duration: 0.2, Wave: synth.WaveSaw},
				{Freq: 261.63, Duration: 0.4, Wave: synth.WaveSaw},
				{Freq: 0, Duration: 0.2},
				{Freq: 196.00, Duration: 0.6, Wave: synth.WaveSaw},
				{Freq: 0, Duration: 0.4},
			},
			dc.MusicAchievements: {
				{Freq: 392.00, Duration: 0.3, Wave: synth.WaveSine},
				{Freq: 493.88, Duration: 0.3, Wave: synth.WaveSine},
				{Freq: 587.33, Duration: 0.3, Wave: synth.WaveSine},
				{Freq: 493.88, Duration: 0.3, Wave: synth.WaveSine},
				{Freq: 0, Duration: 0.3},
			},
		},
		VolumeMultipliers: map[dc.SoundID]float64{
			dc.SoundClick: 0.5,
			dc.SoundShot:  0.7,
		},
	}
}
