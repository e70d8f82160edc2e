package systems

import (
	"log"
	"sync"

	"github.com/automoto/showdown/assets"
	"github.com/automoto/showdown/components"
	cfg "github.com/automoto/showdown/config"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicID      dc.MusicID
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, cfg.Env.AssetsDir)
	})
}

// PreloadAllSFX prepares every sound effect at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, id := range dc.SoundIDs {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not load sound %s: %v", id, err)
		}
	}
}

// SetMuted silences or restores both music and sound effects.
func SetMuted(muted bool) {
	if muted {
		globalMusicVolume = 0
		globalSFXVolume = 0
	} else {
		globalMusicVolume = cfg.Audio.DefaultMusicVol
		globalSFXVolume = cfg.Audio.DefaultSFXVol
	}
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(globalMusicVolume)
	}
}

// UpdateAudio plays the sound effects queued this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID dc.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts a looping track, unless it is already playing
func PlayMusic(e *ecs.ECS, id dc.MusicID) {
	initGlobalAudio()

	if globalMusicID == id && globalMusicPlayer != nil {
		return
	}

	StopMusic(e)

	player, err := globalAudioLoader.LoadMusic(id)
	if err != nil {
		log.Printf("Warning: Could not load music %s: %v", id, err)
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicID = id
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalMusicID = dc.MusicNone
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound dc.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]dc.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
