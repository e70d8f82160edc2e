package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/showdown/assets/synth"
	cfg "github.com/automoto/showdown/config"
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets. Files in the
// override directory win; anything missing is synthesized.
type AudioLoader struct {
	sfxCache    map[dc.SoundID][]byte // decoded PCM
	context     *audio.Context
	overrideDir string
}

// NewAudioLoader creates a new audio loader with the given context. dir may
// be empty.
func NewAudioLoader(ctx *audio.Context, dir string) *AudioLoader {
	return &AudioLoader{
		sfxCache:    make(map[dc.SoundID][]byte),
		context:     ctx,
		overrideDir: dir,
	}
}

// PreloadSFX decodes or synthesizes a sound effect and caches it.
// Call this at startup to avoid lag on first play.
func (l *AudioLoader) PreloadSFX(id dc.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	pcm, err := l.decodeOverride(cfg.Sound.SFXFiles[id])
	if err != nil {
		return err
	}
	if pcm == nil {
		notes, ok := cfg.Sound.SFXTones[id]
		if !ok {
			return fmt.Errorf("no tones for sound %s", id)
		}
		pcm = synth.PCM(notes, cfg.Audio.Shape, l.context.SampleRate(), 1)
	}

	l.sfxCache[id] = pcm
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id dc.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// LoadMusic returns a looping player for a music track.
func (l *AudioLoader) LoadMusic(id dc.MusicID) (*audio.Player, error) {
	pcm, err := l.decodeOverride(cfg.Sound.MusicFiles[id])
	if err != nil {
		return nil, err
	}
	if pcm == nil {
		notes, ok := cfg.Sound.MusicTones[id]
		if !ok {
			return nil, fmt.Errorf("no tones for music %s", id)
		}
		pcm = synth.PCM(notes, cfg.Audio.Shape, l.context.SampleRate(), 1)
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := l.context.NewPlayer(loop)
	return player, err
}

// decodeOverride reads name from the override directory. It returns nil PCM
// and no error when there is no override file.
func (l *AudioLoader) decodeOverride(name string) ([]byte, error) {
	if l.overrideDir == "" || name == "" {
		return nil, nil
	}
	path := filepath.Join(l.overrideDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
