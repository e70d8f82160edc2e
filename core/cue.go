package core

import dc "github.com/automoto/showdown/shared/duelconfig"

// CueKind says what the audio collaborator should do with a Cue.
type CueKind int

const (
	CuePlaySound CueKind = iota
	CuePlayMusic
	CueStopMusic
)

// Cue is a fire-and-forget audio request. The session queues cues during a
// tick and the shell drains them afterwards.
type Cue struct {
	Kind  CueKind
	Sound dc.SoundID
	Music dc.MusicID
}

func soundCue(id dc.SoundID) Cue { return Cue{Kind: CuePlaySound, Sound: id} }
func musicCue(id dc.MusicID) Cue { return Cue{Kind: CuePlayMusic, Music: id} }
func stopMusicCue() Cue          { return Cue{Kind: CueStopMusic} }
