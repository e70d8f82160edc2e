package components

import (
	dc "github.com/automoto/showdown/shared/duelconfig"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for the audio system (singleton component)
type AudioData struct {
	PendingSFX []dc.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
