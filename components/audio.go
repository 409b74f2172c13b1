package components

import (
	cfg "github.com/automoto/hillshot/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects raised this frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
