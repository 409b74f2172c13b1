package systems

import (
	"sync"

	"github.com/automoto/hillshot/assets"
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared by every world the host runs
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioEnabled       bool
	audioInitOnce      sync.Once
)

// EnableAudio opens the audio device and synthesizes every effect up front.
// Worlds without a host never call it; their queued sounds are dropped.
func EnableAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.CurrentContext()
		if globalAudioContext == nil {
			globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		}
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		globalAudioLoader.PreloadSFX()
		audioEnabled = true
	})
}

// UpdateAudio handles the mute toggle and plays the sounds queued this frame.
// Must run AFTER DispatchEvents so event-driven sounds play the same frame.
func UpdateAudio(e *ecs.ECS) {
	if entry, ok := components.Input.First(e.World); ok {
		if GetAction(components.Input.Get(entry), cfg.ActionMute).JustPressed {
			globalMuted = !globalMuted
			if globalMuted {
				ShowMessage(e.World, cfg.Message.SoundOff)
			} else {
				ShowMessage(e.World, cfg.Message.SoundOn)
			}
		}
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioEnabled {
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player := globalAudioLoader.LoadSFX(soundID)
	if player == nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	queueSFX(e.World, sound)
}

func queueSFX(w donburi.World, sound cfg.SoundID) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SubscribeSounds plays the feedback sounds for game events.
func SubscribeSounds(w donburi.World) {
	events.ProjectileFired.Subscribe(w, func(w donburi.World, _ events.ProjectileFiredEvent) {
		queueSFX(w, cfg.SoundFire)
	})
	events.Landed.Subscribe(w, func(w donburi.World, ev events.LandedEvent) {
		if ev.Shake {
			queueSFX(w, cfg.SoundLand)
		}
	})
	events.Teleported.Subscribe(w, func(w donburi.World, _ events.TeleportedEvent) {
		queueSFX(w, cfg.SoundTeleport)
	})
	events.PlayerDepleted.Subscribe(w, func(w donburi.World, _ events.PlayerDepletedEvent) {
		queueSFX(w, cfg.SoundDepleted)
	})
}
