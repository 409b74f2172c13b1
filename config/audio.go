package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFire
	SoundLand
	SoundTeleport
	SoundDepleted
	SoundPause
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized effect: a sweep from StartHz to EndHz with a
// quadratic decay. Noise mixes in white noise (0 to 1).
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Noise    float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundFire:     {StartHz: 880, EndHz: 220, Duration: 90 * time.Millisecond, Noise: 0.3},
			SoundLand:     {StartHz: 120, EndHz: 60, Duration: 120 * time.Millisecond, Noise: 0.5},
			SoundTeleport: {StartHz: 300, EndHz: 1200, Duration: 250 * time.Millisecond},
			SoundDepleted: {StartHz: 440, EndHz: 110, Duration: 600 * time.Millisecond},
			SoundPause:    {StartHz: 660, EndHz: 660, Duration: 60 * time.Millisecond},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundLand: 1.5,
		},
	}
}
