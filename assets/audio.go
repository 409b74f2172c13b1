package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/hillshot/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// noiseSeed keeps synthesized effects identical across runs.
const noiseSeed = 0x5eed

// AudioLoader synthesizes sound effects and caches the PCM per sound.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes every configured sound so the first play does not
// stall a frame.
func (l *AudioLoader) PreloadSFX() {
	for id := range cfg.Sound.Tones {
		l.pcm(id)
	}
}

// LoadSFX returns a new player for a sound, or nil when the sound has no tone.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) *audio.Player {
	pcm := l.pcm(id)
	if pcm == nil {
		return nil
	}
	return l.context.NewPlayerFromBytes(pcm)
}

func (l *AudioLoader) pcm(id cfg.SoundID) []byte {
	if data, ok := l.sfxCache[id]; ok {
		return data
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil
	}
	data := SynthesizeTone(tone, l.context.SampleRate())
	l.sfxCache[id] = data
	return data
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM, the
// format audio.Context players read.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	frames := int(t.Duration.Seconds() * float64(sampleRate))
	if frames <= 0 {
		return nil
	}
	out := make([]byte, frames*4)
	r := rand.New(rand.NewPCG(noiseSeed, uint64(frames)))

	phase := 0.0
	for i := 0; i < frames; i++ {
		p := float64(i) / float64(frames)
		freq := t.StartHz + (t.EndHz-t.StartHz)*p
		env := (1 - p) * (1 - p)

		s := math.Sin(phase)*(1-t.Noise) + (r.Float64()*2-1)*t.Noise
		v := int16(s * env * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))

		phase += 2 * math.Pi * freq / float64(sampleRate)
	}
	return out
}
