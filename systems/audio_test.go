package systems

import (
	"testing"

	cfg "github.com/automoto/hillshot/config"
)

func TestGameEventsQueueSounds(t *testing.T) {
	e, _ := newTestWorld(t)
	SubscribeSounds(e.World)

	step(e, frame, cfg.ActionFire)
	if !hasSound(pendingSounds(e), cfg.SoundFire) {
		t.Fatalf("pending sounds %v lack the fire sound", pendingSounds(e))
	}

	UpdateAudio(e)
	if n := len(pendingSounds(e)); n != 0 {
		t.Errorf("%d sounds left after the audio update", n)
	}
}

func TestDepletionQueuesSoundOnce(t *testing.T) {
	override(t, &cfg.Player.StaminaCost, cfg.Player.Health)
	e, _ := newTestWorld(t)
	SubscribeSounds(e.World)

	for i := 0; i < 3; i++ {
		step(e, frame, cfg.ActionFire)
		step(e, frame)
	}

	n := 0
	for _, s := range pendingSounds(e) {
		if s == cfg.SoundDepleted {
			n++
		}
	}
	if n != 1 {
		t.Errorf("depleted sound queued %d times, want 1", n)
	}
}

func TestMuteToggle(t *testing.T) {
	t.Cleanup(func() { globalMuted = false })
	e, _ := newTestWorld(t)

	step(e, frame, cfg.ActionMute)
	UpdateAudio(e)
	if !globalMuted {
		t.Fatalf("mute action did not mute")
	}
	if got := getMessageState(e.World).Text; got != cfg.Message.SoundOff {
		t.Errorf("notice = %q, want %q", got, cfg.Message.SoundOff)
	}

	step(e, frame)
	UpdateAudio(e)
	step(e, frame, cfg.ActionMute)
	UpdateAudio(e)
	if globalMuted {
		t.Errorf("second mute action did not unmute")
	}
}
