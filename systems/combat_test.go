package systems

import (
	"testing"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/yohamta/donburi"
)

func TestFireSpendsStamina(t *testing.T) {
	e, player := newTestWorld(t)
	var fired []events.ProjectileFiredEvent
	events.ProjectileFired.Subscribe(e.World, func(w donburi.World, ev events.ProjectileFiredEvent) {
		fired = append(fired, ev)
	})

	for i := 0; i < 3; i++ {
		step(e, frame, cfg.ActionFire)
		step(e, frame)
	}

	hp := components.Health.Get(player)
	if want := cfg.Player.Health - 3*cfg.Player.StaminaCost; hp.Current != want {
		t.Errorf("health = %d, want %d", hp.Current, want)
	}
	if LiveProjectiles(e) != 3 {
		t.Errorf("live projectiles = %d, want 3", LiveProjectiles(e))
	}
	if len(fired) != 3 {
		t.Fatalf("fired events = %d, want 3", len(fired))
	}
	if fired[2].Health != hp.Current {
		t.Errorf("last event health = %d, want %d", fired[2].Health, hp.Current)
	}
	if hud(e).Health != HealthText(hp.Current) {
		t.Errorf("HUD health = %q", hud(e).Health)
	}
}

func TestHoldingFireShootsOnce(t *testing.T) {
	e, player := newTestWorld(t)
	run(e, 10, frame, cfg.ActionFire)
	if got := components.Health.Get(player).Current; got != cfg.Player.Health-cfg.Player.StaminaCost {
		t.Errorf("health = %d after holding fire", got)
	}
}

func TestDepletionIsTerminal(t *testing.T) {
	e, player := newTestWorld(t)
	hp := components.Health.Get(player)
	hp.Current = 2

	depleted := 0
	events.PlayerDepleted.Subscribe(e.World, func(w donburi.World, ev events.PlayerDepletedEvent) {
		depleted++
	})

	for i := 0; i < 5; i++ {
		RequestFire(player)
		step(e, frame)
	}

	if hp.Current != 0 {
		t.Errorf("health = %d, want 0", hp.Current)
	}
	if depleted != 1 {
		t.Errorf("depleted events = %d, want 1", depleted)
	}
	if !components.Player.Get(player).Depleted || !hud(e).Depleted {
		t.Errorf("player not marked depleted")
	}
	if n := LiveProjectiles(e); n != 2 {
		t.Errorf("live projectiles = %d, want 2; fire after depletion must be ignored", n)
	}
}

func TestQueuedRequestsDrainInOneFrame(t *testing.T) {
	e, player := newTestWorld(t)
	RequestFire(player)
	RequestFire(player)
	step(e, frame)

	if player.HasComponent(components.FireRequest) {
		t.Errorf("fire request left on the player")
	}
	if got := components.Player.Get(player).ShotsFired; got != 2 {
		t.Errorf("shots fired = %d, want 2", got)
	}
}

func TestApplyStaminaCostClamps(t *testing.T) {
	tests := []struct {
		current, cost, want int
	}{
		{100, 1, 99},
		{1, 1, 0},
		{0, 1, 0},
		{3, 10, 0},
		{5, -2, 5},
	}
	for _, tt := range tests {
		hp := components.HealthData{Current: tt.current, Max: 100}
		ApplyStaminaCost(&hp, tt.cost)
		if hp.Current != tt.want {
			t.Errorf("ApplyStaminaCost(%d, %d) = %d, want %d", tt.current, tt.cost, hp.Current, tt.want)
		}
	}
}
