package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/automoto/hillshot/shared/controls"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer integrates player movement for the frame.
// Must run AFTER UpdateControls and UpdateCombat.
func UpdatePlayer(ecs *ecs.ECS) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry, clock)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, clock *components.ClockData) {
	body := &components.Body.Get(playerEntry).Body
	state := &components.Controls.Get(playerEntry).State

	res := gamemath.StepPlayer(body, moveIntent(state, ViewYaw(ecs)), moveParams(), clock.DeltaSeconds())
	if body.Grounded {
		state.CanJump = true
	}

	if obj := components.Object.Get(playerEntry); obj != nil && obj.Object != nil {
		factory.MoveFootprint(obj.Object, factory.PlayerBox(body.Position))
	}

	if res.Landed {
		shook := TriggerLandingShake(ecs, playerEntry)
		events.Landed.Publish(ecs.World, events.LandedEvent{
			At:       clock.Now,
			Position: body.Position,
			Shake:    shook,
		})
	}
}

func moveIntent(s *controls.State, yaw float64) gamemath.MoveIntent {
	return gamemath.MoveIntent{
		Forward:    s.Held(controls.Forward),
		Back:       s.Held(controls.Back),
		Left:       s.Held(controls.Left),
		Right:      s.Held(controls.Right),
		SpeedBoost: s.SpeedBoost,
		Flying:     s.Flying,
		Yaw:        yaw,
	}
}

func moveParams() gamemath.MoveParams {
	return gamemath.MoveParams{
		Damping:         cfg.Player.Damping,
		Gravity:         cfg.Player.Gravity,
		Mass:            cfg.Player.Mass,
		Acceleration:    cfg.Player.Acceleration,
		BoostMultiplier: cfg.Player.BoostMultiplier,
		FlyRiseSpeed:    cfg.Player.FlyRiseSpeed,
		GroundHeight:    cfg.Player.GroundHeight,
	}
}
