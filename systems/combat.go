package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat drains queued fire requests. Every shot spawns a projectile
// from the eye along the view and costs stamina out of health. Requests
// made after health is depleted are dropped.
func UpdateCombat(ecs *ecs.ECS) {
	var requests []*donburi.Entry
	for e := range components.FireRequest.Iter(ecs.World) {
		requests = append(requests, e)
	}

	for _, e := range requests {
		count := components.FireRequest.Get(e).Count
		for i := 0; i < count; i++ {
			fire(ecs, e)
		}
		// Remove the request so it is processed only once.
		donburi.Remove[components.FireRequestData](e, components.FireRequest)
	}
}

func fire(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.Depleted {
		return
	}

	body := components.Body.Get(playerEntry)
	look := ViewDirection(ecs)
	entity := SpawnProjectile(ecs, body.Position, look)
	player.ShotsFired++

	hp := components.Health.Get(playerEntry)
	ApplyStaminaCost(hp, cfg.Player.StaminaCost)

	now := Now(ecs)
	events.ProjectileFired.Publish(ecs.World, events.ProjectileFiredEvent{
		At:        now,
		Entity:    entity,
		Origin:    body.Position,
		Direction: gamemath.SafeNormalize(look),
		Health:    hp.Current,
	})

	if hp.Current == 0 {
		player.Depleted = true
		events.PlayerDepleted.Publish(ecs.World, events.PlayerDepletedEvent{
			At:         now,
			ShotsFired: player.ShotsFired,
		})
	}
}

// ApplyStaminaCost takes cost from health. Health never goes below zero and
// never increases.
func ApplyStaminaCost(hp *components.HealthData, cost int) {
	if cost < 0 {
		cost = 0
	}
	hp.Current -= cost
	if hp.Current < 0 {
		hp.Current = 0
	}
}
