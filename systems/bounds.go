package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/systems/factory"
	"github.com/automoto/hillshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds watches the player's altitude. Climbing above the limit starts
// a countdown; when it runs out the player is returned to a random point near
// the origin. Dropping back below the limit cancels the countdown.
func UpdateBounds(ecs *ecs.ECS) {
	boundsEntry, ok := components.Bounds.First(ecs.World)
	if !ok {
		return
	}
	bounds := components.Bounds.Get(boundsEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	body := &components.Body.Get(playerEntry).Body
	now := Now(ecs)

	if body.Position[1] <= cfg.Bounds.MaxAltitude {
		bounds.State = cfg.BoundsIn
		bounds.Countdown = 0
		return
	}

	if bounds.State == cfg.BoundsIn {
		bounds.State = cfg.BoundsOut
		bounds.Since = now
	}
	bounds.Countdown = gamemath.Countdown(cfg.Bounds.CountdownSeconds, now-bounds.Since)
	if bounds.Countdown > 0 {
		return
	}

	from := body.Position
	to := gamemath.RandomPointInSquare(getRandom(ecs), cfg.Bounds.ReturnAreaSize, cfg.Bounds.ReturnAltitude)
	body.Position = to
	body.Velocity = mgl64.Vec3{}
	body.Grounded = to[1] <= cfg.Player.GroundHeight
	EndFlight(ecs, playerEntry)
	if obj := components.Object.Get(playerEntry); obj != nil && obj.Object != nil {
		factory.MoveFootprint(obj.Object, factory.PlayerBox(body.Position))
	}

	bounds.State = cfg.BoundsIn
	bounds.Countdown = 0
	bounds.Teleports++
	events.Teleported.Publish(ecs.World, events.TeleportedEvent{At: now, From: from, To: to})
}
