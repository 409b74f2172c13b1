package factory

import (
	"github.com/automoto/hillshot/archetypes"
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing on the ground at (x, z).
func CreatePlayer(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	pos := mgl64.Vec3{x, cfg.Player.GroundHeight, z}
	components.Body.SetValue(player, components.BodyData{
		Body: gamemath.Body{Position: pos, Grounded: true},
	})
	components.Controls.SetValue(player, components.ControlsData{})
	components.Controls.Get(player).CanJump = true
	components.Player.SetValue(player, components.PlayerData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	obj := NewFootprint(player, PlayerBox(pos), "character", tags.ResolvPlayer)
	AddToSpace(ecs, obj)

	return player
}

// PlayerBox returns the player's collision box for an eye position.
func PlayerBox(eye mgl64.Vec3) gamemath.Box {
	w := cfg.Player.CollisionWidth
	h := cfg.Player.CollisionHeight
	return gamemath.Box{
		Min: mgl64.Vec3{eye[0] - w/2, eye[1] - h, eye[2] - w/2},
		Max: mgl64.Vec3{eye[0] + w/2, eye[1], eye[2] + w/2},
	}
}
