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

// CreateProjectile spawns a projectile at origin travelling along look at
// the configured speed.
func CreateProjectile(ecs *ecs.ECS, origin, look mgl64.Vec3) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	shot := gamemath.Shot{
		Position: origin,
		Velocity: gamemath.ShotVelocity(look, cfg.Projectile.Speed),
	}
	components.Shot.SetValue(projectile, components.ShotData{Shot: shot})

	data := components.ProjectileData{}
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(clockEntry)
		data.SpawnedAt = clock.Now
		data.Seq = clock.NextSeq
		clock.NextSeq++
	}
	components.Projectile.SetValue(projectile, data)

	obj := NewFootprint(projectile, gamemath.ShotBox(shot, cfg.Projectile.Radius), tags.ResolvProjectile)
	AddToSpace(ecs, obj)

	return projectile
}
