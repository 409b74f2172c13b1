package systems

import (
	"log"
	"sort"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/systems/factory"
	"github.com/automoto/hillshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnProjectile launches a projectile from origin along look and evicts
// the oldest live projectiles above the configured cap.
func SpawnProjectile(ecs *ecs.ECS, origin, look mgl64.Vec3) donburi.Entity {
	entry := factory.CreateProjectile(ecs, origin, look)
	evictOldestProjectiles(ecs, cfg.Projectile.MaxLive)
	return entry.Entity()
}

// UpdateProjectiles advances every projectile by the frame delta, bounces it
// off obstacles and the ground, and removes expired or escaped projectiles.
func UpdateProjectiles(ecs *ecs.ECS) {
	clockEntry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	dt := clock.DeltaSeconds()
	pc := cfg.Projectile

	var toDestroy, hit []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		shot := &components.Shot.Get(e).Shot

		gamemath.IntegrateShot(shot, pc.Gravity, dt)

		obj := components.Object.Get(e)
		factory.MoveFootprint(obj.Object, gamemath.ShotBox(*shot, pc.Radius))

		if obstacles := bounceOffObstacles(obj, shot); len(obstacles) > 0 {
			projectile.Bounces++
			hit = append(hit, obstacles...)
		}
		if gamemath.BounceOffGround(shot, pc.Radius) {
			projectile.Bounces++
		}

		if clock.Now-projectile.SpawnedAt >= pc.Lifetime || outsideArena(shot.Position) {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		destroyProjectile(ecs, e)
	}
	for _, e := range hit {
		if e.Valid() {
			TriggerFlash(e)
		}
	}
}

// bounceOffObstacles tests the projectile against the obstacles sharing its
// broadphase cells and returns the obstacles it bounced off.
func bounceOffObstacles(obj *components.ObjectData, shot *gamemath.Shot) []*donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var bounced []*donburi.Entry
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		obstacleEntry, ok := solid.Data.(*donburi.Entry)
		if !ok || !obstacleEntry.Valid() || !obstacleEntry.HasComponent(components.Obstacle) {
			continue
		}
		box := components.Obstacle.Get(obstacleEntry).Box
		if !box.Intersects(gamemath.ShotBox(*shot, cfg.Projectile.Radius)) {
			continue
		}
		if gamemath.BounceOffBox(shot, cfg.Projectile.Radius, box, cfg.Projectile.Bounce) {
			bounced = append(bounced, obstacleEntry)
		}
	}
	return bounced
}

func outsideArena(p mgl64.Vec3) bool {
	half := cfg.Arena.Size / 2
	return p[0] < -half || p[0] > half || p[2] < -half || p[2] > half
}

func evictOldestProjectiles(ecs *ecs.ECS, max int) {
	if max <= 0 {
		return
	}
	var live []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		live = append(live, e)
	})
	if len(live) <= max {
		return
	}

	sort.Slice(live, func(i, j int) bool {
		return components.Projectile.Get(live[i]).Seq < components.Projectile.Get(live[j]).Seq
	})
	excess := live[:len(live)-max]
	if cfg.Debug.LogEvents {
		log.Printf("evicting %d projectiles above the cap of %d", len(excess), max)
	}
	for _, e := range excess {
		destroyProjectile(ecs, e)
	}
}

func destroyProjectile(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(e)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// LiveProjectiles returns the number of projectiles in flight.
func LiveProjectiles(ecs *ecs.ECS) int {
	n := 0
	tags.Projectile.Each(ecs.World, func(*donburi.Entry) { n++ })
	return n
}
