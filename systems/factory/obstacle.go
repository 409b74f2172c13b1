package factory

import (
	"math/rand/v2"

	"github.com/automoto/hillshot/archetypes"
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/arenadata"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	KindHill   = "hill"
	KindTarget = "target"
)

// CreateObstacle spawns a static box and registers its footprint.
func CreateObstacle(ecs *ecs.ECS, kind string, box gamemath.Box) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	switch kind {
	case KindHill:
		obstacle.AddComponent(tags.Hill)
	case KindTarget:
		obstacle.AddComponent(tags.Target)
	}

	components.Obstacle.SetValue(obstacle, components.ObstacleData{Kind: kind, Box: box})
	obj := NewFootprint(obstacle, box, tags.ResolvSolid)
	AddToSpace(ecs, obj)
	return obstacle
}

// CreateHills scatters count hills of the configured size over the spread
// square. Hills rest on the ground.
func CreateHills(ecs *ecs.ECS, r *rand.Rand, count int) []*donburi.Entry {
	size := mgl64.Vec3{cfg.Arena.HillWidth, cfg.Arena.HillHeight, cfg.Arena.HillDepth}
	hills := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		c := gamemath.RandomPointInSquare(r, cfg.Arena.HillSpread, size[1]/2)
		hills = append(hills, CreateObstacle(ecs, KindHill, gamemath.BoxFromCenter(c, size)))
	}
	return hills
}

// CreateArenaObstacles spawns the fixed obstacles of a loaded arena.
func CreateArenaObstacles(ecs *ecs.ECS, arena *arenadata.Arena) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(arena.Obstacles))
	for _, o := range arena.Obstacles {
		box := gamemath.BoxFromCenter(mgl64.Vec3{o.X, o.Y, o.Z}, mgl64.Vec3{o.W, o.H, o.D})
		entries = append(entries, CreateObstacle(ecs, o.Kind, box))
	}
	return entries
}
