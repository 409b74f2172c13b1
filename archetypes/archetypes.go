package archetypes

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Controls,
		components.Health,
		components.Object,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Shot,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	// Session holds the per-world singletons systems share.
	Session = newArchetype(
		components.Clock,
		components.Scheduler,
		components.Random,
		components.Input,
		components.Bounds,
		components.HUD,
		components.Pause,
		components.MessageState,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
