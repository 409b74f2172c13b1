package factory

import (
	"github.com/automoto/hillshot/archetypes"
	"github.com/automoto/hillshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the view, looking down -Z.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}
