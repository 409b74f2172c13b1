package factory

import (
	"math"

	"github.com/automoto/hillshot/archetypes"
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the broadphase space covering the arena's XZ footprint.
func CreateSpace(ecs *ecs.ECS, size float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	side := int(math.Ceil(size))
	spaceData := resolv.NewSpace(side, side, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// Footprint maps a box to its rectangle in the broadphase space.
func Footprint(box gamemath.Box) (x, y, w, h float64) {
	half := cfg.Arena.Size / 2
	size := box.Size()
	return box.Min[0] + half, box.Min[2] + half, size[0], size[2]
}

// NewFootprint creates a resolv object for box, linked back to entry.
func NewFootprint(entry *donburi.Entry, box gamemath.Box, tags ...string) *resolv.Object {
	x, y, w, h := Footprint(box)
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

// MoveFootprint re-places obj over box and refreshes its cells.
func MoveFootprint(obj *resolv.Object, box gamemath.Box) {
	obj.X, obj.Y, _, _ = Footprint(box)
	obj.Update()
}

// AddToSpace inserts obj into the world's space, if there is one.
func AddToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
