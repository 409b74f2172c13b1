package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's footprint in the broadphase space. Footprints
// live on the XZ plane shifted so the arena's corner sits at the origin.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
