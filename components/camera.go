package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the pointer-lock view attached to the player.
type CameraData struct {
	Yaw   float64 // radians about +Y, 0 looks down -Z
	Pitch float64 // radians, positive looks up

	// Offset is added to the player's position to place the eye. The shake
	// effect owns it.
	Offset mgl64.Vec3

	// Captured is true while the host holds the pointer.
	Captured bool
}

var Camera = donburi.NewComponentType[CameraData]()
