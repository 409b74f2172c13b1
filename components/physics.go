package components

import (
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the player's kinematic state. Velocity is in the view frame.
type BodyData struct {
	gamemath.Body
}

var Body = donburi.NewComponentType[BodyData]()

// ShotData is a projectile's kinematic state in world space.
type ShotData struct {
	gamemath.Shot
}

var Shot = donburi.NewComponentType[ShotData]()
