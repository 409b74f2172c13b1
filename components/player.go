package components

import (
	"github.com/automoto/hillshot/shared/taskqueue"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Landing guards the landing shake; it clears when the shake finishes.
	Landing bool
	// Depleted is set once health reaches zero and never clears.
	Depleted bool
	// FlightTask ends the current flight boost when it fires.
	FlightTask taskqueue.Handle
	// ShotsFired counts fire events that produced a projectile.
	ShotsFired int
}

var Player = donburi.NewComponentType[PlayerData]()
