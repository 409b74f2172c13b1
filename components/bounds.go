package components

import (
	"time"

	cfg "github.com/automoto/hillshot/config"
	"github.com/yohamta/donburi"
)

type BoundsData struct {
	State cfg.BoundsStateID
	Since time.Duration // game time the player left the bounds

	// Countdown is the seconds shown to the player, valid while out of bounds.
	Countdown int
	Teleports int
}

var Bounds = donburi.NewComponentType[BoundsData]()
