package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	SpawnedAt time.Duration // game time
	Seq       uint64        // spawn order, used to evict the oldest
	Bounces   int
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// FireRequestData queues shots from the fire control until combat drains it.
type FireRequestData struct {
	Count int
}

var FireRequest = donburi.NewComponentType[FireRequestData]()
