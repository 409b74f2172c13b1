package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Hill       = donburi.NewTag().SetName("Hill")
	Target     = donburi.NewTag().SetName("Target")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for the broadphase space
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"
)
