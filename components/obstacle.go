package components

import (
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ObstacleData is a static box. It never changes after the arena is built.
type ObstacleData struct {
	Kind string
	Box  gamemath.Box
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
