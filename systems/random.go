package systems

import (
	"math/rand/v2"

	"github.com/automoto/hillshot/components"
	"github.com/yohamta/donburi/ecs"
)

var fallbackRand = rand.New(rand.NewPCG(1, 2))

// getRandom returns the session's random source.
func getRandom(e *ecs.ECS) *rand.Rand {
	entry, ok := components.Random.First(e.World)
	if !ok {
		return fallbackRand
	}
	return components.Random.Get(entry).Rand
}
