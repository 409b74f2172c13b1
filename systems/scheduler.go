package systems

import (
	"github.com/automoto/hillshot/components"
	"github.com/automoto/hillshot/shared/taskqueue"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScheduler runs every deferred task that is due at the current game
// time. Must run right after UpdateClock.
func UpdateScheduler(ecs *ecs.ECS) {
	q := getScheduler(ecs)
	if q == nil {
		return
	}
	q.Advance(Now(ecs))
}

func getScheduler(ecs *ecs.ECS) *taskqueue.Queue {
	entry, ok := components.Scheduler.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Scheduler.Get(entry).Queue
}
