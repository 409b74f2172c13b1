package systems

import (
	"github.com/automoto/hillshot/events"
	"github.com/yohamta/donburi/ecs"
)

// DispatchEvents delivers the events published during the frame. Must run
// after the gameplay systems, so subscribers see the frame's final state.
func DispatchEvents(ecs *ecs.ECS) {
	events.Dispatch(ecs.World)
}
