package systems

import (
	"time"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances game time by the requested step. The step is clamped
// to [0, MaxFrameDelta] so a stalled host cannot tunnel bodies through the
// ground or skip the countdown.
func UpdateClock(ecs *ecs.ECS) {
	clock := getClock(ecs)
	if clock == nil {
		return
	}
	clock.Delta = ClampDelta(clock.Step)
	clock.Now += clock.Delta
	clock.Frame++
}

// ClampDelta bounds a frame delta to what the simulation accepts.
func ClampDelta(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > cfg.C.MaxFrameDelta {
		return cfg.C.MaxFrameDelta
	}
	return d
}

// SetFrameStep records the time the next frame should simulate.
func SetFrameStep(ecs *ecs.ECS, step time.Duration) {
	if clock := getClock(ecs); clock != nil {
		clock.Step = step
	}
}

func getClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}

// Now returns the current game time.
func Now(ecs *ecs.ECS) time.Duration {
	if clock := getClock(ecs); clock != nil {
		return clock.Now
	}
	return 0
}
