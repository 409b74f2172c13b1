package components

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/hillshot/shared/taskqueue"
	"github.com/yohamta/donburi"
)

// ClockData is the session's game time. Now only moves forward.
type ClockData struct {
	// Step is the frame time requested by the host for the next frame.
	Step time.Duration

	Now   time.Duration
	Delta time.Duration // time simulated by the current frame
	Frame int

	// NextSeq numbers spawned projectiles.
	NextSeq uint64
}

// DeltaSeconds returns the current frame's delta in seconds.
func (c *ClockData) DeltaSeconds() float64 {
	return c.Delta.Seconds()
}

var Clock = donburi.NewComponentType[ClockData]()

// SchedulerData holds deferred work. Tasks run on the frame goroutine when
// the scheduler system polls the queue.
type SchedulerData struct {
	*taskqueue.Queue
}

var Scheduler = donburi.NewComponentType[SchedulerData]()

// RandomData is the session's random source. Seeded sessions replay exactly.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
