package factory

import (
	"math/rand/v2"

	"github.com/automoto/hillshot/archetypes"
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/taskqueue"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singletons shared by every system: clock,
// scheduler, random source, input, bounds monitor, HUD text, pause state,
// notices and the sound queue.
func CreateSession(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Clock.SetValue(session, components.ClockData{})
	components.Scheduler.SetValue(session, components.SchedulerData{Queue: taskqueue.New()})
	components.Random.SetValue(session, components.RandomData{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	components.Input.SetValue(session, components.InputData{})
	components.Bounds.SetValue(session, components.BoundsData{State: cfg.BoundsIn})
	components.HUD.SetValue(session, components.HUDData{})
	components.Pause.SetValue(session, components.PauseData{})
	components.MessageState.SetValue(session, components.MessageStateData{})
	components.Audio.SetValue(session, components.AudioData{PendingSFX: make([]cfg.SoundID, 0, 8)})

	return session
}
