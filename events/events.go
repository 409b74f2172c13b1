// Package events declares the notifications systems publish for the host.
// They are queued during a frame and delivered when the frame dispatches
// events, after every system has run.
package events

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PlayerDepletedEvent is published once, when health first reaches zero.
type PlayerDepletedEvent struct {
	At         time.Duration
	ShotsFired int
}

// LandedEvent is published on every airborne-to-grounded transition.
type LandedEvent struct {
	At       time.Duration
	Position mgl64.Vec3
	Shake    bool // false when the landing guard suppressed the shake
}

// TeleportedEvent is published when the bounds monitor returns the player.
type TeleportedEvent struct {
	At   time.Duration
	From mgl64.Vec3
	To   mgl64.Vec3
}

// ProjectileFiredEvent is published for every spawned projectile.
type ProjectileFiredEvent struct {
	At        time.Duration
	Entity    donburi.Entity
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Health    int // health after the stamina cost
}

var (
	PlayerDepleted  = events.NewEventType[PlayerDepletedEvent]()
	Landed          = events.NewEventType[LandedEvent]()
	Teleported      = events.NewEventType[TeleportedEvent]()
	ProjectileFired = events.NewEventType[ProjectileFiredEvent]()
)

// Dispatch delivers every queued event to its subscribers.
func Dispatch(w donburi.World) {
	events.ProcessAllEvents(w)
}
