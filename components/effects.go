package components

import (
	"github.com/automoto/hillshot/shared/taskqueue"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks the active landing shake on the camera
type ScreenShakeData struct {
	Falloff *gween.Tween     // intensity over the shake duration
	Task    taskqueue.Handle // tick task
	Ticks   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData lights an obstacle for a few frames after a projectile hit
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
