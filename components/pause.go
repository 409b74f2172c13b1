package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. Captured is the pointer capture seen on
// the previous frame, so capture changes can pause and resume the game.
type PauseData struct {
	IsPaused bool
	Captured bool
}

var Pause = donburi.NewComponentType[PauseData]()
