package components

import "github.com/yohamta/donburi"

// HUDData holds the HUD text. It is rebuilt from game state every frame.
type HUDData struct {
	Countdown string
	Health    string
	Notice    string
	PauseHint string // set while paused, for the last input device used
	Depleted  bool
	Paused    bool
}

var HUD = donburi.NewComponentType[HUDData]()
