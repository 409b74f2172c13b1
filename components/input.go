package components

import (
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/controls"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Look motion gathered this frame, in radians.
	LookYaw   float64
	LookPitch float64

	// Cursor position at the previous poll, valid while the cursor is captured.
	CursorX, CursorY int
	CursorValid      bool
}

var Input = donburi.NewComponentType[InputData]()

// ControlsData is the player's movement input state, written by input edges
// and read by the physics integrator.
type ControlsData struct {
	controls.State
}

var Controls = donburi.NewComponentType[ControlsData]()
