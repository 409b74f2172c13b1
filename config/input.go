package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionFire
	ActionReleaseCursor
	ActionPause
	ActionMute
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Radians per second of right-stick look at full deflection
	GamepadLookSpeed float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:   0.25,
		GamepadLookSpeed: 2.5,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionFire: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionReleaseCursor: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
		},
	}
}
