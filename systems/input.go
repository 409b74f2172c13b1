package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateControls in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.LookYaw, input.LookPitch = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if pollStickLook(input) {
		gamepadUsed = true
	}

	updatePointerCapture(ecs, input)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// updatePointerCapture grabs the cursor on click and releases it on the
// release action. Cursor motion only turns the view while captured.
func updatePointerCapture(ecs *ecs.ECS, input *components.InputData) {
	camera := getCamera(ecs)
	if camera == nil {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !camera.Captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		camera.Captured = true
		input.CursorValid = false
	}
	if GetAction(input, cfg.ActionReleaseCursor).JustPressed && camera.Captured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		camera.Captured = false
	}
	// The host can drop the capture on its own, e.g. on focus loss.
	if camera.Captured && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		camera.Captured = false
	}

	if !camera.Captured {
		input.CursorValid = false
		return
	}

	x, y := ebiten.CursorPosition()
	if input.CursorValid {
		input.LookYaw -= float64(x-input.CursorX) * cfg.InputTiming.MouseSensitivity
		input.LookPitch -= float64(y-input.CursorY) * cfg.InputTiming.MouseSensitivity
	}
	input.CursorX, input.CursorY = x, y
	input.CursorValid = true
}

// pollStickLook turns the right stick into look motion for this frame.
func pollStickLook(input *components.InputData) bool {
	deadzone := cfg.Input.AnalogDeadzone
	step := cfg.Input.GamepadLookSpeed / float64(ebiten.TPS())
	used := false

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
		if horizontal < -deadzone || horizontal > deadzone {
			input.LookYaw -= horizontal * step
			used = true
		}
		if vertical < -deadzone || vertical > deadzone {
			input.LookPitch -= vertical * step
			used = true
		}
	}
	return used
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
