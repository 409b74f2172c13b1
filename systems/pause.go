package systems

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause action and follows pointer capture:
// releasing the cursor pauses the game and capturing it again resumes. A click
// also resumes a game paused with the cursor still captured.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
	}

	if camera := getCamera(ecs); camera != nil {
		switch {
		case pause.Captured && !camera.Captured:
			SetPaused(ecs, true)
		case !pause.Captured && camera.Captured:
			SetPaused(ecs, false)
		case pause.IsPaused && camera.Captured && GetAction(input, cfg.ActionFire).JustPressed:
			SetPaused(ecs, false)
		}
		pause.Captured = camera.Captured
	}
}

// SetPaused pauses or resumes the simulation. Pausing drops held movement and
// any active boost so no key release is missed while the systems are idle.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	PlaySFX(ecs, cfg.SoundPause)
	if !paused {
		return
	}

	ResetMessageState(ecs.World)
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		components.Controls.Get(playerEntry).Reset()
		EndFlight(ecs, playerEntry)
	})
}

// DrawPause dims the screen while paused. The title and hint are HUD labels.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)
}

// PauseHint returns the resume hint for the input device in use.
func PauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return cfg.Pause.GamepadHint
	}
	return cfg.Pause.Hint
}

// IsPaused reports whether the simulation is paused.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	return ok && components.Pause.Get(entry).IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
