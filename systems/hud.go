package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
)

// UpdateHUD rebuilds the HUD text from the current game state. The text is a
// pure projection: nothing reads it back.
func UpdateHUD(ecs *ecs.ECS) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	hud.Paused = IsPaused(ecs)
	hud.PauseHint = ""
	if hud.Paused {
		hud.PauseHint = PauseHint(getOrCreateInput(ecs).LastInputMethod)
	}
	hud.Notice = ""
	if state := getMessageState(ecs.World); state != nil {
		hud.Notice = state.Text
	}

	hud.Countdown = ""
	if boundsEntry, ok := components.Bounds.First(ecs.World); ok {
		bounds := components.Bounds.Get(boundsEntry)
		if bounds.State == cfg.BoundsOut {
			hud.Countdown = CountdownText(bounds.Countdown)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hud.Health = HealthText(components.Health.Get(playerEntry).Current)
	hud.Depleted = components.Player.Get(playerEntry).Depleted
}

// CountdownText formats the out-of-bounds countdown line.
func CountdownText(seconds int) string {
	return fmt.Sprintf("Returning in: %d", seconds)
}

// HealthText formats the health line.
func HealthText(health int) string {
	return fmt.Sprintf("Health: %d", health)
}

// DrawHUD renders the health bar under the HUD labels.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	if hp.Max <= 0 {
		return
	}

	x := float32(cfg.HUD.Margin)
	y := float32(cfg.HUD.Margin) + float32(cfg.HUD.FontSize)*2 + 16

	// Background (dark gray)
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)

	ratio := float32(hp.Current) / float32(hp.Max)
	fill := cfg.HUD.HealthColor
	if hp.Current == 0 {
		fill = cfg.HUD.DepletedColor
	}
	vector.FillRect(screen, x, y, hudBarWidth*ratio, hudBarHeight, fill, false)
}
