package systems

import (
	"image/color"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawRadar renders a top-down map of the broadphase space around the player
// in the top-right corner. North (-Z) is up.
func DrawRadar(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowRadar {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	po := components.Object.Get(playerEntry)
	cx, cy := po.X+po.W/2, po.Y+po.H/2

	size := cfg.HUD.RadarSize
	scale := size / (2 * cfg.HUD.RadarRange)
	left := float64(screen.Bounds().Dx()) - size - float64(cfg.HUD.Margin)
	top := float64(cfg.HUD.Margin)
	midX, midY := left+size/2, top+size/2

	vector.FillRect(screen, float32(left), float32(top), float32(size), float32(size), cfg.BlackFaded, false)

	for _, obj := range space.Objects() {
		x := midX + (obj.X-cx)*scale
		y := midY + (obj.Y-cy)*scale
		w, h := obj.W*scale, obj.H*scale

		// Cull objects outside the radar
		if x+w < left || x > left+size || y+h < top || y > top+size {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.Brown
			if e, ok := obj.Data.(*donburi.Entry); ok && e.HasComponent(tags.Target) {
				c = cfg.Red
			}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Blue
		} else if obj.HasTags(tags.ResolvProjectile) {
			c = cfg.Yellow
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
		vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
		vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
	}

	// Heading
	dir := gamemath.ForwardAxis(ViewYaw(ecs)).Mul(size / 6)
	vector.StrokeLine(screen, float32(midX), float32(midY), float32(midX+dir[0]), float32(midY+dir[2]), 1, cfg.White, false)
}
