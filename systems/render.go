package systems

import (
	"image/color"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// box edges as corner index pairs; corner bits are x, y, z
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// viewProjection maps world points to the screen from the camera's eye.
type viewProjection struct {
	m    mgl64.Mat4
	w, h float64
}

func newViewProjection(ecs *ecs.ECS, screen *ebiten.Image) viewProjection {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	eye := EyePosition(ecs)
	view := mgl64.LookAtV(eye, eye.Add(ViewDirection(ecs)), gamemath.Up)
	proj := mgl64.Perspective(mgl64.DegToRad(cfg.Camera.FieldOfView), w/h, cfg.Camera.Near, cfg.Camera.Far)
	return viewProjection{m: proj.Mul4(view), w: w, h: h}
}

// project returns the screen position of p, or false when p is behind the
// near plane.
func (vp viewProjection) project(p mgl64.Vec3) (float32, float32, bool) {
	clip := vp.m.Mul4x1(p.Vec4(1))
	if clip[3] < cfg.Camera.Near {
		return 0, 0, false
	}
	x := (clip[0]/clip[3] + 1) / 2 * vp.w
	y := (1 - clip[1]/clip[3]) / 2 * vp.h
	return float32(x), float32(y), true
}

func (vp viewProjection) strokeBox(screen *ebiten.Image, b gamemath.Box, c color.Color) {
	var corners [8]mgl64.Vec3
	for i := range corners {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				corners[i][axis] = b.Max[axis]
			} else {
				corners[i][axis] = b.Min[axis]
			}
		}
	}
	for _, edge := range boxEdges {
		x0, y0, ok0 := vp.project(corners[edge[0]])
		x1, y1, ok1 := vp.project(corners[edge[1]])
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, true)
	}
}

// DrawWorld renders the sky, the ground horizon, obstacles as wireframes and
// projectiles as dots.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)
	vp := newViewProjection(ecs, screen)

	// Ground: fill below the projected horizon.
	eye := EyePosition(ecs)
	far := eye.Add(gamemath.ForwardAxis(ViewYaw(ecs)).Mul(cfg.Camera.Far * 0.9))
	far[1] = 0
	if _, hy, ok := vp.project(far); ok && hy < float32(vp.h) {
		vector.FillRect(screen, 0, hy, float32(vp.w), float32(vp.h)-hy, cfg.Green, false)
	}

	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		var c color.Color = cfg.Brown
		switch {
		case Flashing(e):
			c = cfg.Effects.FlashColor
		case e.HasComponent(tags.Target):
			c = cfg.Red
		}
		vp.strokeBox(screen, components.Obstacle.Get(e).Box, c)
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		shot := components.Shot.Get(e)
		if x, y, ok := vp.project(shot.Position); ok {
			vector.DrawFilledCircle(screen, x, y, 3, cfg.Yellow, true)
		}
	})
}

// DrawOverlay renders the crosshair at the screen center and the gun icon in
// the bottom-right corner.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())

	// Crosshair
	vector.FillRect(screen, w/2-1, h/2-1, 2, 2, cfg.Black, false)

	// Gun icon in a 100x100 box
	left := w - 100 - float32(cfg.HUD.Margin)
	top := h - 100 - float32(cfg.HUD.Margin)
	vector.FillRect(screen, left+20, top+70, 60, 10, cfg.Black, false) // Barrel
	vector.FillRect(screen, left+35, top+50, 30, 20, cfg.Black, false) // Handle
}
