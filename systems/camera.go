package systems

import (
	"log"
	"time"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/automoto/hillshot/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies this frame's look motion to the view. The shake
// offset is driven by scheduled ticks, not by this system.
func UpdateCamera(e *ecs.ECS) {
	camera := getCamera(e)
	if camera == nil {
		return
	}

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	Look(camera, input.LookYaw, input.LookPitch)
}

// Look turns the view by the given angles. Pitch stops short of straight up
// and straight down.
func Look(camera *components.CameraData, yaw, pitch float64) {
	camera.Yaw += yaw
	camera.Pitch = mgl64.Clamp(camera.Pitch+pitch, -cfg.InputTiming.MaxPitch, cfg.InputTiming.MaxPitch)
}

// ViewDirection returns the unit vector the camera looks along.
func ViewDirection(e *ecs.ECS) mgl64.Vec3 {
	camera := getCamera(e)
	if camera == nil {
		return gamemath.ViewForward
	}
	return gamemath.LookDirection(camera.Yaw, camera.Pitch)
}

// ViewYaw returns the camera's heading.
func ViewYaw(e *ecs.ECS) float64 {
	if camera := getCamera(e); camera != nil {
		return camera.Yaw
	}
	return 0
}

// EyePosition returns where the view is rendered from: the player's position
// plus the shake offset.
func EyePosition(e *ecs.ECS) mgl64.Vec3 {
	var eye mgl64.Vec3
	if playerEntry, ok := tags.Player.First(e.World); ok {
		eye = components.Body.Get(playerEntry).Position
	}
	if camera := getCamera(e); camera != nil {
		eye = eye.Add(camera.Offset)
	}
	return eye
}

// TriggerLandingShake starts the landing shake and sets the player's landing
// guard. It does nothing while the guard is set, so shakes never stack. The
// guard clears when the shake finishes.
func TriggerLandingShake(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.Landing {
		return false
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return false
	}
	q := getScheduler(e)
	if q == nil {
		return false
	}

	player.Landing = true
	sc := cfg.ScreenShake
	if !cameraEntry.HasComponent(components.ScreenShake) {
		cameraEntry.AddComponent(components.ScreenShake)
	}
	shake := components.ScreenShake.Get(cameraEntry)
	*shake = components.ScreenShakeData{
		Falloff: gween.New(float32(sc.Intensity), float32(sc.EndIntensity), float32(sc.Duration.Seconds()), sc.Easing),
	}

	start := q.Now()
	tick := func(step time.Duration) bool {
		if !cameraEntry.Valid() {
			return false
		}
		if q.Now()-start >= sc.Duration {
			finishShake(cameraEntry, playerEntry)
			return false
		}
		applyShake(e, cameraEntry, step)
		return true
	}

	tick(0)
	shake.Task = q.Every(sc.Interval, func() bool { return tick(sc.Interval) })
	return true
}

// applyShake replaces the camera offset with a fresh random offset scaled by
// the eased intensity.
func applyShake(e *ecs.ECS, cameraEntry *donburi.Entry, step time.Duration) {
	shake := components.ScreenShake.Get(cameraEntry)
	camera := components.Camera.Get(cameraEntry)

	intensity, _ := shake.Falloff.Update(float32(step.Seconds()))
	r := getRandom(e)
	camera.Offset = mgl64.Vec3{
		(r.Float64() - 0.5) * float64(intensity),
		(r.Float64() - 0.5) * float64(intensity),
		0,
	}
	shake.Ticks++
}

func finishShake(cameraEntry *donburi.Entry, playerEntry *donburi.Entry) {
	components.Camera.Get(cameraEntry).Offset = mgl64.Vec3{}
	if cameraEntry.HasComponent(components.ScreenShake) {
		if cfg.Debug.LogEvents {
			log.Printf("landing shake finished after %d ticks", components.ScreenShake.Get(cameraEntry).Ticks)
		}
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
	if playerEntry.Valid() {
		components.Player.Get(playerEntry).Landing = false
	}
}

func getCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
