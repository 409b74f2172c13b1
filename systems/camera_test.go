package systems

import (
	"math"
	"testing"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/events"
	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func TestLandingShakesOnce(t *testing.T) {
	e, player := newTestWorld(t)
	var landings, shakes int
	events.Landed.Subscribe(e.World, func(w donburi.World, ev events.LandedEvent) {
		landings++
		if ev.Shake {
			shakes++
		}
	})

	step(e, frame, cfg.ActionJump)
	for i := 0; i < 120 && landings == 0; i++ {
		step(e, frame)
	}
	if landings != 1 || shakes != 1 {
		t.Fatalf("landings = %d, shakes = %d, want 1 and 1", landings, shakes)
	}

	cameraEntry, _ := components.Camera.First(e.World)
	if !cameraEntry.HasComponent(components.ScreenShake) {
		t.Fatalf("no shake after landing")
	}
	if !components.Player.Get(player).Landing {
		t.Fatalf("landing guard not set")
	}

	// Standing still must not shake again.
	run(e, 120, frame)
	if landings != 1 || shakes != 1 {
		t.Errorf("standing produced landings = %d, shakes = %d", landings, shakes)
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		t.Errorf("shake still active after %v", cfg.ScreenShake.Duration)
	}
	if off := components.Camera.Get(cameraEntry).Offset; off != (mgl64.Vec3{}) {
		t.Errorf("offset = %v after the shake, want zero", off)
	}
	if components.Player.Get(player).Landing {
		t.Errorf("landing guard not cleared")
	}
}

func TestShakeOffsetsStayWithinIntensity(t *testing.T) {
	e, player := newTestWorld(t)
	if !TriggerLandingShake(e, player) {
		t.Fatalf("shake did not start")
	}
	cameraEntry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)

	limit := cfg.ScreenShake.Intensity / 2
	moved := false
	for i := 0; i < 40; i++ {
		off := camera.Offset
		if math.Abs(off[0]) > limit || math.Abs(off[1]) > limit || off[2] != 0 {
			t.Fatalf("frame %d: offset %v exceeds %f", i, off, limit)
		}
		if off != (mgl64.Vec3{}) {
			moved = true
		}
		step(e, frame)
	}
	if !moved {
		t.Errorf("shake never moved the camera")
	}
	if camera.Offset != (mgl64.Vec3{}) {
		t.Errorf("offset not cleared after the shake")
	}
}

func TestShakeDoesNotStack(t *testing.T) {
	e, player := newTestWorld(t)
	if !TriggerLandingShake(e, player) {
		t.Fatalf("shake did not start")
	}
	cameraEntry, _ := components.Camera.First(e.World)
	task := components.ScreenShake.Get(cameraEntry).Task

	if TriggerLandingShake(e, player) {
		t.Fatalf("second trigger started while a shake was active")
	}
	if got := components.ScreenShake.Get(cameraEntry).Task; got != task {
		t.Errorf("active shake was replaced")
	}

	// A landing during the shake is reported without a shake.
	var shakes, landings int
	events.Landed.Subscribe(e.World, func(w donburi.World, ev events.LandedEvent) {
		landings++
		if ev.Shake {
			shakes++
		}
	})
	body := &components.Body.Get(player).Body
	body.Position[1] = cfg.Player.GroundHeight + 1
	body.Grounded = false
	run(e, 5, frame)
	if landings != 1 || shakes != 0 {
		t.Errorf("landings = %d, shakes = %d, want 1 and 0", landings, shakes)
	}
}

func TestLookClampsPitch(t *testing.T) {
	var camera components.CameraData
	Look(&camera, 0.5, 10)
	if camera.Pitch != cfg.InputTiming.MaxPitch {
		t.Errorf("pitch = %f, want %f", camera.Pitch, cfg.InputTiming.MaxPitch)
	}
	Look(&camera, 0.25, -20)
	if camera.Pitch != -cfg.InputTiming.MaxPitch {
		t.Errorf("pitch = %f, want %f", camera.Pitch, -cfg.InputTiming.MaxPitch)
	}
	if camera.Yaw != 0.75 {
		t.Errorf("yaw = %f, want 0.75", camera.Yaw)
	}
}

func TestLookMotionTurnsView(t *testing.T) {
	e, _ := newTestWorld(t)
	if got := ViewDirection(e); !got.ApproxEqual(gamemath.ViewForward) {
		t.Fatalf("initial view = %v, want %v", got, gamemath.ViewForward)
	}

	input := getOrCreateInput(e)
	input.LookYaw = math.Pi / 2
	UpdateCamera(e)

	// A quarter turn left looks down -X.
	if got := ViewDirection(e); !nearVec(got, mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("view = %v, want (-1, 0, 0)", got)
	}
}
