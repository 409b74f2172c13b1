package systems

import (
	"math"
	"testing"

	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/systems/factory"
)

func TestWalkingForwardFollowsView(t *testing.T) {
	e, player := newTestWorld(t)
	body := &components.Body.Get(player).Body

	run(e, 60, frame, cfg.ActionMoveForward)

	if body.Position[2] >= -1 || math.Abs(body.Position[0]) > 1e-9 {
		t.Errorf("walked to %v, want along -Z", body.Position)
	}
	if body.Position[1] != cfg.Player.GroundHeight || !body.Grounded {
		t.Errorf("left the ground while walking: %+v", body)
	}

	obj := components.Object.Get(player)
	wantX, wantY, _, _ := factory.Footprint(factory.PlayerBox(body.Position))
	if obj.X != wantX || obj.Y != wantY {
		t.Errorf("footprint at (%f, %f), want (%f, %f)", obj.X, obj.Y, wantX, wantY)
	}
}

func TestBoostedWalkIsFaster(t *testing.T) {
	plainWorld, plain := newTestWorld(t)
	boostWorld, boosted := newTestWorld(t)

	// Same flag history; only the second world taps twice.
	step(plainWorld, frame)
	step(plainWorld, frame)
	step(boostWorld, frame, cfg.ActionMoveForward)
	step(boostWorld, frame)
	components.Body.Get(boosted).Velocity = components.Body.Get(plain).Velocity

	run(plainWorld, 30, frame, cfg.ActionMoveForward)
	run(boostWorld, 30, frame, cfg.ActionMoveForward)

	vp := components.Body.Get(plain).Body
	vb := components.Body.Get(boosted).Body
	if !components.Controls.Get(boosted).SpeedBoost {
		t.Fatalf("boost not active")
	}
	ratio := math.Abs(vb.Velocity[2]) / math.Abs(vp.Velocity[2])
	if math.Abs(ratio-2) > 1e-9 {
		t.Errorf("boosted/plain speed = %f, want 2", ratio)
	}
}

func TestPlayerNeverBelowGround(t *testing.T) {
	e, player := newTestWorld(t)
	body := &components.Body.Get(player).Body
	for i := 0; i < 300; i++ {
		if i%45 == 0 {
			step(e, frame, cfg.ActionJump, cfg.ActionMoveLeft)
			continue
		}
		step(e, frame, cfg.ActionMoveLeft)
		if body.Position[1] < cfg.Player.GroundHeight {
			t.Fatalf("frame %d: altitude %f below ground", i, body.Position[1])
		}
	}
}
