package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// near compares with an absolute tolerance; mgl64's relative comparison
// rejects tiny residues against exact zeros.
func near(got, want mgl64.Vec3) bool {
	return got.Sub(want).Len() < 1e-9
}

func TestShotStraightLine(t *testing.T) {
	s := Shot{Velocity: ShotVelocity(mgl64.Vec3{0, 0, -1}, 50)}
	const steps = 60
	for i := 0; i < steps; i++ {
		IntegrateShot(&s, 0, 1.0/steps)
	}
	want := mgl64.Vec3{0, 0, -50}
	if !near(s.Position, want) {
		t.Fatalf("position after 1s = %v, want %v", s.Position, want)
	}
}

func TestShotVelocityZeroDirection(t *testing.T) {
	if v := ShotVelocity(mgl64.Vec3{}, 50); v != (mgl64.Vec3{}) {
		t.Fatalf("ShotVelocity(zero) = %v, want zero", v)
	}
}

func TestIntegrateShotAppliesGravityAfterMove(t *testing.T) {
	s := Shot{Position: mgl64.Vec3{0, 10, 0}}
	IntegrateShot(&s, 9.8, 1)
	if s.Position.Y() != 10 {
		t.Fatalf("first step should move with the old velocity, got y=%f", s.Position.Y())
	}
	if s.Velocity.Y() != -9.8 {
		t.Fatalf("vy = %f, want -9.8", s.Velocity.Y())
	}
}

func TestBounceOffBoxSurfaceNormal(t *testing.T) {
	wall := BoxFromCenter(mgl64.Vec3{0, 10, -100}, mgl64.Vec3{20, 20, 20})
	// Overlapping the +Z face while travelling toward -Z and sideways.
	s := Shot{Position: mgl64.Vec3{0, 10, -89}, Velocity: mgl64.Vec3{10, 0, -50}}

	if !BounceOffBox(&s, 2, wall, BounceSurfaceNormal) {
		t.Fatalf("expected a bounce")
	}
	want := mgl64.Vec3{10, 0, 50}
	if !s.Velocity.ApproxEqual(want) {
		t.Fatalf("velocity = %v, want %v", s.Velocity, want)
	}
	if ShotBox(s, 2).Max.Z() < wall.Max.Z() || s.Position.Z() < -88.0001 {
		t.Fatalf("projectile not pushed out of the face: %v", s.Position)
	}
	if BounceOffBox(&s, 2, wall, BounceSurfaceNormal) {
		t.Fatalf("a projectile leaving the obstacle must not bounce again")
	}
}

func TestBounceOffBoxReverse(t *testing.T) {
	wall := BoxFromCenter(mgl64.Vec3{0, 10, -100}, mgl64.Vec3{20, 20, 20})
	s := Shot{Position: mgl64.Vec3{0, 10, -89}, Velocity: mgl64.Vec3{10, 0, -50}}

	if !BounceOffBox(&s, 2, wall, BounceReverse) {
		t.Fatalf("expected a bounce")
	}
	want := mgl64.Vec3{-10, 0, 50}
	if !s.Velocity.ApproxEqual(want) {
		t.Fatalf("velocity = %v, want %v", s.Velocity, want)
	}
}

func TestBounceOffBoxMiss(t *testing.T) {
	wall := BoxFromCenter(mgl64.Vec3{0, 10, -100}, mgl64.Vec3{20, 20, 20})
	s := Shot{Position: mgl64.Vec3{0, 10, -50}, Velocity: mgl64.Vec3{0, 0, -50}}
	if BounceOffBox(&s, 2, wall, BounceSurfaceNormal) {
		t.Fatalf("no overlap should not bounce")
	}
}

func TestBounceOffGround(t *testing.T) {
	s := Shot{Position: mgl64.Vec3{0, 1.5, 0}, Velocity: mgl64.Vec3{0, -20, -50}}
	if !BounceOffGround(&s, 2) {
		t.Fatalf("expected a ground bounce")
	}
	if s.Velocity.Y() != 20 {
		t.Fatalf("vy = %f, want 20", s.Velocity.Y())
	}
	if BounceOffGround(&s, 2) {
		t.Fatalf("rising projectile must not bounce again")
	}
}

func TestBoxSeparation(t *testing.T) {
	b := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{10, 10, 10}}
	o := Box{Min: mgl64.Vec3{9, 4, 4}, Max: mgl64.Vec3{12, 6, 6}}
	n, d := b.Separation(o)
	if n != (mgl64.Vec3{1, 0, 0}) || math.Abs(d-1) > 1e-12 {
		t.Fatalf("Separation = %v, %f; want +X, 1", n, d)
	}

	far := Box{Min: mgl64.Vec3{20, 20, 20}, Max: mgl64.Vec3{21, 21, 21}}
	if b.Intersects(far) {
		t.Fatalf("disjoint boxes reported as intersecting")
	}
	if _, d := b.Separation(far); d != 0 {
		t.Fatalf("disjoint depth = %f, want 0", d)
	}
}

func TestLookDirection(t *testing.T) {
	if got := LookDirection(0, 0); !got.ApproxEqual(mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("LookDirection(0,0) = %v", got)
	}
	if got := LookDirection(0, math.Pi/2); !near(got, mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("LookDirection(0,pi/2) = %v, want straight up", got)
	}
	if got := LookDirection(math.Pi/2, 0); !near(got, ForwardAxis(math.Pi/2)) {
		t.Fatalf("LookDirection yaw mismatch with ForwardAxis: %v", got)
	}
}

func TestBounceOffBoxIgnoresParallelMotion(t *testing.T) {
	hill := BoxFromCenter(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{50, 10, 50})
	// Overlaps the top face least; moving level, parallel to it.
	s := Shot{Position: mgl64.Vec3{0, 10, 0}, Velocity: mgl64.Vec3{0, 0, -50}}

	if BounceOffBox(&s, 2, hill, BounceSurfaceNormal) {
		t.Fatalf("parallel shot bounced")
	}
	if s.Velocity != (mgl64.Vec3{0, 0, -50}) || s.Position != (mgl64.Vec3{0, 10, 0}) {
		t.Errorf("parallel shot changed: %+v", s)
	}
	if BounceOffBox(&s, 2, hill, BounceReverse) {
		t.Errorf("parallel shot bounced in reverse mode")
	}
}
