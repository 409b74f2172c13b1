package gamemath

import "github.com/go-gl/mathgl/mgl64"

// BounceMode selects how a projectile reacts to hitting an obstacle.
type BounceMode int

const (
	// BounceSurfaceNormal reflects the velocity about the face that was hit.
	BounceSurfaceNormal BounceMode = iota
	// BounceReverse reflects the velocity about its own direction of travel,
	// which sends the projectile straight back.
	BounceReverse
)

// Shot is the kinematic state of a projectile.
type Shot struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// ShotVelocity returns the launch velocity for a look direction. A zero
// direction launches nothing.
func ShotVelocity(look mgl64.Vec3, speed float64) mgl64.Vec3 {
	return SafeNormalize(look).Mul(speed)
}

// IntegrateShot moves s by its velocity, then applies gravity to the velocity.
func IntegrateShot(s *Shot, gravity, dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.Position = s.Position.Add(s.Velocity.Mul(dt))
	s.Velocity[1] -= gravity * dt
}

// ShotBox returns the bounding box of a projectile of the given radius.
func ShotBox(s Shot, radius float64) Box {
	return BoxAroundSphere(s.Position, radius)
}

// BounceOffBox resolves an overlap between s and obstacle. It reports whether
// the velocity changed. A projectile already leaving the obstacle is left alone
// so it cannot flip back and forth while still overlapping.
func BounceOffBox(s *Shot, radius float64, obstacle Box, mode BounceMode) bool {
	normal, depth := obstacle.Separation(ShotBox(*s, radius))
	if depth == 0 && normal == (mgl64.Vec3{}) {
		return false
	}
	if s.Velocity.Dot(normal) >= 0 {
		return false
	}

	switch mode {
	case BounceReverse:
		dir := SafeNormalize(s.Velocity)
		s.Velocity = Reflect(s.Velocity, dir)
	default:
		s.Velocity = Reflect(s.Velocity, normal)
		s.Position = s.Position.Add(normal.Mul(depth))
	}
	return true
}

// BounceOffGround inverts the vertical velocity once the projectile touches the
// ground plane while falling.
func BounceOffGround(s *Shot, radius float64) bool {
	if s.Position[1] > radius || s.Velocity[1] >= 0 {
		return false
	}
	s.Velocity[1] = -s.Velocity[1]
	return true
}
