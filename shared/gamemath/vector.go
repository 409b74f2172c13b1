// Package gamemath holds the pure simulation math shared by the systems.
// It has no dependencies on ebiten or donburi so it can be tested headless.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// Up is the world up axis.
	Up = mgl64.Vec3{0, 1, 0}
	// ViewForward is the look direction of an unrotated view (-Z).
	ViewForward = mgl64.Vec3{0, 0, -1}
)

// SafeNormalize returns v scaled to unit length. A zero-length vector stays zero.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Reflect mirrors v about the plane with unit normal n.
func Reflect(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// ForwardAxis returns the horizontal forward axis for a yaw angle in radians.
func ForwardAxis(yaw float64) mgl64.Vec3 {
	s, c := math.Sincos(yaw)
	return mgl64.Vec3{-s, 0, -c}
}

// RightAxis returns the horizontal right axis for a yaw angle in radians.
func RightAxis(yaw float64) mgl64.Vec3 {
	s, c := math.Sincos(yaw)
	return mgl64.Vec3{c, 0, -s}
}

// LookRotation returns the view orientation for yaw (about Y) then pitch (about X).
func LookRotation(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0}))
}

// LookDirection returns the unit view direction for yaw and pitch.
func LookDirection(yaw, pitch float64) mgl64.Vec3 {
	return SafeNormalize(LookRotation(yaw, pitch).Rotate(ViewForward))
}
