package gamemath

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Countdown returns the whole seconds left of a total-second countdown after
// elapsed time. It keeps falling below zero once the countdown has run out.
func Countdown(total int, elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	return total - int(elapsed/time.Second)
}

// RandomPointInSquare returns a uniformly random point in a size x size square
// centered on the origin of the XZ plane, at the given altitude.
func RandomPointInSquare(r *rand.Rand, size, altitude float64) mgl64.Vec3 {
	return mgl64.Vec3{
		r.Float64()*size - size/2,
		altitude,
		r.Float64()*size - size/2,
	}
}
