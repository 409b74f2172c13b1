package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max mgl64.Vec3
}

// BoxFromCenter builds a box of the given full size centered on c.
func BoxFromCenter(c, size mgl64.Vec3) Box {
	half := size.Mul(0.5)
	return Box{Min: c.Sub(half), Max: c.Add(half)}
}

// BoxAroundSphere returns the bounding box of a sphere.
func BoxAroundSphere(c mgl64.Vec3, radius float64) Box {
	r := mgl64.Vec3{radius, radius, radius}
	return Box{Min: c.Sub(r), Max: c.Add(r)}
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box on each axis.
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Intersects reports whether b and o overlap. Touching faces count as overlap.
func (b Box) Intersects(o Box) bool {
	for i := 0; i < 3; i++ {
		if o.Max[i] < b.Min[i] || o.Min[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Separation returns the axis normal and depth of the smallest translation that
// moves o out of b. The normal points away from b. Depth is zero when the boxes
// do not overlap.
func (b Box) Separation(o Box) (normal mgl64.Vec3, depth float64) {
	if !b.Intersects(o) {
		return mgl64.Vec3{}, 0
	}
	depth = math.Inf(1)
	for i := 0; i < 3; i++ {
		// push o toward +axis
		if d := b.Max[i] - o.Min[i]; d < depth {
			depth = d
			normal = mgl64.Vec3{}
			normal[i] = 1
		}
		// push o toward -axis
		if d := o.Max[i] - b.Min[i]; d < depth {
			depth = d
			normal = mgl64.Vec3{}
			normal[i] = -1
		}
	}
	return normal, depth
}
