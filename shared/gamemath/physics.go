package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Body is the kinematic state of the player. Velocity is kept in the view
// frame: +X right, +Y up, -Z forward.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Grounded bool
}

// MoveIntent is the movement request sampled from input for one step.
type MoveIntent struct {
	Forward, Back, Left, Right bool
	SpeedBoost                 bool
	Flying                     bool
	Yaw                        float64
}

// MoveParams holds movement tuning.
type MoveParams struct {
	Damping         float64 // horizontal decay rate per second
	Gravity         float64
	Mass            float64
	Acceleration    float64
	BoostMultiplier float64
	FlyRiseSpeed    float64
	GroundHeight    float64
}

// StepResult reports the edges produced by one integration step.
type StepResult struct {
	Landed bool
}

// ApplyDamping decays a speed toward zero at rate per second. The factor never
// goes negative, so long steps stop the body instead of reversing it.
func ApplyDamping(speed, rate, dt float64) float64 {
	f := 1 - rate*dt
	if f < 0 {
		f = 0
	}
	return speed * f
}

// MoveDirection returns the normalized view-frame direction requested by the flags.
func MoveDirection(in MoveIntent) mgl64.Vec3 {
	var d mgl64.Vec3
	if in.Right {
		d[0]++
	}
	if in.Left {
		d[0]--
	}
	if in.Back {
		d[2]++
	}
	if in.Forward {
		d[2]--
	}
	return SafeNormalize(d)
}

// SpeedMultiplier returns the acceleration scale for the intent.
func SpeedMultiplier(in MoveIntent, p MoveParams) float64 {
	if in.SpeedBoost {
		return p.BoostMultiplier
	}
	return 1
}

// StepPlayer advances b by dt seconds.
func StepPlayer(b *Body, in MoveIntent, p MoveParams, dt float64) StepResult {
	if dt < 0 {
		dt = 0
	}

	b.Velocity[0] = ApplyDamping(b.Velocity[0], p.Damping, dt)
	b.Velocity[2] = ApplyDamping(b.Velocity[2], p.Damping, dt)

	if in.Flying {
		b.Velocity[1] = 0
		b.Position[1] += p.FlyRiseSpeed * dt
	} else {
		b.Velocity[1] -= p.Gravity * p.Mass * dt
	}

	accel := MoveDirection(in).Mul(p.Acceleration * dt * SpeedMultiplier(in, p))
	b.Velocity[0] += accel[0]
	b.Velocity[2] += accel[2]

	right := RightAxis(in.Yaw).Mul(b.Velocity[0] * dt)
	forward := ForwardAxis(in.Yaw).Mul(-b.Velocity[2] * dt)
	b.Position = b.Position.Add(right).Add(forward)
	b.Position[1] += b.Velocity[1] * dt

	var res StepResult
	switch {
	case b.Position[1] < p.GroundHeight:
		b.Velocity[1] = 0
		b.Position[1] = p.GroundHeight
		res.Landed = !b.Grounded
		b.Grounded = true
	case b.Position[1] > p.GroundHeight:
		b.Grounded = false
	}
	return res
}

// HorizontalSpeed returns the magnitude of the horizontal velocity.
func HorizontalSpeed(b Body) float64 {
	return mgl64.Vec2{b.Velocity[0], b.Velocity[2]}.Len()
}
