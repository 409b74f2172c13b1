// Package controls holds the player's input state: held movement flags,
// double-tap detection and the boosts it unlocks. Time is game time since
// the session started.
package controls

import "time"

// Direction identifies a held movement flag.
type Direction int

const (
	Forward Direction = iota
	Back
	Left
	Right
	directionCount
)

// Control identifies a control that supports double-tap activation.
type Control int

const (
	ControlForward Control = iota
	ControlJump
	controlCount
)

// State is the input state read by the physics integrator.
type State struct {
	Move [directionCount]bool

	// SpeedBoost doubles acceleration until forward is released.
	SpeedBoost bool
	// Flying suspends gravity until jump is released or the flight expires.
	Flying bool
	// CanJump is set on ground contact and cleared by a jump.
	CanJump bool

	lastTap [controlCount]time.Duration
	tapped  [controlCount]bool
}

// SetMoveFlag records a press or release edge for a direction. Releasing
// forward ends the speed boost.
func (s *State) SetMoveFlag(d Direction, pressed bool) {
	if d < 0 || d >= directionCount {
		return
	}
	s.Move[d] = pressed
	if d == Forward && !pressed {
		s.SpeedBoost = false
	}
}

// Held reports whether a direction flag is set.
func (s *State) Held(d Direction) bool {
	if d < 0 || d >= directionCount {
		return false
	}
	return s.Move[d]
}

// TryDoubleTap records an activating edge of c at now and reports whether it
// followed the previous edge of the same control within window.
func (s *State) TryDoubleTap(c Control, now, window time.Duration) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	hit := s.tapped[c] && now-s.lastTap[c] < window
	s.lastTap[c] = now
	s.tapped[c] = true
	return hit
}

// Jump consumes jump eligibility and reports whether the jump is allowed.
func (s *State) Jump() bool {
	if !s.CanJump {
		return false
	}
	s.CanJump = false
	return true
}

// Reset clears every flag and boost.
func (s *State) Reset() {
	*s = State{}
}
