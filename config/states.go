package config

import "github.com/yohamta/donburi/ecs"

// Default is the only renderer layer.
const Default ecs.LayerID = 0

// BoundsStateID is the state of the out-of-bounds monitor.
type BoundsStateID int

const (
	BoundsIn BoundsStateID = iota
	BoundsOut
)

func (s BoundsStateID) String() string {
	switch s {
	case BoundsIn:
		return "in-bounds"
	case BoundsOut:
		return "out-of-bounds"
	}
	return "unknown"
}
