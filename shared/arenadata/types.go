// Package arenadata provides TMX arena parsing. It has no dependencies on
// ebitengine, donburi, or resolv, so it stays pure data only.
package arenadata

// Arena holds the static layout parsed from a TMX arena file. Map pixels are
// world units; the map center is the world origin, map X is world X and map Y
// is world Z.
type Arena struct {
	Obstacles []Obstacle
	Spawns    []Spawn
	Width     float64
	Depth     float64
}

// Obstacle is a static box.
type Obstacle struct {
	Kind string // object name, e.g. "hill" or "target"

	// Center of the box in world space.
	X, Y, Z float64
	// Full extents of the box.
	W, H, D float64
}

// Spawn is a player start point on the ground.
type Spawn struct {
	X, Z  float64
	Index int
}
