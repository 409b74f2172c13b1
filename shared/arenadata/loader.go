package arenadata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	obstacleGroup = "Obstacles"
	spawnGroup    = "PlayerSpawn"

	defaultObstacleHeight = 10
)

// Load parses a TMX file into an Arena. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Width: float64(m.Width * m.TileWidth),
		Depth: float64(m.Height * m.TileHeight),
	}
	halfW, halfD := a.Width/2, a.Depth/2

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case obstacleGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("obstacle %d in %s has no footprint", o.ID, tmxPath)
				}
				h := o.Properties.GetInt("height")
				if h <= 0 {
					h = defaultObstacleHeight
				}
				base := float64(o.Properties.GetInt("elevation"))
				a.Obstacles = append(a.Obstacles, Obstacle{
					Kind: o.Name,
					X:    o.X + o.Width/2 - halfW,
					Y:    base + float64(h)/2,
					Z:    o.Y + o.Height/2 - halfD,
					W:    o.Width,
					H:    float64(h),
					D:    o.Height,
				})
			}
		case spawnGroup:
			for _, o := range og.Objects {
				a.Spawns = append(a.Spawns, Spawn{
					X:     o.X - halfW,
					Z:     o.Y - halfD,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sort.Slice(a.Spawns, func(i, j int) bool {
		return a.Spawns[i].Index < a.Spawns[j].Index
	})

	return a, nil
}
