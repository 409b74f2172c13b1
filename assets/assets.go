package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/hillshot/shared/arenadata"
)

var (
	//go:embed all:arenas
	assetFS embed.FS
)

// FS exposes the embedded assets.
func FS() fs.FS {
	return assetFS
}

type ArenaLoader struct {
	fsys fs.FS
}

func NewArenaLoader(fsys fs.FS) *ArenaLoader {
	return &ArenaLoader{fsys: fsys}
}

// LoadArena parses one arena file.
func (l *ArenaLoader) LoadArena(arenaPath string) (*arenadata.Arena, error) {
	return arenadata.Load(l.fsys, arenaPath)
}

// MustLoadArena is LoadArena for scene construction, where a broken
// embedded arena is a build defect.
func (l *ArenaLoader) MustLoadArena(arenaPath string) *arenadata.Arena {
	a, err := l.LoadArena(arenaPath)
	if err != nil {
		panic(err)
	}
	return a
}

// LoadArena parses an arena from the embedded assets.
func LoadArena(arenaPath string) (*arenadata.Arena, error) {
	return NewArenaLoader(assetFS).LoadArena(arenaPath)
}
