package assets

import (
	"embed"
	"log"

	"github.com/automoto/showdown/shared/arena"
)

//go:embed all:arena
var arenaFS embed.FS

// LoadArena reads the arena layout from the embedded TMX map, falling back
// to the built-in layout when the map is missing or invalid.
func LoadArena(path string) arena.Layout {
	layout, err := arena.Load(arenaFS, path)
	if err != nil {
		log.Printf("Warning: Could not load arena %s, using built-in layout: %v", path, err)
		return arena.Default()
	}
	return layout
}
