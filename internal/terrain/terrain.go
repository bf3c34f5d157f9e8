// Package terrain holds the room, slab, lens, trap and door lookup tables
// that creature model files and the pointer dispatcher refer to by name.
package terrain

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keepercfg/internal/confparse"
	"github.com/vovakirdan/keepercfg/internal/registry"
)

//go:embed defaults/terrain.yaml
var defaultTerrainYAML []byte

// Tables is the set of map-owned lookup tables.
type Tables struct {
	Rooms  confparse.NamedTable `yaml:"rooms"`
	Slabs  confparse.NamedTable `yaml:"slabs"`
	Lenses confparse.NamedTable `yaml:"lenses"`
	Traps  confparse.NamedTable `yaml:"traps"`
	Doors  confparse.NamedTable `yaml:"doors"`
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the embedded tables. The result is shared and must not be
// modified.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Parse(defaultTerrainYAML)
		if err != nil {
			panic(fmt.Sprintf("terrain: embedded tables are invalid: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Parse decodes tables from YAML.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("terrain: cannot parse tables: %w", err)
	}
	if len(t.Rooms) == 0 || len(t.Slabs) == 0 || len(t.Lenses) == 0 {
		return nil, fmt.Errorf("terrain: rooms, slabs and lenses must not be empty")
	}
	return &t, nil
}

// Load reads tables from path. An empty path returns the embedded tables.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

func init() {
	registry.Register("rooms", "Room kinds", func() confparse.NamedTable { return Default().Rooms })
	registry.Register("slabs", "Slab kinds", func() confparse.NamedTable { return Default().Slabs })
	registry.Register("lenses", "Eye lens effects", func() confparse.NamedTable { return Default().Lenses })
	registry.Register("traps", "Trap models", func() confparse.NamedTable { return Default().Traps })
	registry.Register("doors", "Door models", func() confparse.NamedTable { return Default().Doors })
}
