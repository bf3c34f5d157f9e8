package terrain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/keepercfg/internal/registry"
)

func TestDefaultTables(t *testing.T) {
	tbl := Default()

	tests := []struct {
		name     string
		id       int
		expected int
	}{
		{"TREASURE", tbl.Rooms.ID("TREASURE"), 2},
		{"guard_post", tbl.Rooms.ID("guard_post"), 16},
		{"PATH", tbl.Slabs.ID("PATH"), 10},
		{"LAVA slab", tbl.Slabs.ID("LAVA"), 12},
		{"MIST", tbl.Lenses.ID("MIST"), 1},
		{"BOULDER", tbl.Traps.ID("BOULDER"), 1},
		{"MAGIC", tbl.Doors.ID("MAGIC"), 4},
		{"missing room", tbl.Rooms.ID("HATCHERY"), -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.id != tc.expected {
				t.Errorf("ID() = %d, expected %d", tc.id, tc.expected)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"rooms", "slabs", "lenses", "traps", "doors"} {
		if !registry.Exists(id) {
			t.Errorf("table %q not registered", id)
		}
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.yaml")
	data := []byte("rooms: [{name: LAIR, id: 14}]\nslabs: [{name: PATH, id: 10}]\nlenses: [{name: \"NULL\", id: 0}]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(tbl.Rooms) != 1 || tbl.Rooms.ID("LAIR") != 14 {
		t.Errorf("Rooms = %v, expected only LAIR", tbl.Rooms)
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("rooms: []\n")); err == nil {
		t.Error("Parse() should reject empty tables")
	}
}
