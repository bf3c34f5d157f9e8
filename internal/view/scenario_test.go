package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepercfg/internal/confparse"
)

var testNames = ScenarioNames{
	Rooms: confparse.NamedTable{{Name: "TREASURE", ID: 2}},
	Traps: confparse.NamedTable{{Name: "BOULDER", ID: 1}},
	Doors: confparse.NamedTable{{Name: "WOOD", ID: 1}},
}

func scenarioPointer(t *testing.T, doc string) Pointer {
	t.Helper()
	s, err := ParseScenario([]byte(doc))
	if err != nil {
		t.Fatalf("ParseScenario() failed: %v", err)
	}
	f, err := s.Frame(testNames)
	if err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	f.Log = log.New(&bytes.Buffer{})
	return PointerGraphic(f)
}

func TestScenarioPointers(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		kind    PointerKind
		graphic int
	}{
		{"defaults possess", "thing: 5", PointerSprite, GraphicPossess},
		{"not possessable queries", "thing: 5\npossessable: false", PointerSprite, GraphicQuery},
		{"held thing", "thing: 5\nholding: true", PointerSprite, GraphicInvisible},
		{"diggable subtile", "subtile_high: true", PointerSprite, GraphicPickaxe},
		{"big pointer", "thing: 5\nbig_pointer: true\nturn: 4", PointerSprite, GraphicPossessAnim + 1},
		{"room by name", "work_state: build-room\nroom: TREASURE", PointerSprite, 25},
		{"trap by name", "work_state: place-trap\ntrap: boulder", PointerSprite, 5},
		{"door by id", "work_state: place-door\ndoor: \"2\"", PointerSprite, 12},
		{"minimap", "status_panel: true\nmouse: {x: 20, y: 20}", PointerSprite, GraphicArrow},
		{"minimap hidden", "status_panel: true\nsmall_map_hidden: true\nmouse: {x: 20, y: 20}", PointerSprite, GraphicInvisible},
		{"battle castable", "battle_creature: 7\ncastable: true\nwork_state: heal", PointerSpell, 0},
		{"battle not castable", "battle_creature: 7\nwork_state: heal", PointerSprite, GraphicArrow},
		{"map screen", "view: map-screen", PointerSprite, GraphicArrow},
		{"possessed creature", "view: creature-control\npossess_arrow: true", PointerSprite, GraphicArrow},
		{"fading from map", "fading_from_map: true", PointerSprite, GraphicInvisible},
		{"no view", "view: none", PointerHidden, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr := scenarioPointer(t, tt.doc)
			if ptr.Kind != tt.kind {
				t.Fatalf("kind = %v, expected %v", ptr.Kind, tt.kind)
			}
			if ptr.Graphic != tt.graphic {
				t.Errorf("graphic = %d, expected %d", ptr.Graphic, tt.graphic)
			}
		})
	}
}

func TestScenarioErrors(t *testing.T) {
	tests := []struct {
		doc  string
		want string
	}{
		{"view: sideways", "unknown view"},
		{"work_state: juggle", "unknown work state"},
		{"cursor: wand", "unknown cursor"},
		{"mode: upside-down", "unknown mode"},
		{"room: PANTRY", "unknown room"},
		{"trap: PIT", "unknown trap"},
		{"door: GLASS", "unknown door"},
	}
	for _, tt := range tests {
		s, err := ParseScenario([]byte(tt.doc))
		if err != nil {
			t.Fatalf("ParseScenario(%q) failed: %v", tt.doc, err)
		}
		_, err = s.Frame(testNames)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Frame(%q) error = %v, expected %q", tt.doc, err, tt.want)
		}
	}

	if _, err := ParseScenario([]byte("turn: [1")); err == nil {
		t.Error("ParseScenario() accepted broken YAML")
	}
}

func TestScenarioMode(t *testing.T) {
	s, err := ParseScenario([]byte("mode: parchment"))
	if err != nil {
		t.Fatalf("ParseScenario() failed: %v", err)
	}
	f, err := s.Frame(testNames)
	if err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}
	if f.Player.ViewMode != ModeParchment {
		t.Errorf("ViewMode = %v, expected parchment", f.Player.ViewMode)
	}
}
