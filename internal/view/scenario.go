package view

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keepercfg/internal/confparse"
	"github.com/vovakirdan/keepercfg/internal/core"
)

// Scenario is a hand-written frame description, used to check which pointer
// a situation produces without running the game.
type Scenario struct {
	View      string `yaml:"view"`
	Mode      string `yaml:"mode"`
	WorkState string `yaml:"work_state"`
	Cursor    string `yaml:"cursor"`
	Turn      int    `yaml:"turn"`

	Mouse struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"mouse"`

	// Thing is the creature under the hand; 0 for none.
	Thing       int  `yaml:"thing"`
	Holding     bool `yaml:"holding"`
	Possessable bool `yaml:"possessable"`
	Queryable   bool `yaml:"queryable"`
	CanPossess  bool `yaml:"can_possess"`
	CanQuery    bool `yaml:"can_query"`
	SubtileHigh bool `yaml:"subtile_high"`
	HandBusy    int  `yaml:"hand_busy_until"`

	Room string `yaml:"room"`
	Trap string `yaml:"trap"`
	Door string `yaml:"door"`

	StatusPanel    bool `yaml:"status_panel"`
	SmallMapHidden bool `yaml:"small_map_hidden"`
	Battle         int  `yaml:"battle_creature"`
	Castable       bool `yaml:"castable"`
	GUIBusy        bool `yaml:"gui_busy"`
	BigPointer     bool `yaml:"big_pointer"`
	PossessArrow   bool `yaml:"possess_arrow"`
	FadingFromMap  bool `yaml:"fading_from_map"`
}

// ScenarioNames resolves room, trap and door names in a scenario.
type ScenarioNames struct {
	Rooms confparse.NamedTable
	Traps confparse.NamedTable
	Doors confparse.NamedTable
}

// ParseScenario decodes a scenario from YAML. Unset flags default to a
// keeper who may possess and query a valid creature.
func ParseScenario(data []byte) (Scenario, error) {
	s := Scenario{
		View:        ViewDungeonTop.String(),
		WorkState:   StateCtrlDungeon.String(),
		Cursor:      "hand",
		Possessable: true,
		Queryable:   true,
		CanPossess:  true,
		CanQuery:    true,
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("view: cannot parse scenario: %w", err)
	}
	return s, nil
}

var cursorNames = map[string]CursorState{
	"":         CursorNone,
	"none":     CursorNone,
	"pickaxe":  CursorPickaxe,
	"door-key": CursorDoorKey,
	"hand":     CursorPowerHand,
}

func resolve(t confparse.NamedTable, kind, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	if id, ok := t.Lookup(name); ok {
		return id, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		return n, nil
	}
	return 0, fmt.Errorf("view: unknown %s %q", kind, name)
}

// Frame builds the frame the scenario describes. The screen is 640x480 with
// a 140 pixel status panel whose minimap covers (8,8)-(132,132).
func (s Scenario) Frame(names ScenarioNames) (Frame, error) {
	vt, ok := ParseViewType(s.View)
	if !ok {
		return Frame{}, fmt.Errorf("view: unknown view %q", s.View)
	}
	ws, ok := ParseWorkState(s.WorkState)
	if !ok {
		return Frame{}, fmt.Errorf("view: unknown work state %q", s.WorkState)
	}
	cur, ok := cursorNames[s.Cursor]
	if !ok {
		return Frame{}, fmt.Errorf("view: unknown cursor %q", s.Cursor)
	}
	room, err := resolve(names.Rooms, "room", s.Room)
	if err != nil {
		return Frame{}, err
	}
	trap, err := resolve(names.Traps, "trap", s.Trap)
	if err != nil {
		return Frame{}, err
	}
	door, err := resolve(names.Doors, "door", s.Door)
	if err != nil {
		return Frame{}, err
	}

	p := &Player{
		Local:          true,
		ViewType:       vt,
		WorkState:      ws,
		MouseX:         s.Mouse.X,
		MouseY:         s.Mouse.Y,
		PrimaryCursor:  cur,
		ThingUnderHand: s.Thing,
		CanPossess:     s.CanPossess,
		CanQuery:       s.CanQuery,
		HandBusyUntil:  s.HandBusy,
		ChosenRoom:     room,
		ChosenTrap:     trap,
		ChosenDoor:     door,
	}
	if s.SubtileHigh {
		p.Flags |= PlayerSubtileIsHigh
	}
	if s.FadingFromMap {
		p.Instance = InstanceMapFadeFrom
	}
	if s.Mode != "" {
		mode, ok := parseViewMode(s.Mode)
		if !ok {
			return Frame{}, fmt.Errorf("view: unknown mode %q", s.Mode)
		}
		p.ViewMode = mode
	}

	d := &Dungeon{}
	if s.Holding && s.Thing > 0 {
		d.ThingsInHand = []int{s.Thing}
	}

	g := &Game{
		Turn:               s.Turn,
		ScreenW:            640,
		ScreenH:            480,
		StatusPanelWidth:   140,
		SmallMap:           core.NewRect(8, 8, 124, 124),
		BattleCreatureOver: s.Battle,
		GUIBusy:            s.GUIBusy,
		BigPointer:         s.BigPointer,
	}
	if s.StatusPanel {
		g.Flags |= GameStatusPanel
	}
	if s.SmallMapHidden {
		g.SmallMapState = 2
	}
	if s.PossessArrow {
		g.Features |= FeatPossessPointer
	}

	w := &scenarioWorld{s: s}
	return Frame{Player: p, Dungeon: d, Game: g, World: w}, nil
}

func parseViewMode(name string) (ViewMode, bool) {
	for i, n := range viewModeNames {
		if n == name {
			return ViewMode(i), true
		}
	}
	return ModeEmpty, false
}

// scenarioWorld knows a single thing: the one the scenario names.
type scenarioWorld struct {
	s Scenario
}

func (w *scenarioWorld) known(thing int) bool {
	return thing > 0 && (thing == w.s.Thing || thing == w.s.Battle)
}

func (w *scenarioWorld) ThingValid(thing int) bool { return w.known(thing) }

func (w *scenarioWorld) CanBePossessed(thing, _ int) bool {
	return w.known(thing) && w.s.Possessable
}

func (w *scenarioWorld) CanBeQueried(thing, _ int) bool {
	return w.known(thing) && w.s.Queryable
}

func (w *scenarioWorld) CanCastSpell(_, thing int, _ PowerKind) bool {
	return w.known(thing) && w.s.Castable
}

func (w *scenarioWorld) ThingSubtile(int) (int, int) {
	return 0, 0
}
