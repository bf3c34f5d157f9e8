package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepercfg/internal/creature"
	"github.com/vovakirdan/keepercfg/internal/view"
)

func testSet() *creature.Set {
	cfg := &creature.Config{KindCount: 2}
	cfg.KindNames[0] = "IMP"
	cfg.KindNames[1] = "DRAGON"

	set := &creature.Set{Config: cfg}
	for i := range set.Stats {
		set.Stats[i] = creature.DefaultStats()
	}
	set.Stats[creature.Index(1)].Health = 75
	set.Stats[creature.Index(2)].Health = 900
	set.Stats[creature.Index(2)].Flying = true
	set.Loaded[creature.Index(1)] = true
	set.Loaded[creature.Index(2)] = true
	return set
}

func testStore(set *creature.Set) *creature.Store {
	st := creature.NewStore()
	st.Replace(set)
	return st
}

func testPlayground() *Playground {
	pg := NewPlayground(testSet(), log.New(&bytes.Buffer{}))
	pg.Select(1)
	return pg
}

func TestPlaygroundHandPointer(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(pg *Playground)
		graphic   int
		highlight bool
	}{
		{"possess", func(pg *Playground) {}, view.GraphicPossess, true},
		{"query when not possessable", func(pg *Playground) { pg.TogglePossess() }, view.GraphicQuery, true},
		{"held creature", func(pg *Playground) { pg.ToggleHold() }, view.GraphicInvisible, false},
		{"nothing under hand", func(pg *Playground) { pg.Select(0) }, view.GraphicInvisible, false},
		{"unloaded model", func(pg *Playground) { pg.set.Loaded[creature.Index(1)] = false }, view.GraphicInvisible, false},
		{"pickaxe tool", func(pg *Playground) { pg.CycleCursor() }, view.GraphicPickaxe, false},
		{"sell state", func(pg *Playground) { pg.Player.WorkState = view.StateSell }, view.GraphicSell, false},
		{"creature view", func(pg *Playground) { pg.CycleView() }, view.GraphicInvisible, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := testPlayground()
			tt.setup(pg)
			ptr := pg.Tick()
			if ptr.Kind != view.PointerSprite {
				t.Fatalf("Tick() kind = %v, expected sprite", ptr.Kind)
			}
			if ptr.Graphic != tt.graphic {
				t.Errorf("Tick() graphic = %d, expected %d", ptr.Graphic, tt.graphic)
			}
			if ptr.Highlight != tt.highlight {
				t.Errorf("Tick() highlight = %v, expected %v", ptr.Highlight, tt.highlight)
			}
			if pg.Player.Highlight != tt.highlight {
				t.Errorf("Player.Highlight = %v, expected %v", pg.Player.Highlight, tt.highlight)
			}
		})
	}
}

func TestPlaygroundBigPointerAnimates(t *testing.T) {
	pg := testPlayground()
	pg.ToggleBigPointer()

	seen := map[int]bool{}
	for range 6 {
		ptr := pg.Tick()
		want := view.GraphicPossessAnim + pg.Game.Turn%3
		if ptr.Graphic != want {
			t.Fatalf("turn %d: graphic = %d, expected %d", pg.Game.Turn, ptr.Graphic, want)
		}
		seen[ptr.Graphic] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 animation frames, saw %d", len(seen))
	}
}

func TestPlaygroundPauseStopsTurns(t *testing.T) {
	pg := testPlayground()
	pg.Tick()
	pg.Tick()
	if pg.Game.Turn != 2 {
		t.Fatalf("Turn = %d, expected 2", pg.Game.Turn)
	}

	pg.TogglePause()
	pg.Tick()
	if pg.Game.Turn != 2 {
		t.Errorf("Turn advanced while paused: %d", pg.Game.Turn)
	}
	if pg.Game.Flags&view.GamePaused == 0 {
		t.Error("expected the paused game flag")
	}

	pg.TogglePause()
	pg.Tick()
	if pg.Game.Turn != 3 {
		t.Errorf("Turn = %d after resume, expected 3", pg.Game.Turn)
	}
}

func TestPlaygroundCycleStateWraps(t *testing.T) {
	pg := testPlayground()
	pg.Player.WorkState = view.StateNone

	pg.CycleState(-1)
	if pg.Player.WorkState != view.StatePlaceDoor {
		t.Errorf("CycleState(-1) from none = %v, expected %v", pg.Player.WorkState, view.StatePlaceDoor)
	}
	pg.CycleState(1)
	if pg.Player.WorkState != view.StateNone {
		t.Errorf("CycleState(1) from last = %v, expected none", pg.Player.WorkState)
	}
}

func TestPlaygroundCycleViewSetsMode(t *testing.T) {
	pg := testPlayground()
	want := []struct {
		view view.ViewType
		mode view.ViewMode
	}{
		{view.ViewCreatureControl, view.ModeCreature},
		{view.ViewCreaturePassenger, view.ModeCreature},
		{view.ViewMapScreen, view.ModeParchment},
		{view.ViewNone, view.ModeEmpty},
		{view.ViewDungeonTop, view.ModeIsometric},
	}
	for _, w := range want {
		pg.CycleView()
		if pg.Player.ViewType != w.view || pg.Player.ViewMode != w.mode {
			t.Errorf("CycleView() = %v/%v, expected %v/%v",
				pg.Player.ViewType, pg.Player.ViewMode, w.view, w.mode)
		}
	}
}

func TestPlaygroundBattleSpell(t *testing.T) {
	tests := []struct {
		name  string
		thing int
		state view.WorkState
		kind  view.PointerKind
	}{
		{"heal on imp", 1, view.StateHeal, view.PointerSpell},
		{"cave in on imp", 1, view.StateCaveIn, view.PointerSpell},
		{"cave in on flying dragon", 2, view.StateCaveIn, view.PointerSprite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := testPlayground()
			pg.Game.BattleCreatureOver = tt.thing
			pg.Player.WorkState = tt.state
			ptr := pg.Tick()
			if ptr.Kind != tt.kind {
				t.Errorf("Tick() kind = %v, expected %v", ptr.Kind, tt.kind)
			}
		})
	}
}

func TestDescribePointer(t *testing.T) {
	tests := []struct {
		ptr  view.Pointer
		want string
	}{
		{view.Pointer{}, "hidden"},
		{view.Pointer{Kind: view.PointerSprite, Graphic: view.GraphicQuery, Highlight: true}, "query (#4) +highlight"},
		{view.Pointer{Kind: view.PointerSprite, Graphic: view.GraphicPossessAnim + 1}, "possess frame 1 (#97)"},
		{view.Pointer{Kind: view.PointerSprite, Graphic: 27}, "sprite 27 (#27)"},
		{view.Pointer{Kind: view.PointerSpell, Spell: view.SpellCursor{State: view.StateHeal, X: 3, Y: 4}}, "spell cursor: heal at 3,4"},
	}
	for _, tt := range tests {
		if got := DescribePointer(tt.ptr); got != tt.want {
			t.Errorf("DescribePointer(%+v) = %q, expected %q", tt.ptr, got, tt.want)
		}
	}
}

func TestBrowserSelectionFollowsTable(t *testing.T) {
	m := NewBrowserModel(testStore(testSet()), log.New(&bytes.Buffer{}), 120, 40)
	if got := m.Playground().Player.ThingUnderHand; got != 1 {
		t.Fatalf("initial thing under hand = %d, expected 1", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(BrowserModel)
	if got := m.Playground().Player.ThingUnderHand; got != 2 {
		t.Errorf("thing under hand after down = %d, expected 2", got)
	}

	out := m.View()
	for _, want := range []string{"IMP", "DRAGON", "Pointer"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestBrowserKeysDrivePlayground(t *testing.T) {
	m := NewBrowserModel(testStore(testSet()), log.New(&bytes.Buffer{}), 80, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	m = next.(BrowserModel)
	if m.Playground().Player.ViewType != view.ViewCreatureControl {
		t.Errorf("ViewType after v = %v, expected creature-control", m.Playground().Player.ViewType)
	}

	next, cmd := m.Update(TickMsg{})
	m = next.(BrowserModel)
	if cmd == nil {
		t.Error("TickMsg should schedule the next tick")
	}
	if m.Playground().Game.Turn != 2 {
		t.Errorf("Turn = %d, expected 2", m.Playground().Game.Turn)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestBrowserReload(t *testing.T) {
	store := testStore(testSet())
	m := NewBrowserModel(store, log.New(&bytes.Buffer{}), 120, 40)

	// Without a reload function the key is ignored
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd != nil {
		t.Fatal("reload without a reload function should do nothing")
	}

	bigger := testSet()
	bigger.Config.KindCount = 3
	bigger.Config.KindNames[2] = "WIZARD"
	m = m.WithReload(func() error {
		store.Replace(bigger)
		return nil
	})

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if cmd == nil {
		t.Fatal("reload key should return a command")
	}
	next, _ := m.Update(cmd())
	m = next.(BrowserModel)

	if !strings.Contains(m.View(), "WIZARD") {
		t.Error("View() should list the reloaded kinds")
	}
	if !strings.Contains(m.View(), "reloaded 3 kinds") {
		t.Error("View() should show the reload status")
	}
}

func TestTurnsSince(t *testing.T) {
	start := time.Unix(1000, 0)
	tests := []struct {
		name     string
		last     time.Time
		now      time.Time
		expected int
	}{
		{"first tick", time.Time{}, start, 1},
		{"on time", start, start.Add(50 * time.Millisecond), 1},
		{"early", start, start.Add(10 * time.Millisecond), 1},
		{"three late", start, start.Add(150 * time.Millisecond), 3},
		{"stalled", start, start.Add(5 * time.Second), maxCatchUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := turnsSince(tt.last, tt.now, tickRate); got != tt.expected {
				t.Errorf("turnsSince() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestBrowserTickCatchesUp(t *testing.T) {
	m := NewBrowserModel(testStore(testSet()), log.New(&bytes.Buffer{}), 80, 30)

	next, _ := m.Update(TickMsg{At: time.Unix(1000, 0), Turns: 3})
	m = next.(BrowserModel)
	if m.Playground().Game.Turn != 4 {
		t.Errorf("Turn = %d, expected 4", m.Playground().Game.Turn)
	}

	m.Playground().TogglePause()
	next, _ = m.Update(TickMsg{Turns: 5})
	m = next.(BrowserModel)
	if m.Playground().Game.Turn != 4 {
		t.Errorf("paused Turn = %d, expected 4", m.Playground().Game.Turn)
	}
}
