package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepercfg/internal/core"
	"github.com/vovakirdan/keepercfg/internal/creature"
	"github.com/vovakirdan/keepercfg/internal/view"
)

// Playground screen geometry, in game pixels.
const (
	playgroundScreenW = 640
	playgroundScreenH = 480
	playgroundPanelW  = 140
)

var playgroundViews = []view.ViewType{
	view.ViewDungeonTop,
	view.ViewCreatureControl,
	view.ViewCreaturePassenger,
	view.ViewMapScreen,
	view.ViewNone,
}

var playgroundCursors = []view.CursorState{
	view.CursorPowerHand,
	view.CursorPickaxe,
	view.CursorDoorKey,
	view.CursorNone,
}

// Playground evaluates the pointer of a local keeper hovering one creature.
// The selected creature model doubles as the thing id under the hand.
type Playground struct {
	Player  view.Player
	Dungeon view.Dungeon
	Game    view.Game

	set     *creature.Set
	world   playgroundWorld
	viewIdx int
	curIdx  int
	paused  bool
	log     *log.Logger

	last view.Pointer
}

// playgroundWorld answers view.World questions from the loaded creature set.
type playgroundWorld struct {
	set *creature.Set
	// possessable is cleared by the possess toggle.
	possessable bool
	x, y        int
}

func (w *playgroundWorld) ThingValid(thing int) bool {
	if w.set == nil || thing < 1 || thing > w.set.Config.KindCount {
		return false
	}
	return w.set.Loaded[creature.Index(thing)]
}

func (w *playgroundWorld) CanBePossessed(thing, player int) bool {
	return w.possessable && w.ThingValid(thing)
}

func (w *playgroundWorld) CanBeQueried(thing, player int) bool {
	return w.ThingValid(thing)
}

// CanCastSpell refuses creatures that fly for the ground-bound powers.
func (w *playgroundWorld) CanCastSpell(player, thing int, power view.PowerKind) bool {
	if !w.ThingValid(thing) {
		return false
	}
	st := w.set.Stats[creature.Index(thing)]
	switch power {
	case view.PowerCaveIn, view.PowerDestroyWalls:
		return !st.Flying
	}
	return true
}

func (w *playgroundWorld) ThingSubtile(thing int) (int, int) {
	return w.x, w.y
}

// NewPlayground creates a playground over a loaded creature set.
func NewPlayground(set *creature.Set, logger *log.Logger) *Playground {
	pg := &Playground{
		set:   set,
		world: playgroundWorld{set: set, possessable: true, x: 32, y: 32},
		log:   logger,
	}
	pg.Player = view.Player{
		ID:            0,
		Local:         true,
		ViewType:      view.ViewDungeonTop,
		WorkState:     view.StateCtrlDungeon,
		PrimaryCursor: view.CursorPowerHand,
		CanPossess:    true,
		CanQuery:      true,
		MouseX:        playgroundScreenW / 2,
		MouseY:        playgroundScreenH / 2,
	}
	pg.Game = view.Game{
		ScreenW:          playgroundScreenW,
		ScreenH:          playgroundScreenH,
		StatusPanelWidth: playgroundPanelW,
		Flags:            view.GameStatusPanel,
		SmallMap:         core.NewRect(8, 8, playgroundPanelW-16, playgroundPanelW-16),
		CursorX:          pg.world.x,
		CursorY:          pg.world.y,
	}
	pg.applyView()
	return pg
}

func (pg *Playground) applyView() {
	pg.Player.ViewType = playgroundViews[pg.viewIdx]
	mode := view.ModeIsometric
	switch pg.Player.ViewType {
	case view.ViewCreatureControl, view.ViewCreaturePassenger:
		mode = view.ModeCreature
	case view.ViewMapScreen:
		mode = view.ModeParchment
	case view.ViewNone:
		mode = view.ModeEmpty
	}
	view.SetEngineView(&pg.Player, mode)
	view.SetupEngineWindow(&pg.Player, &pg.Game, core.NewRect(0, 0, playgroundScreenW, playgroundScreenH))
}

// SetCreatures replaces the creature set the world answers from.
func (pg *Playground) SetCreatures(set *creature.Set) {
	pg.set = set
	pg.world.set = set
}

// Select puts the given creature model under the hand.
func (pg *Playground) Select(model int) {
	pg.Player.ThingUnderHand = model
}

// CycleView switches to the next view type.
func (pg *Playground) CycleView() {
	pg.viewIdx = (pg.viewIdx + 1) % len(playgroundViews)
	pg.applyView()
}

// CycleState moves the work state by delta, wrapping around.
func (pg *Playground) CycleState(delta int) {
	n := int(view.WorkStatesCount)
	pg.Player.WorkState = view.WorkState(((int(pg.Player.WorkState)+delta)%n + n) % n)
}

// CycleCursor switches to the next hand tool.
func (pg *Playground) CycleCursor() {
	pg.curIdx = (pg.curIdx + 1) % len(playgroundCursors)
	pg.Player.PrimaryCursor = playgroundCursors[pg.curIdx]
}

// ToggleHold picks up or drops the creature under the hand.
func (pg *Playground) ToggleHold() {
	if len(pg.Dungeon.ThingsInHand) > 0 {
		pg.Dungeon.ThingsInHand = pg.Dungeon.ThingsInHand[:0]
		return
	}
	if pg.Player.ThingUnderHand > 0 {
		pg.Dungeon.ThingsInHand = append(pg.Dungeon.ThingsInHand, pg.Player.ThingUnderHand)
	}
}

// TogglePossess switches whether creatures accept possession.
func (pg *Playground) TogglePossess() {
	pg.world.possessable = !pg.world.possessable
}

// ToggleBigPointer switches the animated possession pointer.
func (pg *Playground) ToggleBigPointer() {
	pg.Game.BigPointer = !pg.Game.BigPointer
}

// TogglePause stops or resumes the turn counter.
func (pg *Playground) TogglePause() {
	pg.paused = !pg.paused
	pg.Game.Flags ^= view.GamePaused
}

// Tick advances one game turn and evaluates the pointer.
func (pg *Playground) Tick() view.Pointer {
	return pg.Advance(1)
}

// Advance moves the game n turns forward, at least one, and evaluates the
// pointer once. Paused games keep their turn.
func (pg *Playground) Advance(n int) view.Pointer {
	if n < 1 {
		n = 1
	}
	if !pg.paused {
		pg.Game.Turn += n
	}
	pg.last = view.PointerGraphic(view.Frame{
		Player:  &pg.Player,
		Dungeon: &pg.Dungeon,
		Game:    &pg.Game,
		World:   &pg.world,
		Log:     pg.log,
	})
	pg.Player.Highlight = pg.last.Highlight
	return pg.last
}

// Pointer returns the pointer of the last tick.
func (pg *Playground) Pointer() view.Pointer {
	return pg.last
}

// Holding reports whether a creature is in the hand.
func (pg *Playground) Holding() bool {
	return len(pg.Dungeon.ThingsInHand) > 0
}

// Possessable reports the state of the possess toggle.
func (pg *Playground) Possessable() bool {
	return pg.world.possessable
}

// Paused reports whether turns are stopped.
func (pg *Playground) Paused() bool {
	return pg.paused
}

var graphicNames = map[int]string{
	view.GraphicInvisible: "invisible",
	view.GraphicArrow:     "arrow",
	view.GraphicPickaxe:   "pickaxe",
	view.GraphicSell:      "sell",
	view.GraphicQuery:     "query",
	view.GraphicDoorKey:   "door key",
	view.GraphicPossess:   "possess",
}

// GraphicName names a pointer graphic id.
func GraphicName(g int) string {
	if name, ok := graphicNames[g]; ok {
		return name
	}
	if g >= view.GraphicPossessAnim && g < view.GraphicPossessAnim+3 {
		return fmt.Sprintf("possess frame %d", g-view.GraphicPossessAnim)
	}
	return fmt.Sprintf("sprite %d", g)
}

// DescribePointer renders a pointer as a short label.
func DescribePointer(p view.Pointer) string {
	switch p.Kind {
	case view.PointerSprite:
		s := fmt.Sprintf("%s (#%d)", GraphicName(p.Graphic), p.Graphic)
		if p.Highlight {
			s += " +highlight"
		}
		return s
	case view.PointerSpell:
		return fmt.Sprintf("spell cursor: %s at %d,%d", p.Spell.State, p.Spell.X, p.Spell.Y)
	default:
		return "hidden"
	}
}
