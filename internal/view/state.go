package view

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepercfg/internal/core"
)

// Game option flags.
const (
	GamePaused        = 0x01
	GameStatusPanel   = 0x20
	GamePauseNoSplash = 0x80
)

// Game feature flags.
const (
	// FeatPossessPointer shows the arrow while controlling a creature.
	FeatPossessPointer = 0x08
)

// Player flags.
const (
	// PlayerSubtileIsHigh marks a hovered subtile that can be dug.
	PlayerSubtileIsHigh = 0x02
)

// Camera is one of the player's four viewpoints.
type Camera struct {
	X, Y   int
	Orient int
}

// Player holds the per-player fields the pointer and redraw code read.
type Player struct {
	ID    int
	Local bool

	ViewType ViewType
	ViewMode ViewMode
	// WorkState is what a click in the dungeon view does.
	WorkState WorkState
	Instance  PlayerInstance

	MouseX, MouseY int

	// PrimaryCursor is the tool chosen from the panel; SecondaryCursor, when
	// set, overrides it.
	PrimaryCursor   CursorState
	SecondaryCursor CursorState

	ThingUnderHand int
	CanPossess     bool
	CanQuery       bool
	Flags          int
	// HandBusyUntil is the first game turn the hand may act again.
	HandBusyUntil int

	ChosenRoom int
	ChosenTrap int
	ChosenDoor int

	// Highlight is set when the hovered thing should be outlined.
	Highlight bool

	Window  core.Rect
	Cameras [4]Camera
	// Camera indexes Cameras.
	Camera int
	// LensMode is the eye lens applied in first-person view.
	LensMode int
	// FadeStep is the parchment fade amount, 0 to FadeMax.
	FadeStep int
}

// ActiveCamera returns the camera currently in use.
func (p *Player) ActiveCamera() *Camera {
	return &p.Cameras[p.Camera&3]
}

// Dungeon holds the per-keeper fields the pointer and camera code read.
type Dungeon struct {
	// ThingsInHand lists the things held, most recent first.
	ThingsInHand []int

	CameraDeviateQuake int
	CameraDeviateJump  int
}

func (d *Dungeon) holding(thing int) bool {
	return len(d.ThingsInHand) > 0 && d.ThingsInHand[0] == thing
}

// Armageddon tracks the countdown of the armageddon spell.
type Armageddon struct {
	// Start is the turn the spell was cast, or 0.
	Start     int
	CountDown int
	Duration  int
	// End is the turn the armageddon finishes.
	End int
}

// Game holds the global fields the pointer and redraw code read.
type Game struct {
	Kind     GameKind
	Turn     int
	Flags    int
	Features int

	ScreenW, ScreenH int
	StatusPanelWidth int
	// SmallMap is the status panel minimap area in screen pixels.
	SmallMap      core.Rect
	SmallMapState int

	// BattleCreatureOver is the creature under the mouse in the battle
	// message box, or 0.
	BattleCreatureOver int
	GUIBusy            bool
	// CursorX and CursorY are the map subtile under the pointer.
	CursorX, CursorY int

	// BigPointer enables the animated possession pointer.
	BigPointer bool

	Armageddon Armageddon
}

// MouseOverSmallMap reports whether the point is over the status panel
// minimap.
func (g *Game) MouseOverSmallMap(x, y int) bool {
	return g.SmallMap.Contains(x, y)
}

// World answers questions about things on the map.
type World interface {
	ThingValid(thing int) bool
	CanBePossessed(thing, player int) bool
	CanBeQueried(thing, player int) bool
	CanCastSpell(player, thing int, power PowerKind) bool
	// ThingSubtile returns the map subtile the thing stands on.
	ThingSubtile(thing int) (x, y int)
}

// Frame is the input of one pointer evaluation or redraw pass.
type Frame struct {
	Player  *Player
	Dungeon *Dungeon
	Game    *Game
	World   World
	// Rand drives the camera quake; nil uses the global source.
	Rand *rand.Rand
	// Log receives diagnostics; nil means log.Default().
	Log *log.Logger
}

func (f Frame) logger() *log.Logger {
	if f.Log == nil {
		return log.Default()
	}
	return f.Log
}
