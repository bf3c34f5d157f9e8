package view

// Pointer graphic ids.
const (
	GraphicInvisible = 0
	GraphicArrow     = 1
	GraphicPickaxe   = 2
	GraphicSell      = 3
	GraphicQuery     = 4
	GraphicDoorKey   = 39
	GraphicPossess   = 47
	// GraphicPossessAnim is the first of three animated possession frames.
	GraphicPossessAnim = 96

	possessFrames = 3
)

// PointerKind tells how a Pointer is drawn.
type PointerKind int

const (
	// PointerHidden draws no pointer at all.
	PointerHidden PointerKind = iota
	// PointerSprite draws Pointer.Graphic.
	PointerSprite
	// PointerSpell hands off to the spell cursor drawer.
	PointerSpell
)

// SpellCursor is the input of the spell cursor drawer.
type SpellCursor struct {
	State WorkState
	// Thing is the creature targeted from the battle box, or 0.
	Thing int
	X, Y  int
}

// Pointer is the pointer chosen for a frame.
type Pointer struct {
	Kind    PointerKind
	Graphic int
	Spell   SpellCursor
	// Highlight asks for the thing under the hand to be outlined.
	Highlight bool
}

// PointerSink draws pointers.
type PointerSink interface {
	SetPointerGraphic(graphic int)
	SetPointerNone()
	DrawSpellCursor(state WorkState, thing, x, y int)
}

// Apply hands p to the sink.
func (p Pointer) Apply(s PointerSink) {
	switch p.Kind {
	case PointerSprite:
		s.SetPointerGraphic(p.Graphic)
	case PointerSpell:
		s.DrawSpellCursor(p.Spell.State, p.Spell.Thing, p.Spell.X, p.Spell.Y)
	default:
		s.SetPointerNone()
	}
}

func sprite(g int) Pointer {
	return Pointer{Kind: PointerSprite, Graphic: g}
}

func spell(state WorkState, thing, x, y int) Pointer {
	return Pointer{Kind: PointerSpell, Spell: SpellCursor{State: state, Thing: thing, X: x, Y: y}}
}

var hidden = Pointer{Kind: PointerHidden}

// PointerGraphic picks the pointer for the player's current view.
func PointerGraphic(f Frame) Pointer {
	p := f.Player
	switch p.ViewType {
	case ViewDungeonTop:
		return dungeonTopPointer(f)
	case ViewCreatureControl, ViewCreaturePassenger:
		if f.Game.Features&FeatPossessPointer != 0 {
			return sprite(GraphicArrow)
		}
		return sprite(GraphicInvisible)
	case ViewMapScreen, ViewMapFadeIn, ViewMapFadeOut:
		return sprite(GraphicArrow)
	case ViewNone:
		return hidden
	default:
		f.logger().Warn("unsupported view type", "view", int(p.ViewType))
		return hidden
	}
}

func dungeonTopPointer(f Frame) Pointer {
	p, g, d := f.Player, f.Game, f.Dungeon
	if d == nil {
		return sprite(GraphicInvisible)
	}
	if p.Instance == InstanceMapFadeFrom {
		return sprite(GraphicInvisible)
	}
	if g.Flags&GameStatusPanel != 0 && g.MouseOverSmallMap(p.MouseX, p.MouseY) {
		if g.SmallMapState == 2 {
			return sprite(GraphicInvisible)
		}
		return sprite(GraphicArrow)
	}
	if g.BattleCreatureOver > 0 {
		thing := g.BattleCreatureOver
		if f.World.CanCastSpell(p.ID, thing, SpellFor(p.WorkState)) {
			x, y := f.World.ThingSubtile(thing)
			return spell(p.WorkState, thing, x, y)
		}
		return sprite(GraphicArrow)
	}
	if g.GUIBusy {
		return sprite(GraphicArrow)
	}

	switch p.WorkState {
	case StateCtrlDungeon:
		return handPointer(f)
	case StateBuildRoom:
		return sprite(RoomGraphic(p.ChosenRoom))
	case StateUnknown5, StateSlap:
		return sprite(GraphicInvisible)
	case StateCallToArms, StateCaveIn, StateSightOfEvil, StateCtrlPassenger,
		StateCtrlDirect, StateLightning, StateSpeedUp, StateArmour, StateConceal,
		StateHeal, StateCreateDigger, StateDestroyWalls, StateCastDisease,
		StateTurnChicken:
		return spell(p.WorkState, 0, g.CursorX, g.CursorY)
	case StateUnknown12, StateUnknown15:
		return sprite(GraphicQuery)
	case StatePlaceTrap:
		return sprite(TrapGraphic(p.ChosenTrap))
	case StatePlaceDoor:
		return sprite(DoorGraphic(p.ChosenDoor))
	case StateSell:
		return sprite(GraphicSell)
	default:
		return sprite(GraphicArrow)
	}
}

// handPointer covers the plain dungeon control state. Possession wins over
// query when both apply.
func handPointer(f Frame) Pointer {
	p, g, d := f.Player, f.Game, f.Dungeon
	cur := p.SecondaryCursor
	if cur == CursorNone {
		cur = p.PrimaryCursor
	}
	switch cur {
	case CursorPickaxe:
		return sprite(GraphicPickaxe)
	case CursorDoorKey:
		return sprite(GraphicDoorKey)
	case CursorPowerHand:
		thing := p.ThingUnderHand
		usable := f.World.ThingValid(thing) && !d.holding(thing)
		if usable && p.CanPossess && f.World.CanBePossessed(thing, p.ID) {
			ptr := sprite(GraphicPossess)
			if g.BigPointer {
				ptr.Graphic = GraphicPossessAnim + g.Turn%possessFrames
			}
			ptr.Highlight = true
			return ptr
		}
		if usable && p.CanQuery && f.World.CanBeQueried(thing, p.ID) {
			ptr := sprite(GraphicQuery)
			ptr.Highlight = true
			return ptr
		}
		if p.Flags&PlayerSubtileIsHigh != 0 {
			return sprite(GraphicPickaxe)
		}
		return sprite(GraphicInvisible)
	default:
		if p.HandBusyUntil <= g.Turn {
			return sprite(GraphicArrow)
		}
		return sprite(GraphicInvisible)
	}
}
