// Package view selects the mouse pointer graphic for each rendered frame and
// drives the per-frame redraw sequence of the keeper screen. Everything here
// is a function of the player, dungeon and game fields handed in; nothing is
// kept between frames.
package view

// ViewType is what the player is currently looking at.
type ViewType int

const (
	ViewNone ViewType = iota
	ViewDungeonTop
	ViewCreatureControl
	ViewCreaturePassenger
	ViewMapScreen
	ViewMapFadeIn
	ViewMapFadeOut
)

var viewTypeNames = [...]string{
	ViewNone:              "none",
	ViewDungeonTop:        "dungeon-top",
	ViewCreatureControl:   "creature-control",
	ViewCreaturePassenger: "creature-passenger",
	ViewMapScreen:         "map-screen",
	ViewMapFadeIn:         "map-fade-in",
	ViewMapFadeOut:        "map-fade-out",
}

func (v ViewType) String() string {
	if v >= 0 && int(v) < len(viewTypeNames) {
		return viewTypeNames[v]
	}
	return "unknown"
}

// ViewMode selects the renderer used for the frame.
type ViewMode int

const (
	ModeEmpty ViewMode = iota
	ModeCreature
	ModeIsometric
	ModeParchment
	ModeFront
	ModeParchFadeIn
	ModeParchFadeOut
)

var viewModeNames = [...]string{
	ModeEmpty:        "empty",
	ModeCreature:     "creature",
	ModeIsometric:    "isometric",
	ModeParchment:    "parchment",
	ModeFront:        "front",
	ModeParchFadeIn:  "parchment-fade-in",
	ModeParchFadeOut: "parchment-fade-out",
}

func (m ViewMode) String() string {
	if m >= 0 && int(m) < len(viewModeNames) {
		return viewModeNames[m]
	}
	return "unknown"
}

// WorkState is the action the keeper's hand is set up to perform.
type WorkState int

const (
	StateNone WorkState = iota
	StateCtrlDungeon
	StateBuildRoom
	StateMkDigger
	StateMkGoodCreature
	StateUnknown5
	StateCallToArms
	StateCaveIn
	StateSightOfEvil
	StateSlap
	StateCtrlPassenger
	StateCtrlDirect
	StateUnknown12
	StateLightning
	StateSpeedUp
	StateUnknown15
	StateArmour
	StateConceal
	StateHeal
	StateSell
	StateCreateDigger
	StateDestroyWalls
	StateCastDisease
	StateTurnChicken
	StateMkGoldPot
	StateTimeBomb
	StatePlaceTrap
	StatePlaceDoor

	// WorkStatesCount is the number of defined work states.
	WorkStatesCount
)

var workStateNames = [...]string{
	StateNone:           "none",
	StateCtrlDungeon:    "ctrl-dungeon",
	StateBuildRoom:      "build-room",
	StateMkDigger:       "make-digger",
	StateMkGoodCreature: "make-good-creature",
	StateUnknown5:       "unknown5",
	StateCallToArms:     "call-to-arms",
	StateCaveIn:         "cave-in",
	StateSightOfEvil:    "sight-of-evil",
	StateSlap:           "slap",
	StateCtrlPassenger:  "ctrl-passenger",
	StateCtrlDirect:     "ctrl-direct",
	StateUnknown12:      "unknown12",
	StateLightning:      "lightning",
	StateSpeedUp:        "speed-up",
	StateUnknown15:      "unknown15",
	StateArmour:         "armour",
	StateConceal:        "conceal",
	StateHeal:           "heal",
	StateSell:           "sell",
	StateCreateDigger:   "create-digger",
	StateDestroyWalls:   "destroy-walls",
	StateCastDisease:    "cast-disease",
	StateTurnChicken:    "turn-chicken",
	StateMkGoldPot:      "make-gold-pot",
	StateTimeBomb:       "time-bomb",
	StatePlaceTrap:      "place-trap",
	StatePlaceDoor:      "place-door",
}

func (s WorkState) String() string {
	if s >= 0 && int(s) < len(workStateNames) {
		return workStateNames[s]
	}
	return "unknown"
}

// ParseWorkState returns the state with the given String name.
func ParseWorkState(name string) (WorkState, bool) {
	for i, n := range workStateNames {
		if n == name {
			return WorkState(i), true
		}
	}
	return StateNone, false
}

// ParseViewType returns the view type with the given String name.
func ParseViewType(name string) (ViewType, bool) {
	for i, n := range viewTypeNames {
		if n == name {
			return ViewType(i), true
		}
	}
	return ViewNone, false
}

// PowerKind identifies a keeper spell.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerHand
	PowerMkDigger
	PowerObey
	PowerSlap
	PowerSight
	PowerCallToArms
	PowerCaveIn
	PowerHealCreature
	PowerHoldAudience
	PowerLightning
	PowerSpeedCreature
	PowerProtect
	PowerConceal
	PowerDisease
	PowerChicken
	PowerDestroyWalls
	PowerTimeBomb
	PowerPossess
	PowerArmageddon
)

// stateSpells maps work states to the spell they cast.
var stateSpells = [WorkStatesCount]PowerKind{
	StateMkDigger:      PowerMkDigger,
	StateCallToArms:    PowerCallToArms,
	StateCaveIn:        PowerCaveIn,
	StateSightOfEvil:   PowerSight,
	StateSlap:          PowerSlap,
	StateCtrlPassenger: PowerPossess,
	StateCtrlDirect:    PowerPossess,
	StateLightning:     PowerLightning,
	StateSpeedUp:       PowerSpeedCreature,
	StateArmour:        PowerProtect,
	StateConceal:       PowerConceal,
	StateHeal:          PowerHealCreature,
	StateCreateDigger:  PowerMkDigger,
	StateDestroyWalls:  PowerDestroyWalls,
	StateCastDisease:   PowerDisease,
	StateTurnChicken:   PowerChicken,
	StateTimeBomb:      PowerTimeBomb,
}

// SpellFor returns the spell cast from a work state, or PowerNone.
func SpellFor(s WorkState) PowerKind {
	if s < 0 || s >= WorkStatesCount {
		return PowerNone
	}
	return stateSpells[s]
}

// PlayerInstance is the transition the player is playing out.
type PlayerInstance int

const (
	InstanceNone PlayerInstance = iota
	InstanceMapFadeTo
	InstanceMapFadeFrom
)

// CursorState is the hand tool picked for the dungeon view.
type CursorState int

const (
	CursorNone CursorState = iota
	CursorPickaxe
	CursorDoorKey
	CursorPowerHand
)

// GameKind distinguishes regular play from non-interactive sessions.
type GameKind int

const (
	KindNormal GameKind = iota
	// KindNoDisplay sessions never redraw.
	KindNoDisplay
)
