// Package creature loads the creature type list (creature.cfg) and the
// per-model balance files (<name>.cfg) into typed records.
package creature

import (
	"github.com/vovakirdan/keepercfg/internal/confparse"
	"github.com/vovakirdan/keepercfg/internal/registry"
)

const (
	// TypesMax bounds the number of creature kinds a creature.cfg may list.
	TypesMax = 64
	// TypesCount is the length of the stats array; model ids wrap modulo it.
	TypesCount = 32
	// InstancesMax bounds every count in the [common] block.
	InstancesMax = 64
	// LevelsCount is the number of experience levels.
	LevelsCount = 10
	// EntranceRoomsMax is the number of entrance room preferences.
	EntranceRoomsMax = 3
)

// Anger job bits.
const (
	AngerKillCreatures = 1 << iota
	AngerDestroyRooms
	AngerLeaveDungeon
	AngerStealGold
	AngerDamageWalls
	AngerMadPsycho
	AngerPersuade
	AngerJoinEnemy
	AngerUnknown1
)

// Job bits.
const (
	JobTunnel = 1 << iota
	JobDig
	JobResearch
	JobTrain
	JobManufacture
	JobScavenge
	JobKinkyTorture
	JobFight
	JobSeekTheEnemy
	JobGuard
	JobGroup
	JobBarrack
	JobTemple
	JobFreezePrisoners
	JobExplore
)

// Attack preferences.
const (
	AttackMelee  = 1
	AttackRanged = 2
)

// AngerJobs names the bits of Stats.JobsAnger.
var AngerJobs = confparse.NamedTable{
	{Name: "KILL_CREATURES", ID: AngerKillCreatures},
	{Name: "DESTROY_ROOMS", ID: AngerDestroyRooms},
	{Name: "LEAVE_DUNGEON", ID: AngerLeaveDungeon},
	{Name: "STEAL_GOLD", ID: AngerStealGold},
	{Name: "DAMAGE_WALLS", ID: AngerDamageWalls},
	{Name: "MAD_PSYCHO", ID: AngerMadPsycho},
	{Name: "PERSUADE", ID: AngerPersuade},
	{Name: "JOIN_ENEMY", ID: AngerJoinEnemy},
	{Name: "UNKNOWN1", ID: AngerUnknown1},
}

// Jobs names the bits of the job masks. NULL resolves but carries no bit.
var Jobs = confparse.NamedTable{
	{Name: "NULL", ID: 0},
	{Name: "TUNNEL", ID: JobTunnel},
	{Name: "DIG", ID: JobDig},
	{Name: "RESEARCH", ID: JobResearch},
	{Name: "TRAIN", ID: JobTrain},
	{Name: "MANUFACTURE", ID: JobManufacture},
	{Name: "SCAVENGE", ID: JobScavenge},
	{Name: "KINKY_TORTURE", ID: JobKinkyTorture},
	{Name: "FIGHT", ID: JobFight},
	{Name: "SEEK_THE_ENEMY", ID: JobSeekTheEnemy},
	{Name: "GUARD", ID: JobGuard},
	{Name: "GROUP", ID: JobGroup},
	{Name: "BARRACK", ID: JobBarrack},
	{Name: "TEMPLE", ID: JobTemple},
	{Name: "FREEZE_PRISONERS", ID: JobFreezePrisoners},
	{Name: "EXPLORE", ID: JobExplore},
}

// AttackPreferences names Stats.AttackPreference values.
var AttackPreferences = confparse.NamedTable{
	{Name: "MELEE", ID: AttackMelee},
	{Name: "RANGED", ID: AttackRanged},
}

// Property ids accepted by PROPERTIES. Id 6 is unused.
const (
	PropBleeds           = 1
	PropUnaffectedByWind = 2
	PropImmuneToGas      = 3
	PropHumanoid         = 4
	PropPissOnDead       = 5
	PropFlying           = 7
	PropSeeInvisible     = 8
	PropPassLockedDoors  = 9
)

// Properties names the tokens of the PROPERTIES command.
var Properties = confparse.NamedTable{
	{Name: "BLEEDS", ID: PropBleeds},
	{Name: "UNAFFECTED_BY_WIND", ID: PropUnaffectedByWind},
	{Name: "IMMUNE_TO_GAS", ID: PropImmuneToGas},
	{Name: "HUMANOID", ID: PropHumanoid},
	{Name: "PISS_ON_DEAD", ID: PropPissOnDead},
	{Name: "FLYING", ID: PropFlying},
	{Name: "SEE_INVISIBLE", ID: PropSeeInvisible},
	{Name: "PASS_LOCKED_DOORS", ID: PropPassLockedDoors},
}

func init() {
	registry.Register("angerjobs", "Anger jobs", func() confparse.NamedTable { return AngerJobs })
	registry.Register("jobs", "Creature jobs", func() confparse.NamedTable { return Jobs })
	registry.Register("attackpref", "Attack preferences", func() confparse.NamedTable { return AttackPreferences })
	registry.Register("properties", "Creature properties", func() confparse.NamedTable { return Properties })
}
