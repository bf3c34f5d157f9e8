package creature

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/keepercfg/internal/confparse"
)

// Lookups are the name tables model files refer to.
type Lookups struct {
	Creatures confparse.NamedTable
	Instances confparse.NamedTable
	Rooms     confparse.NamedTable
	Slabs     confparse.NamedTable
	Lenses    confparse.NamedTable
}

type statField = confparse.Field[Stats]

type intRef func(*Stats) *int

func intField(command string, ref intRef) statField {
	return statField{
		Command: command,
		Kind:    confparse.Values,
		Args:    confparse.Ints(1),
		Set:     func(s *Stats, v []int) { *ref(s) = v[0] },
	}
}

func pairField(command string, a, b intRef) statField {
	return statField{
		Command: command,
		Kind:    confparse.Values,
		Args:    confparse.Ints(2),
		Set:     func(s *Stats, v []int) { *a(s), *b(s) = v[0], v[1] },
	}
}

func nameField(command string, arg confparse.Arg, ref intRef) statField {
	return statField{
		Command: command,
		Kind:    confparse.Values,
		Args:    []confparse.Arg{arg},
		Set:     func(s *Stats, v []int) { *ref(s) = v[0] },
	}
}

func maskField(command string, tbl confparse.TableFunc, ref intRef) statField {
	return statField{
		Command: command,
		Kind:    confparse.Flags,
		Args:    []confparse.Arg{confparse.FlagArg(tbl)},
		Set:     func(s *Stats, v []int) { *ref(s) = v[0] },
	}
}

func listField(command string, arg confparse.Arg, max int, dst func(*Stats) []int) statField {
	return statField{
		Command: command,
		Kind:    confparse.List,
		Args:    []confparse.Arg{arg},
		Max:     max,
		Set:     func(s *Stats, v []int) { copy(dst(s), v) },
	}
}

func static(t confparse.NamedTable) confparse.TableFunc {
	return func() confparse.NamedTable { return t }
}

var nonNegative = confparse.Arg{Kind: confparse.Int, NonNegative: true}

func attributesBlock() *confparse.Block[Stats] {
	return &confparse.Block[Stats]{
		Name: "attributes",
		Reset: func(s *Stats) {
			s.Health = 1
			s.HealRequirement = 1
			s.HealThreshold = 1
			s.Strength = 0
			s.Armour = 0
			s.Dexterity = 0
			s.Fear = 32
			s.Defence = 0
			s.Luck = 0
			s.Recovery = 1
			s.HungerRate = 1
			s.HungerFill = 1
			s.LairSize = 1
			s.HurtByLava = 1
			s.BaseSpeed = 1
			s.GoldHold = 100
			s.SizeXY = 1
			s.SizeYZ = 1
			s.AttackPreference = 0
			s.Pay = 1
			s.HeroVsKeeperCost = 0
			s.SlapsToKill = 10
			s.DamageToBoulder = 4
			s.ThingSizeXY = 128
			s.ThingSizeYZ = 64
			s.Bleeds = false
			s.AffectedByWind = true
			s.ImmuneToGas = false
			s.Humanoid = false
			s.PissOnDead = false
			s.Flying = false
			s.SeeInvisible = false
			s.GoLockedDoors = false
		},
		Fields: []statField{
			// Names come from creature.cfg.
			{Command: "NAME", Kind: confparse.Ignore},
			intField("HEALTH", func(s *Stats) *int { return &s.Health }),
			intField("HEALREQUIRMENT", func(s *Stats) *int { return &s.HealRequirement }),
			intField("HEALTHRESHOLD", func(s *Stats) *int { return &s.HealThreshold }),
			intField("STRENGTH", func(s *Stats) *int { return &s.Strength }),
			intField("ARMOUR", func(s *Stats) *int { return &s.Armour }),
			intField("DEXTERITY", func(s *Stats) *int { return &s.Dexterity }),
			intField("FEAR", func(s *Stats) *int { return &s.Fear }),
			intField("DEFENCE", func(s *Stats) *int { return &s.Defence }),
			intField("LUCK", func(s *Stats) *int { return &s.Luck }),
			intField("RECOVERY", func(s *Stats) *int { return &s.Recovery }),
			intField("HUNGERRATE", func(s *Stats) *int { return &s.HungerRate }),
			intField("HUNGERFILL", func(s *Stats) *int { return &s.HungerFill }),
			intField("LAIRSIZE", func(s *Stats) *int { return &s.LairSize }),
			intField("HURTBYLAVA", func(s *Stats) *int { return &s.HurtByLava }),
			intField("BASESPEED", func(s *Stats) *int { return &s.BaseSpeed }),
			intField("GOLDHOLD", func(s *Stats) *int { return &s.GoldHold }),
			pairField("SIZE", func(s *Stats) *int { return &s.SizeXY }, func(s *Stats) *int { return &s.SizeYZ }),
			nameField("ATTACKPREFERENCE", confparse.FlagArg(static(AttackPreferences)),
				func(s *Stats) *int { return &s.AttackPreference }),
			intField("PAY", func(s *Stats) *int { return &s.Pay }),
			intField("HEROVSKEEPERCOST", func(s *Stats) *int { return &s.HeroVsKeeperCost }),
			intField("SLAPSTOKILL", func(s *Stats) *int { return &s.SlapsToKill }),
			{Command: "CREATURELOYALTY", Kind: confparse.Ignore},
			{Command: "LOYALTYLEVEL", Kind: confparse.Ignore},
			intField("DAMAGETOBOULDER", func(s *Stats) *int { return &s.DamageToBoulder }),
			pairField("THINGSIZE", func(s *Stats) *int { return &s.ThingSizeXY }, func(s *Stats) *int { return &s.ThingSizeYZ }),
			{Command: "PROPERTIES", Kind: confparse.Each,
				Args: []confparse.Arg{confparse.FlagArg(static(Properties))},
				Set:  func(s *Stats, v []int) { setProperty(s, v[0]) }},
		},
	}
}

func setProperty(s *Stats, id int) {
	switch id {
	case PropBleeds:
		s.Bleeds = true
	case PropUnaffectedByWind:
		s.AffectedByWind = false
	case PropImmuneToGas:
		s.ImmuneToGas = true
	case PropHumanoid:
		s.Humanoid = true
	case PropPissOnDead:
		s.PissOnDead = true
	case PropFlying:
		s.Flying = true
	case PropSeeInvisible:
		s.SeeInvisible = true
	case PropPassLockedDoors:
		s.GoLockedDoors = true
	}
}

func attractionBlock(lk Lookups) *confparse.Block[Stats] {
	return &confparse.Block[Stats]{
		Name: "attraction",
		Reset: func(s *Stats) {
			s.EntranceRooms = [EntranceRoomsMax]int{}
			s.EntranceSlabsReq = [EntranceRoomsMax]int{}
			s.EntranceForce = 0
			s.ScavengeRequire = 1
			s.TortureTime = 1
		},
		Fields: []statField{
			listField("ENTRANCEROOM", confparse.NameArg(static(lk.Rooms)), EntranceRoomsMax,
				func(s *Stats) []int { return s.EntranceRooms[:] }),
			listField("ROOMSLABSREQUIRED", confparse.IntArg, EntranceRoomsMax,
				func(s *Stats) []int { return s.EntranceSlabsReq[:] }),
			intField("ENTRANCEFORCE", func(s *Stats) *int { return &s.EntranceForce }),
			intField("SCAVENGEREQUIREMENT", func(s *Stats) *int { return &s.ScavengeRequire }),
			intField("TORTURETIME", func(s *Stats) *int { return &s.TortureTime }),
		},
	}
}

func annoyanceBlock(lk Lookups) *confparse.Block[Stats] {
	return &confparse.Block[Stats]{
		Name: "annoyance",
		Reset: func(s *Stats) {
			s.AnnoyEatFood = 0
			s.AnnoyWillNotDoJob = 0
			s.AnnoyInHand = 0
			s.AnnoyNoLair = 0
			s.AnnoyNoHatchery = 0
			s.AnnoyWokenUp = 0
			s.AnnoyOnDeadEnemy = 0
			s.AnnoySulking = 0
			s.AnnoyNoSalary = 0
			s.AnnoySlapped = 0
			s.AnnoyOnDeadFriend = 0
			s.AnnoyInTorture = 0
			s.AnnoyInTemple = 0
			s.AnnoySleeping = 0
			s.AnnoyGotWage = 0
			s.AnnoyWinBattle = 0
			s.AnnoyUntrainedTime = 0
			s.AnnoyUntrained = 0
			s.AnnoyOthersLeaving = 0
			s.AnnoyJobStress = 0
			s.AnnoyQueue = 0
			s.LairEnemy = 0
			s.AnnoyLevel = 0
			s.JobsAnger = 0
		},
		Fields: []statField{
			intField("EATFOOD", func(s *Stats) *int { return &s.AnnoyEatFood }),
			intField("WILLNOTDOJOB", func(s *Stats) *int { return &s.AnnoyWillNotDoJob }),
			intField("INHAND", func(s *Stats) *int { return &s.AnnoyInHand }),
			intField("NOLAIR", func(s *Stats) *int { return &s.AnnoyNoLair }),
			intField("NOHATCHERY", func(s *Stats) *int { return &s.AnnoyNoHatchery }),
			intField("WOKENUP", func(s *Stats) *int { return &s.AnnoyWokenUp }),
			intField("STANDINGONDEADENEMY", func(s *Stats) *int { return &s.AnnoyOnDeadEnemy }),
			intField("SULKING", func(s *Stats) *int { return &s.AnnoySulking }),
			intField("NOSALARY", func(s *Stats) *int { return &s.AnnoyNoSalary }),
			intField("SLAPPED", func(s *Stats) *int { return &s.AnnoySlapped }),
			intField("STANDINGONDEADFRIEND", func(s *Stats) *int { return &s.AnnoyOnDeadFriend }),
			intField("INTORTURE", func(s *Stats) *int { return &s.AnnoyInTorture }),
			intField("INTEMPLE", func(s *Stats) *int { return &s.AnnoyInTemple }),
			intField("SLEEPING", func(s *Stats) *int { return &s.AnnoySleeping }),
			intField("GOTWAGE", func(s *Stats) *int { return &s.AnnoyGotWage }),
			intField("WINBATTLE", func(s *Stats) *int { return &s.AnnoyWinBattle }),
			pairField("UNTRAINED", func(s *Stats) *int { return &s.AnnoyUntrainedTime }, func(s *Stats) *int { return &s.AnnoyUntrained }),
			intField("OTHERSLEAVING", func(s *Stats) *int { return &s.AnnoyOthersLeaving }),
			intField("JOBSTRESS", func(s *Stats) *int { return &s.AnnoyJobStress }),
			intField("QUEUE", func(s *Stats) *int { return &s.AnnoyQueue }),
			nameField("LAIRENEMY", confparse.NameOrZero(static(lk.Creatures)),
				func(s *Stats) *int { return &s.LairEnemy }),
			intField("ANNOYLEVEL", func(s *Stats) *int { return &s.AnnoyLevel }),
			maskField("ANGERJOBS", static(AngerJobs), func(s *Stats) *int { return &s.JobsAnger }),
		},
	}
}

func sensesBlock(lk Lookups) *confparse.Block[Stats] {
	return &confparse.Block[Stats]{
		Name: "senses",
		Reset: func(s *Stats) {
			s.Hearing = 0
			s.EyeHeight = 0
			s.FieldOfView = 0
			s.EyeEffect = 0
			s.MaxAngleChange = 1
		},
		Fields: []statField{
			intField("HEARING", func(s *Stats) *int { return &s.Hearing }),
			intField("EYEHEIGHT", func(s *Stats) *int { return &s.EyeHeight }),
			intField("FIELDOFVIEW", func(s *Stats) *int { return &s.FieldOfView }),
			nameField("EYEEFFECT", confparse.NameArg(static(lk.Lenses)),
				func(s *Stats) *int { return &s.EyeEffect }),
			{Command: "MAXANGLECHANGE", Kind: confparse.Values, Args: confparse.Ints(1),
				Set: func(s *Stats, v []int) { s.MaxAngleChange = AngleUnits(v[0]) }},
		},
	}
}

func appearanceBlock() *confparse.Block[Stats] {
	return &confparse.Block[Stats]{
		Name: "appearance",
		Reset: func(s *Stats) {
			s.WalkingAnimSpeed = 1
			s.VisualRange = 1
		},
		Fields: []statField{
			intField("WALKINGANIMSPEED", func(s *Stats) *int { return &s.WalkingAnimSpeed }),
			intField("VISUALRANGE", func(s *Stats) *int { return &s.VisualRange }),
		},
	}
}

func experienceBlock(lk Lookups) *confparse.Block[Stats] {
	return &confparse.Block[Stats]{
		Name: "experience",
		Reset: func(s *Stats) {
			s.InstanceSpell = [LevelsCount]int{}
			s.InstanceLevel = [LevelsCount]int{}
			s.ToLevel = [LevelsCount]int{}
			s.GrowUp = 0
			s.GrowUpLevel = 0
			s.SleepExpSlab = 0
			s.SleepExperience = 0
			s.ExpForHitting = 0
			s.Rebirth = 0
		},
		Fields: []statField{
			listField("POWERS", confparse.NameArg(static(lk.Instances)), LevelsCount,
				func(s *Stats) []int { return s.InstanceSpell[:] }),
			listField("POWERSLEVELREQUIRED", nonNegative, LevelsCount,
				func(s *Stats) []int { return s.InstanceLevel[:] }),
			listField("LEVELSTRAINVALUES", nonNegative, LevelsCount,
				func(s *Stats) []int { return s.ToLevel[:] }),
			{Command: "GROWUP", Kind: confparse.Values,
				Args: []confparse.Arg{confparse.IntArg, confparse.NameOrZero(static(lk.Creatures)), confparse.IntArg},
				Set: func(s *Stats, v []int) {
					s.ToLevel[LevelsCount-1] = v[0]
					s.GrowUp = v[1]
					s.GrowUpLevel = v[2]
				}},
			{Command: "SLEEPEXPERINCE", Kind: confparse.Values,
				Args: []confparse.Arg{confparse.NameOrNull(static(lk.Slabs)), confparse.IntArg},
				Set: func(s *Stats, v []int) {
					s.SleepExpSlab = v[0]
					s.SleepExperience = v[1]
				}},
			intField("EXPERIENCEFORHITTING", func(s *Stats) *int { return &s.ExpForHitting }),
			intField("REBIRTH", func(s *Stats) *int { return &s.Rebirth }),
		},
	}
}

func jobsBlock() *confparse.Block[Stats] {
	return &confparse.Block[Stats]{
		Name: "jobs",
		Reset: func(s *Stats) {
			s.JobPrimary = 0
			s.JobSecondary = 0
			s.JobsNotDo = 0
			s.JobStress = 0
			s.TrainingValue = 0
			s.TrainingCost = 0
			s.ScavengeValue = 0
			s.ScavengerCost = 0
			s.ResearchValue = 0
			s.ManufactureValue = 0
			s.RealTraining = 0
		},
		Fields: []statField{
			maskField("PRIMARYJOBS", static(Jobs), func(s *Stats) *int { return &s.JobPrimary }),
			maskField("SECONDARYJOBS", static(Jobs), func(s *Stats) *int { return &s.JobSecondary }),
			maskField("NOTDOJOBS", static(Jobs), func(s *Stats) *int { return &s.JobsNotDo }),
			maskField("STRESSFULJOBS", static(Jobs), func(s *Stats) *int { return &s.JobStress }),
			intField("TRAININGVALUE", func(s *Stats) *int { return &s.TrainingValue }),
			intField("TRAININGCOST", func(s *Stats) *int { return &s.TrainingCost }),
			intField("SCAVENGEVALUE", func(s *Stats) *int { return &s.ScavengeValue }),
			intField("SCAVENGERCOST", func(s *Stats) *int { return &s.ScavengerCost }),
			intField("RESEARCHVALUE", func(s *Stats) *int { return &s.ResearchValue }),
			intField("MANUFACTUREVALUE", func(s *Stats) *int { return &s.ManufactureValue }),
			intField("REALTRAINING", func(s *Stats) *int { return &s.RealTraining }),
		},
	}
}

// modelBlocks returns the model blocks in parse order.
func modelBlocks(lk Lookups) []*confparse.Block[Stats] {
	return []*confparse.Block[Stats]{
		attributesBlock(),
		attractionBlock(lk),
		annoyanceBlock(lk),
		sensesBlock(lk),
		appearanceBlock(),
		experienceBlock(lk),
		jobsBlock(),
	}
}

// ParseModel parses a creature model file into a fresh record. Every block
// is attempted; the error joins one *confparse.BlockError per missing block.
// Blocks that are missing keep their defaults.
func ParseModel(data []byte, lk Lookups, w confparse.Warner) (Stats, error) {
	var s Stats
	var errs []error
	for _, blk := range modelBlocks(lk) {
		if err := confparse.ParseBlock(data, blk, &s, w); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return s, fmt.Errorf("creature: model blocks: %w", errors.Join(errs...))
	}
	return s, nil
}
