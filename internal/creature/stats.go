package creature

// Stats is the balance record of one creature model.
type Stats struct {
	// [attributes]
	Health           int  `yaml:"health"`
	HealRequirement  int  `yaml:"heal_requirement"`
	HealThreshold    int  `yaml:"heal_threshold"`
	Strength         int  `yaml:"strength"`
	Armour           int  `yaml:"armour"`
	Dexterity        int  `yaml:"dexterity"`
	Fear             int  `yaml:"fear"`
	Defence          int  `yaml:"defence"`
	Luck             int  `yaml:"luck"`
	Recovery         int  `yaml:"recovery"`
	HungerRate       int  `yaml:"hunger_rate"`
	HungerFill       int  `yaml:"hunger_fill"`
	LairSize         int  `yaml:"lair_size"`
	HurtByLava       int  `yaml:"hurt_by_lava"`
	BaseSpeed        int  `yaml:"base_speed"`
	GoldHold         int  `yaml:"gold_hold"`
	SizeXY           int  `yaml:"size_xy"`
	SizeYZ           int  `yaml:"size_yz"`
	AttackPreference int  `yaml:"attack_preference"`
	Pay              int  `yaml:"pay"`
	HeroVsKeeperCost int  `yaml:"hero_vs_keeper_cost"`
	SlapsToKill      int  `yaml:"slaps_to_kill"`
	DamageToBoulder  int  `yaml:"damage_to_boulder"`
	ThingSizeXY      int  `yaml:"thing_size_xy"`
	ThingSizeYZ      int  `yaml:"thing_size_yz"`
	Bleeds           bool `yaml:"bleeds"`
	AffectedByWind   bool `yaml:"affected_by_wind"`
	ImmuneToGas      bool `yaml:"immune_to_gas"`
	Humanoid         bool `yaml:"humanoid"`
	PissOnDead       bool `yaml:"piss_on_dead"`
	Flying           bool `yaml:"flying"`
	SeeInvisible     bool `yaml:"see_invisible"`
	GoLockedDoors    bool `yaml:"go_locked_doors"`

	// [attraction]
	EntranceRooms    [EntranceRoomsMax]int `yaml:"entrance_rooms,flow"`
	EntranceSlabsReq [EntranceRoomsMax]int `yaml:"entrance_slabs_req,flow"`
	EntranceForce    int                   `yaml:"entrance_force"`
	ScavengeRequire  int                   `yaml:"scavenge_require"`
	TortureTime      int                   `yaml:"torture_time"`

	// [annoyance]
	AnnoyEatFood       int `yaml:"annoy_eat_food"`
	AnnoyWillNotDoJob  int `yaml:"annoy_will_not_do_job"`
	AnnoyInHand        int `yaml:"annoy_in_hand"`
	AnnoyNoLair        int `yaml:"annoy_no_lair"`
	AnnoyNoHatchery    int `yaml:"annoy_no_hatchery"`
	AnnoyWokenUp       int `yaml:"annoy_woken_up"`
	AnnoyOnDeadEnemy   int `yaml:"annoy_on_dead_enemy"`
	AnnoySulking       int `yaml:"annoy_sulking"`
	AnnoyNoSalary      int `yaml:"annoy_no_salary"`
	AnnoySlapped       int `yaml:"annoy_slapped"`
	AnnoyOnDeadFriend  int `yaml:"annoy_on_dead_friend"`
	AnnoyInTorture     int `yaml:"annoy_in_torture"`
	AnnoyInTemple      int `yaml:"annoy_in_temple"`
	AnnoySleeping      int `yaml:"annoy_sleeping"`
	AnnoyGotWage       int `yaml:"annoy_got_wage"`
	AnnoyWinBattle     int `yaml:"annoy_win_battle"`
	AnnoyUntrainedTime int `yaml:"annoy_untrained_time"`
	AnnoyUntrained     int `yaml:"annoy_untrained"`
	AnnoyOthersLeaving int `yaml:"annoy_others_leaving"`
	AnnoyJobStress     int `yaml:"annoy_job_stress"`
	AnnoyQueue         int `yaml:"annoy_queue"`
	LairEnemy          int `yaml:"lair_enemy"`
	AnnoyLevel         int `yaml:"annoy_level"`
	JobsAnger          int `yaml:"jobs_anger"`

	// [senses]
	Hearing        int `yaml:"hearing"`
	EyeHeight      int `yaml:"eye_height"`
	FieldOfView    int `yaml:"field_of_view"`
	EyeEffect      int `yaml:"eye_effect"`
	MaxAngleChange int `yaml:"max_angle_change"`

	// [appearance]
	WalkingAnimSpeed int `yaml:"walking_anim_speed"`
	VisualRange      int `yaml:"visual_range"`

	// [experience]
	InstanceSpell   [LevelsCount]int `yaml:"instance_spell,flow"`
	InstanceLevel   [LevelsCount]int `yaml:"instance_level,flow"`
	ToLevel         [LevelsCount]int `yaml:"to_level,flow"`
	GrowUp          int              `yaml:"grow_up"`
	GrowUpLevel     int              `yaml:"grow_up_level"`
	SleepExpSlab    int              `yaml:"sleep_exp_slab"`
	SleepExperience int              `yaml:"sleep_experience"`
	ExpForHitting   int              `yaml:"exp_for_hitting"`
	Rebirth         int              `yaml:"rebirth"`

	// [jobs]
	JobPrimary       int `yaml:"job_primary"`
	JobSecondary     int `yaml:"job_secondary"`
	JobsNotDo        int `yaml:"jobs_not_do"`
	JobStress        int `yaml:"job_stress"`
	TrainingValue    int `yaml:"training_value"`
	TrainingCost     int `yaml:"training_cost"`
	ScavengeValue    int `yaml:"scavenge_value"`
	ScavengerCost    int `yaml:"scavenger_cost"`
	ResearchValue    int `yaml:"research_value"`
	ManufactureValue int `yaml:"manufacture_value"`
	RealTraining     int `yaml:"real_training"`
}

// DefaultStats returns the record an all-comment model file produces.
func DefaultStats() Stats {
	var s Stats
	for _, blk := range modelBlocks(Lookups{}) {
		blk.Reset(&s)
	}
	return s
}

// Index maps a model id onto the stats array.
func Index(model int) int {
	i := model % TypesCount
	if i < 0 {
		i += TypesCount
	}
	return i
}

// AngleUnits converts degrees to engine angle units (2048 per turn).
func AngleUnits(degrees int) int {
	return (degrees << 11) / 360
}
