package creature

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/keepercfg/internal/confparse"
)

// InstanceInfo holds the timing of one creature instance (attack, spell or
// action) as read from an [instanceN] block.
type InstanceInfo struct {
	Name            string `yaml:"name"`
	Time            int    `yaml:"time"`
	ActionTime      int    `yaml:"action_time"`
	ResetTime       int    `yaml:"reset_time"`
	FPTime          int    `yaml:"fp_time"`
	FPActionTime    int    `yaml:"fp_action_time"`
	FPResetTime     int    `yaml:"fp_reset_time"`
	ForceVisibility int    `yaml:"force_visibility"`
}

// Config is the content of creature.cfg. Slots beyond the counts are always
// empty.
type Config struct {
	KindCount       int
	InstanceCount   int
	JobCount        int
	AngerJobCount   int
	AttackPrefCount int

	// KindNames[i] is the name of creature model i+1.
	KindNames [TypesMax]string
	// Instances[i] describes instance i.
	Instances [InstancesMax]InstanceInfo
}

// CreatureTable maps creature names to model ids, starting at 1.
func (c *Config) CreatureTable() confparse.NamedTable {
	t := make(confparse.NamedTable, 0, c.KindCount)
	for i := 0; i < c.KindCount && i < TypesMax; i++ {
		t = append(t, confparse.NamedCommand{Name: c.KindNames[i], ID: i + 1})
	}
	return t
}

// InstanceTable maps instance names to instance ids, starting at 0.
func (c *Config) InstanceTable() confparse.NamedTable {
	t := make(confparse.NamedTable, 0, c.InstanceCount)
	for i := 0; i < c.InstanceCount && i < InstancesMax; i++ {
		t = append(t, confparse.NamedCommand{Name: c.Instances[i].Name, ID: i})
	}
	return t
}

// KindName returns the name of a creature model, or "" when the model is
// outside 1..KindCount.
func (c *Config) KindName(model int) string {
	if model < 1 || model > c.KindCount || model > TypesMax {
		return ""
	}
	return c.KindNames[model-1]
}

// ModelFile returns the model file name for a creature model: the lower-case
// kind name with a .cfg suffix.
func (c *Config) ModelFile(model int) (string, error) {
	name := c.KindName(model)
	if name == "" {
		return "", fmt.Errorf("creature: no config file name for model %d", model)
	}
	return strings.ToLower(name) + ".cfg", nil
}

func bounded(n int) confparse.Arg {
	return confparse.Arg{Kind: confparse.Int, Bounded: true, Min: 1, Max: n}
}

var commonBlock = confparse.Block[Config]{
	Name: "common",
	Reset: func(c *Config) {
		c.KindCount = 1
		c.InstanceCount = 1
		c.JobCount = 1
		c.AngerJobCount = 1
		c.AttackPrefCount = 1
		c.KindNames = [TypesMax]string{}
	},
	Fields: []confparse.Field[Config]{
		{Command: "CREATURES", Kind: confparse.Words, Min: 1, Max: TypesMax,
			SetWords: func(c *Config, words []string) {
				c.KindNames = [TypesMax]string{}
				copy(c.KindNames[:], words)
				c.KindCount = len(words)
			}},
		{Command: "INSTANCESCOUNT", Kind: confparse.Values, Args: []confparse.Arg{bounded(InstancesMax)},
			Set: func(c *Config, v []int) { c.InstanceCount = v[0] }},
		{Command: "JOBSCOUNT", Kind: confparse.Values, Args: []confparse.Arg{bounded(InstancesMax)},
			Set: func(c *Config, v []int) { c.JobCount = v[0] }},
		{Command: "ANGERJOBSCOUNT", Kind: confparse.Values, Args: []confparse.Arg{bounded(InstancesMax)},
			Set: func(c *Config, v []int) { c.AngerJobCount = v[0] }},
		{Command: "ATTACKPREFERENCESCOUNT", Kind: confparse.Values, Args: []confparse.Arg{bounded(InstancesMax)},
			Set: func(c *Config, v []int) { c.AttackPrefCount = v[0] }},
	},
}

func instanceInt(command string, set func(*InstanceInfo, int)) confparse.Field[InstanceInfo] {
	return confparse.Field[InstanceInfo]{
		Command: command,
		Kind:    confparse.Values,
		Args:    confparse.Ints(1),
		Set:     func(in *InstanceInfo, v []int) { set(in, v[0]) },
	}
}

func instanceBlock(i int) *confparse.Block[InstanceInfo] {
	return &confparse.Block[InstanceInfo]{
		Name:  fmt.Sprintf("instance%d", i),
		Reset: func(in *InstanceInfo) { *in = InstanceInfo{} },
		Fields: []confparse.Field[InstanceInfo]{
			{Command: "NAME", Kind: confparse.Words, Min: 1,
				SetWords: func(in *InstanceInfo, words []string) {
					if len(words) > 0 {
						in.Name = words[0]
					}
				}},
			instanceInt("TIME", func(in *InstanceInfo, v int) { in.Time = v }),
			instanceInt("ACTIONTIME", func(in *InstanceInfo, v int) { in.ActionTime = v }),
			instanceInt("RESETTIME", func(in *InstanceInfo, v int) { in.ResetTime = v }),
			instanceInt("FPTIME", func(in *InstanceInfo, v int) { in.FPTime = v }),
			instanceInt("FPACTIONTIME", func(in *InstanceInfo, v int) { in.FPActionTime = v }),
			instanceInt("FPRESETTIME", func(in *InstanceInfo, v int) { in.FPResetTime = v }),
			instanceInt("FORCEVISIBILITY", func(in *InstanceInfo, v int) { in.ForceVisibility = v }),
		},
	}
}

// ParseTypes parses the content of creature.cfg. A missing [common] block
// is an error and leaves the instances unparsed, since their count comes
// from it. Missing [instanceN] blocks are only warned about.
func ParseTypes(data []byte, w confparse.Warner) (*Config, error) {
	cfg := &Config{}
	if err := confparse.ParseBlock(data, &commonBlock, cfg, w); err != nil {
		return cfg, fmt.Errorf("creature: common blocks: %w", err)
	}
	for i := 0; i < cfg.InstanceCount; i++ {
		// A missing block keeps the zeroed record.
		_ = confparse.ParseBlock(data, instanceBlock(i), &cfg.Instances[i], w)
	}
	return cfg, nil
}
