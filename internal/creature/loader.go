package creature

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keepercfg/internal/confparse"
	"github.com/vovakirdan/keepercfg/internal/files"
	"github.com/vovakirdan/keepercfg/internal/terrain"
)

// TypesFile is the name of the creature type list inside files.FxData.
const TypesFile = "creature.cfg"

// Loader reads creature.cfg and the model files from an install tree.
type Loader struct {
	Files   *files.Loader
	Terrain *terrain.Tables
	Log     *log.Logger
	// TypesName overrides TypesFile.
	TypesName string

	// Reports receives one entry per file read, in load order.
	Reports []FileReport
}

// FileReport summarises one file load.
type FileReport struct {
	File string
	// Model is 0 for creature.cfg.
	Model    int
	Warnings int
	Err      error
}

// countingWarner forwards warnings and counts them.
type countingWarner struct {
	w confparse.Warner
	n int
}

func (c *countingWarner) Warn(msg interface{}, keyvals ...interface{}) {
	c.n++
	c.w.Warn(msg, keyvals...)
}

func (l *Loader) report(file string, model int, w *countingWarner, err error) {
	r := FileReport{File: file, Model: model, Err: err}
	if w != nil {
		r.Warnings = w.n
	}
	l.Reports = append(l.Reports, r)
}

func (l *Loader) logger() *log.Logger {
	if l.Log == nil {
		return log.Default()
	}
	return l.Log
}

func (l *Loader) typesFile() string {
	if l.TypesName == "" {
		return TypesFile
	}
	return l.TypesName
}

func (l *Loader) tables() *terrain.Tables {
	if l.Terrain == nil {
		return terrain.Default()
	}
	return l.Terrain
}

// LoadTypes reads and parses creature.cfg.
func (l *Loader) LoadTypes() (*Config, error) {
	name := l.typesFile()
	s, err := l.Files.Load(files.FxData, name)
	if err != nil {
		err = fmt.Errorf("creature: cannot load %s: %w", name, err)
		l.report(name, 0, nil, err)
		return nil, err
	}
	defer s.Release()

	logger := l.logger().With("file", s.Name)
	logger.Debug("reading config file", "size", len(s.Data))
	w := &countingWarner{w: logger}
	cfg, err := ParseTypes(s.Data, w)
	l.report(name, 0, w, err)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Lookups returns the name tables model files resolve against.
func (l *Loader) Lookups(cfg *Config) Lookups {
	t := l.tables()
	return Lookups{
		Creatures: cfg.CreatureTable(),
		Instances: cfg.InstanceTable(),
		Rooms:     t.Rooms,
		Slabs:     t.Slabs,
		Lenses:    t.Lenses,
	}
}

// LoadModel reads and parses the model file of one creature kind. The
// returned record is usable even when err reports missing blocks.
func (l *Loader) LoadModel(cfg *Config, model int) (Stats, error) {
	name, err := cfg.ModelFile(model)
	if err != nil {
		l.report("", model, nil, err)
		return Stats{}, err
	}
	s, err := l.Files.Load(files.CrtrData, name)
	if err != nil {
		err = fmt.Errorf("creature: cannot load %s: %w", name, err)
		l.report(name, model, nil, err)
		return Stats{}, err
	}
	defer s.Release()

	logger := l.logger().With("file", s.Name)
	logger.Debug("reading config file", "size", len(s.Data), "model", model)
	w := &countingWarner{w: logger}
	st, err := ParseModel(s.Data, l.Lookups(cfg), w)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}
	l.report(name, model, w, err)
	return st, err
}

// Set is the result of LoadAll.
type Set struct {
	Config *Config
	// Stats is indexed with Index(model).
	Stats [TypesCount]Stats
	// Loaded marks the slots read from a model file.
	Loaded [TypesCount]bool
}

// LoadAll reads creature.cfg and then every model it lists. Model errors are
// joined; a kind whose file could not be read keeps DefaultStats.
func (l *Loader) LoadAll() (*Set, error) {
	l.Reports = l.Reports[:0]
	cfg, err := l.LoadTypes()
	if err != nil {
		return nil, err
	}
	set := &Set{Config: cfg}
	def := DefaultStats()
	for i := range set.Stats {
		set.Stats[i] = def
	}

	var errs []error
	for model := 1; model <= cfg.KindCount; model++ {
		st, err := l.LoadModel(cfg, model)
		if err != nil {
			errs = append(errs, err)
			if st == (Stats{}) {
				continue
			}
		}
		set.Stats[Index(model)] = st
		set.Loaded[Index(model)] = true
	}
	return set, errors.Join(errs...)
}
