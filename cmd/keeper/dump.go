package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keepercfg/internal/creature"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <creature>",
	Short: "Print one creature's stats as YAML",
	Long: `Loads the install tree and prints the stats of one creature kind as
YAML. The creature is given by name (case-insensitive) or model number.

Examples:
  keeper dump imp
  keeper dump 3`,
	Args: cobra.ExactArgs(1),
	Run:  runDump,
}

// dumpDoc is the document printed by dump.
type dumpDoc struct {
	Model  int            `yaml:"model"`
	Name   string         `yaml:"name"`
	File   string         `yaml:"file"`
	Loaded bool           `yaml:"loaded"`
	Stats  creature.Stats `yaml:"stats"`
}

func runDump(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	set, _, _ := loadSet(settings)

	model, ok := findModel(set.Config, args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown creature %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'keeper tables' or 'keeper check' to see creature kinds.")
		os.Exit(1)
	}

	file, _ := set.Config.ModelFile(model)
	doc := dumpDoc{
		Model:  model,
		Name:   set.Config.KindName(model),
		File:   file,
		Loaded: set.Loaded[creature.Index(model)],
		Stats:  set.Stats[creature.Index(model)],
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding stats: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
