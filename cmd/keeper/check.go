package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keepercfg/internal/creature"
	"github.com/vovakirdan/keepercfg/internal/storage"
)

var flagRecord bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every creature file and report problems",
	Long: `Loads creature.cfg and the model file of every creature kind it lists,
then prints one line per file with its warning count and error.

With --record the report and a YAML snapshot of every loaded creature are
written to the history database, and creatures whose stats differ from the
previous snapshot are listed.

Examples:
  keeper check
  keeper check --data ~/keeperfx --record`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the report and stats snapshots to the history database")
}

func runCheck(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	set, loader, _ := loadSet(settings)

	fmt.Printf("Creature kinds: %d, instances: %d\n", set.Config.KindCount, set.Config.InstanceCount)
	fmt.Println()

	// Calculate column widths
	maxFileLen := 4 // "File" header
	for _, r := range loader.Reports {
		maxFileLen = max(maxFileLen, len(r.File))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxFileLen, "File", "Warnings", "Status")
	fmt.Printf("  %-*s  %-8s  %s\n", maxFileLen, "----", "--------", "------")

	failed := 0
	for _, r := range loader.Reports {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
			failed++
		}
		fmt.Printf("  %-*s  %-8d  %s\n", maxFileLen, r.File, r.Warnings, status)
	}

	if flagRecord {
		recordRun(settings.DBPath, set, loader.Reports)
	}

	if failed > 0 {
		fmt.Println()
		fmt.Printf("%d of %d files failed.\n", failed, len(loader.Reports))
		os.Exit(1)
	}
}

// recordRun saves the reports and stats snapshots of one check.
func recordRun(dbPath string, set *creature.Set, reports []creature.FileReport) {
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run := uuid.NewString()
	for _, r := range reports {
		rec := storage.LoadReport{
			Run:      run,
			File:     r.File,
			Model:    r.Model,
			OK:       r.Err == nil,
			Warnings: r.Warnings,
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		if _, err := store.SaveReport(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	var changed []string
	for model := 1; model <= set.Config.KindCount; model++ {
		i := creature.Index(model)
		if !set.Loaded[i] {
			continue
		}
		data, err := yaml.Marshal(set.Stats[i])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot encode stats of model %d: %v\n", model, err)
			continue
		}
		name := set.Config.KindName(model)

		prev, err := store.LatestSnapshot(model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else if prev != nil && prev.YAML != string(data) {
			changed = append(changed, name)
		}

		if _, err := store.SaveSnapshot(storage.Snapshot{Model: model, Name: name, YAML: string(data)}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	fmt.Println()
	fmt.Printf("Recorded run %s.\n", run)
	if len(changed) > 0 {
		fmt.Println("Stats changed since the last record:")
		for _, name := range changed {
			fmt.Printf("  %s\n", name)
		}
	}
}
