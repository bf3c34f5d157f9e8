// keeper inspects the creature configuration of a dungeon keeper install
// tree and evaluates the mouse pointer the game would show.
//
// Usage:
//
//	keeper check              - Load every creature file and report problems
//	keeper dump <creature>    - Print one creature's stats as YAML
//	keeper tables [id]        - List lookup tables or print one
//	keeper cursor <scenario>  - Evaluate the pointer for a YAML scenario
//	keeper browse             - Browse creatures in the terminal
//	keeper history            - Show recorded load runs
//
// Global flags:
//
//	--config <path>     - Settings file (default: search order, then embedded)
//	--data <dir>        - Install tree root, overrides data_dir
//	--log-level <level> - debug, info, warn or error
//	--db <path>         - History database, overrides db_path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/keepercfg/internal/config"
	"github.com/vovakirdan/keepercfg/internal/creature"
	"github.com/vovakirdan/keepercfg/internal/logging"
	"github.com/vovakirdan/keepercfg/internal/terrain"
)

var (
	// Global flags
	flagConfig   string
	flagDataDir  string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keeper",
	Short: "Keeper - inspect creature configs and pointer logic",
	Long: `Keeper reads the creature configuration files of a dungeon keeper
install tree, reports what it could not parse, and lets you browse the
resulting stats.

Available commands:
  check    - Load everything and print a per-file report
  dump     - Print one creature's stats as YAML
  tables   - List the named lookup tables
  cursor   - Evaluate the mouse pointer for a scenario
  browse   - Interactive creature browser with pointer playground
  history  - Recorded load runs

Examples:
  keeper check --data ~/keeperfx
  keeper dump imp
  keeper tables rooms
  keeper cursor hover.yaml
  keeper browse`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "Install tree root (overrides data_dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides db_path)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(cursorCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadSettings reads the settings and applies the global flags.
func loadSettings() config.Settings {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	if flagDataDir != "" {
		settings.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		settings.Logging.Level = flagLogLevel
	}
	if flagDBPath != "" {
		settings.DBPath = flagDBPath
	}
	return settings
}

// newLoader builds a creature loader for the settings.
func newLoader(settings config.Settings, logger *log.Logger) *creature.Loader {
	fl, err := settings.NewFileLoader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tables, err := terrain.Load(settings.TerrainFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading terrain tables: %v\n", err)
		os.Exit(1)
	}
	return &creature.Loader{
		Files:     fl,
		Terrain:   tables,
		Log:       logger,
		TypesName: settings.CreatureFile,
	}
}

// loadSet loads the whole creature set, exiting when creature.cfg itself
// cannot be read. Model file errors are logged and the set is still
// returned.
func loadSet(settings config.Settings) (*creature.Set, *creature.Loader, *log.Logger) {
	logger := logging.New(settings.Logging)
	loader := newLoader(settings, logger)

	set, err := loader.LoadAll()
	if set == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("some creature files failed to load", "err", err)
	}
	return set, loader, logger
}

// findModel resolves a creature by name or model number.
func findModel(cfg *creature.Config, arg string) (int, bool) {
	if id, ok := cfg.CreatureTable().Lookup(arg); ok {
		return id, true
	}
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err == nil && cfg.KindName(n) != "" {
		return n, true
	}
	return 0, false
}
