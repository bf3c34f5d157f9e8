package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keepercfg/internal/logging"
	"github.com/vovakirdan/keepercfg/internal/platform/tui"
	"github.com/vovakirdan/keepercfg/internal/terrain"
	"github.com/vovakirdan/keepercfg/internal/view"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor <scenario.yaml>",
	Short: "Evaluate the mouse pointer for a scenario",
	Long: `Reads a YAML scenario describing the keeper's view, hand and the
creature under it, and prints the pointer the game would show. Use "-" to
read the scenario from stdin.

Scenario keys (all optional):
  view, mode, work_state, cursor (none, pickaxe, door-key, hand), turn
  mouse: {x, y}, thing, holding, possessable, queryable
  can_possess, can_query, subtile_high, hand_busy_until
  room, trap, door (name or id), status_panel, small_map_hidden
  battle_creature, castable, gui_busy, big_pointer, possess_arrow
  fading_from_map

Examples:
  keeper cursor hover.yaml
  echo 'thing: 3' | keeper cursor -`,
	Args: cobra.ExactArgs(1),
	Run:  runCursor,
}

func runCursor(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	logger := logging.New(settings.Logging)

	var data []byte
	var err error
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scenario: %v\n", err)
		os.Exit(1)
	}

	scenario, err := view.ParseScenario(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if settings.Features.BigPointer {
		scenario.BigPointer = true
	}

	tables, err := terrain.Load(settings.TerrainFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading terrain tables: %v\n", err)
		os.Exit(1)
	}
	frame, err := scenario.Frame(view.ScenarioNames{
		Rooms: tables.Rooms,
		Traps: tables.Traps,
		Doors: tables.Doors,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	frame.Log = logger

	ptr := view.PointerGraphic(frame)
	fmt.Printf("view:       %s\n", frame.Player.ViewType)
	fmt.Printf("work state: %s\n", frame.Player.WorkState)
	fmt.Printf("pointer:    %s\n", tui.DescribePointer(ptr))
}
