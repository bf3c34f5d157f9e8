package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keepercfg/internal/creature"
	"github.com/vovakirdan/keepercfg/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse creatures in the terminal",
	Long: `Loads the install tree and opens an interactive table of creature
kinds with a detail panel for the selected one.

The pointer panel runs the pointer logic every game turn with the selected
creature under the keeper's hand.

Controls:
  Up/Down, j/k   - Select creature
  v              - Next view type
  Tab/Shift+Tab  - Next/previous work state
  c              - Next hand tool
  g              - Grab or drop the creature
  p              - Toggle whether the creature can be possessed
  b              - Toggle the animated possession pointer
  Space          - Pause turns
  r              - Reload the config files
  ?              - More keys
  q/Esc          - Quit`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	settings := loadSettings()
	set, loader, logger := loadSet(settings)
	store := creature.NewStore()
	store.Replace(set)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The alt screen owns the terminal from here on
	quiet := logger.With()
	quiet.SetLevel(log.FatalLevel)
	loader.Log = quiet

	model := tui.NewBrowserModel(store, quiet, width, height).
		WithReload(func() error { return store.Reload(loader) })
	model.Playground().Game.BigPointer = settings.Features.BigPointer
	if err := tui.RunBrowser(model); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}
