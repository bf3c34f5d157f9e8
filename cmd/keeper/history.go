package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keepercfg/internal/storage"
)

var (
	flagHistoryFile  string
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded load runs",
	Long: `Lists the runs saved by 'keeper check --record', newest first. With
--file, lists the recorded loads of one file instead.

Examples:
  keeper history
  keeper history --file imp.cfg`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryFile, "file", "", "Show the history of one file")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of entries to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	settings := loadSettings()

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryFile != "" {
		printFileHistory(store, flagHistoryFile)
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		return
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'keeper check --record' to record one.")
		return
	}

	fmt.Printf("  %-16s  %-36s  %-5s  %-6s  %s\n", "Date", "Run", "Files", "Failed", "Warnings")
	fmt.Printf("  %-16s  %-36s  %-5s  %-6s  %s\n", "----", "---", "-----", "------", "--------")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-36s  %-5d  %-6d  %d\n",
			r.Started.Format("2006-01-02 15:04"), r.Run, r.Files, r.Failed, r.Warnings)
	}
}

func printFileHistory(store *storage.Store, file string) {
	reports, err := store.FileHistory(file, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		return
	}
	if len(reports) == 0 {
		fmt.Printf("No loads of %s recorded yet.\n", file)
		return
	}

	fmt.Printf("History - %s\n", file)
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %s\n", "Date", "Warnings", "Status")
	fmt.Printf("  %-16s  %-8s  %s\n", "----", "--------", "------")
	for _, r := range reports {
		status := "ok"
		if !r.OK {
			status = r.Error
		}
		fmt.Printf("  %-16s  %-8d  %s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Warnings, status)
	}
}
