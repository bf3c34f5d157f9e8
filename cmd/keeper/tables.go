package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keepercfg/internal/registry"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [id]",
	Short: "List lookup tables or print one",
	Long: `Without arguments, lists every named lookup table the parser knows.
With a table id, prints the table's keywords and their ids.

Examples:
  keeper tables
  keeper tables jobs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTables,
}

func runTables(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		printTable(args[0])
		return
	}

	tables := registry.List()
	if len(tables) == 0 {
		fmt.Println("No tables registered.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range tables {
		maxIDLen = max(maxIDLen, len(t.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "----", "-----")
	for _, t := range tables {
		fmt.Printf("  %-*s  %-5d  %s\n", maxIDLen, t.ID, t.Size, t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'keeper tables <id>' to print a table.")
}

func printTable(id string) {
	tbl, err := registry.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'keeper tables' to see available tables.")
		os.Exit(1)
	}

	maxNameLen := 4 // "Name" header
	for _, c := range tbl {
		maxNameLen = max(maxNameLen, len(c.Name))
	}
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "ID")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "--")
	for _, c := range tbl {
		fmt.Printf("  %-*s  %d\n", maxNameLen, c.Name, c.ID)
	}
}
