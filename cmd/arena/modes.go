package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-arena/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all play modes",
	Long:  `Shows a list of all play modes registered in the arena.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arena play <id>' to start a mode.")
}
