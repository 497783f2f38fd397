package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-arena/internal/highscore"
	"github.com/vovakirdan/monster-arena/internal/platform/tui"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top-five table",
	Long: `Display the top-five highscore table shared by all play modes.

Examples:
  arena leaderboard
  arena leaderboard --highscores ./highscores.txt`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func runLeaderboard(_ *cobra.Command, _ []string) error {
	path, err := tui.ExpandHome(flagHighscorePath)
	if err != nil {
		return err
	}

	table, err := highscore.Load(path)
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if table.Len() == 0 {
		fmt.Println("No highscores yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-15s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-15s  %s\n", "----", "----", "-----")
	for i, e := range table.Entries() {
		fmt.Printf("  %-4d  %-15s  %d\n", i+1, e.Name, e.Score)
	}
	return nil
}
