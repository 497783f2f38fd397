package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-arena/internal/registry"
	"github.com/vovakirdan/monster-arena/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagPlayer      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the run history",
	Long: `Display the best runs of a play mode from the run history database.
Without a mode, shows a summary of every mode played so far.

Examples:
  arena scores
  arena scores survival
  arena scores arena --limit 20
  arena scores survival --clear
  arena scores --player alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the given mode")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the latest runs of one player instead")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagPlayer != "" {
		return printPlayer(store, flagPlayer)
	}

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a mode")
		}
		return printSummary(store)
	}

	mode := args[0]
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'arena modes' to see available modes", mode)
	}

	if flagClear {
		if err := store.ClearScores(mode); err != nil {
			return err
		}
		fmt.Printf("Cleared run history for %s.\n", mode)
		return nil
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arena play %s' to set the first score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-15s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-15s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-15s  %-8d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	best, err := store.HighScore(mode)
	if err != nil {
		return err
	}
	stats, err := store.ModeStats(mode)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  |  Best: %d  |  Average: %.1f  |  Total: %d\n", stats.RunsCount, best, stats.AvgScore, stats.TotalScore)
	return nil
}

func printPlayer(store *storage.Store, player string) error {
	runs, err := store.PlayerScores(player, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Latest runs - %s\n", player)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-8s  %s\n", "Mode", "Score", "Date")
	fmt.Printf("  %-10s  %-8s  %s\n", "----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-8d  %s\n", r.Mode, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllModeStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Mode", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, mode := range modes {
		s := stats[mode]
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.1f  %s\n",
			mode, s.RunsCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
