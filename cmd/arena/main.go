// arena is a terminal monster-survival game.
//
// Usage:
//
//	arena play [mode]        - Open the menu, or start a mode directly
//	arena modes              - List play modes
//	arena scores [mode]      - Show the run history of a mode
//	arena leaderboard        - Show the top-five table
//	arena config             - Print the effective arena config
//	arena serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set run history path (default: ~/.arena/scores.db)
//	--highscores <path>   - Set top-five file (default: ~/.arena/highscores.txt)
//	--name <player>       - Name recorded with scores
//	--config <path>       - Custom arena config (YAML or TOML)
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/monster-arena/internal/arena"
	"github.com/vovakirdan/monster-arena/internal/config"
	"github.com/vovakirdan/monster-arena/internal/highscore"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagHighscorePath string
	flagName          string
	flagConfig        string
	flagDifficulty    string
	flagLogLevel      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Monster Arena - survive the monsters in your terminal",
	Long: `Monster Arena is a top-down survival game for the terminal.
Monsters spawn ever faster and chase you; fight them off, grab the
health bonuses they drop and survive as long as you can.

Available commands:
  play         - Open the main menu, or start a mode directly
  modes        - Show all play modes
  scores       - View the run history of a mode
  leaderboard  - View the top-five table
  config       - Print the effective arena config
  serve        - Start SSH server for remote play

Examples:
  arena play
  arena play survival --difficulty hard
  arena scores arena
  arena serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighscorePath, "highscores", "~/.arena/"+highscore.DefaultFile, "Path to top-five highscore file")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", highscore.DefaultName, "Player name recorded with scores")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup validates the global flags and hands game settings to the modes.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadArena(flagConfig); err != nil {
			return err
		}
	}

	arena.SetConfigPath(flagConfig)
	arena.SetDifficultyPreset(flagDifficulty)
	return nil
}
