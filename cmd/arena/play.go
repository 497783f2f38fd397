package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/monster-arena/internal/core"
	"github.com/vovakirdan/monster-arena/internal/platform/tui"
	"github.com/vovakirdan/monster-arena/internal/registry"
	"github.com/vovakirdan/monster-arena/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the arena",
	Long: `Open the main menu, or start a play mode directly.

Modes:
  survival - Monsters spawn faster the longer you survive
  arena    - Monsters spawn at a fixed rate

Controls:
  W A S D / Arrows  - Move
  Space             - Attack
  P                 - Pause
  Enter             - Confirm
  Esc               - Back
  Ctrl+C            - Quit

Difficulty options:
  easy   - Spawn rate ramps up at half speed
  normal - Default ramp
  hard   - Spawn rate ramps up at double speed
  fixed  - No ramp, stays at the initial spawn interval

Examples:
  arena play
  arena play survival
  arena play arena --name alice
  arena play survival --difficulty hard --seed 42
  arena play --config ./my-arena.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
		if !registry.Exists(mode) {
			return fmt.Errorf("unknown mode %q, run 'arena modes' to see available modes", mode)
		}
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "arena")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	highscorePath, err := tui.ExpandHome(flagHighscorePath)
	if err != nil {
		return err
	}

	// The game still works without the run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.AppOptions{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player:    flagName,
		StartMode: mode,
		Recorder:  tui.NewScoreRecorder(highscorePath, store),
		Logger:    logger,
	})
}
