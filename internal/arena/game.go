package arena

import (
	"github.com/vovakirdan/monster-arena/internal/config"
	"github.com/vovakirdan/monster-arena/internal/core"
	"github.com/vovakirdan/monster-arena/internal/registry"
)

// Mode IDs, used for the registry and for score storage.
const (
	ModeSurvival = "survival"
	ModeArena    = "arena"
)

// hitFlashDuration is how long the player glyph stays red after a hit.
const hitFlashDuration = 0.2

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names reset to the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a World to the registry's Game interface.
// Survival mode spawns monsters ever faster; Arena mode keeps the spawn
// interval fixed for the whole session.
type Game struct {
	mode     string
	title    string
	world    *World
	runtime  core.RuntimeConfig
	hitFlash float64 // Seconds the player stays highlighted after a hit
}

// New creates a game for the given mode.
func New(mode string) *Game {
	title := "Survival Mode"
	if mode == ModeArena {
		title = "Arena Mode"
	}
	return &Game{mode: mode, title: title}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadArena(configPath)
	if err != nil {
		cfg = config.DefaultArenaConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	if g.mode == ModeArena {
		cfg.Difficulty.Enabled = false
	}

	g.ResetWith(cfg, runtime.Seed)
}

// ResetWith starts a fresh session with an explicit config.
func (g *Game) ResetWith(cfg config.ArenaConfig, seed int64) {
	if g.world == nil {
		g.world = NewWorld(cfg, seed)
	} else {
		g.world.Reset(cfg, seed)
	}
	g.hitFlash = 0
}

// Step advances the simulation by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	res := g.world.Advance(dt, in)

	if !res.State.Paused {
		g.hitFlash = max(0, g.hitFlash-dt)
	}
	if res.Has(core.EventPlayerHit) {
		g.hitFlash = hitFlashDuration
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.world.State()
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// Register the modes with the registry
func init() {
	registry.Register(ModeSurvival, func() registry.Game {
		return New(ModeSurvival)
	})
	registry.Register(ModeArena, func() registry.Game {
		return New(ModeArena)
	})
}
