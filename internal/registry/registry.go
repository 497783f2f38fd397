// Package registry maps play-mode IDs to factories. Modes register
// themselves from init(), so the front-ends and the CLI can list and
// start them without importing each mode by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/monster-arena/internal/core"
)

// Game is one playable mode as seen by the front-end.
// Implementations hold simulation state only; timing, key mapping and
// terminal output belong to the platform.
type Game interface {
	// ID is the stable mode key used by the CLI and score storage.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a new session. Called before every run.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by dt seconds of real time with the
	// actions held during this frame.
	Step(dt float64, in core.InputFrame) core.StepResult

	// Render draws the session into dst.
	Render(dst *core.Screen)

	// State returns the current summary (score, health, game over, paused).
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, not yet reset, mode instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create returns a new instance of the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
