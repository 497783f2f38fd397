package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Health   int  // Player health
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventPlayerHit     EventKind = iota // A monster landed a hit on the player
	EventMonsterHit                     // The player landed a hit (attack sound cue)
	EventMonsterKilled                  // A monster died and awarded score
	EventBonusPickup                    // The player collected a health bonus
	EventGameOver                       // The player died; emitted once per session
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlayerHit:
		return "PlayerHit"
	case EventMonsterHit:
		return "MonsterHit"
	case EventMonsterKilled:
		return "MonsterKilled"
	case EventBonusPickup:
		return "BonusPickup"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a fire-and-forget notification produced by a tick.
type Event struct {
	Kind EventKind
	Pos  Vec2 // Where it happened, in world units
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred in this step.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
