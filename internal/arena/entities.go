package arena

import (
	"github.com/vovakirdan/monster-arena/internal/config"
	"github.com/vovakirdan/monster-arena/internal/core"
)

// MonsterType determines a monster's speed and starting health.
type MonsterType int

const (
	MonsterBasic MonsterType = iota
	MonsterFast
	MonsterTank
)

// String returns a human-readable name for the monster type.
func (t MonsterType) String() string {
	switch t {
	case MonsterBasic:
		return "Basic"
	case MonsterFast:
		return "Fast"
	case MonsterTank:
		return "Tank"
	default:
		return "Unknown"
	}
}

// statsFor returns the configured stats for a monster type.
func statsFor(cfg config.MonstersConfig, t MonsterType) config.MonsterStats {
	switch t {
	case MonsterFast:
		return cfg.Fast
	case MonsterTank:
		return cfg.Tank
	default:
		return cfg.Basic
	}
}

// Player is the single user-controlled entity.
type Player struct {
	Pos    core.Vec2
	Health int
	Alive  bool
}

// Monster chases the player and deals contact damage.
type Monster struct {
	Pos    core.Vec2
	Health int
	Alive  bool
	Type   MonsterType

	// Knockback state; while Hit is set the monster is pushed along
	// KnockbackDir instead of chasing.
	Hit          bool
	HitTimer     float64
	KnockbackDir core.Vec2
}

// kill marks the monster dead. It reports true only on the first call, so
// the kill reward is paid exactly once.
func (m *Monster) kill() bool {
	if !m.Alive || m.Health > 0 {
		return false
	}
	m.Alive = false
	return true
}

// Bonus is a timed health pickup.
type Bonus struct {
	Pos    core.Vec2
	Active bool
	Timer  float64 // Seconds until it expires
}
