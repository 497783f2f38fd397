// Package config provides YAML/TOML-based arena configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ArenaConfig contains all tunables for the monster arena.
type ArenaConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Monsters   MonstersConfig   `yaml:"monsters" toml:"monsters"`
	Combat     CombatConfig     `yaml:"combat" toml:"combat"`
	Bonuses    BonusesConfig    `yaml:"bonuses" toml:"bonuses"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the arena bounds in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines player movement, health and collision size.
type PlayerConfig struct {
	Speed      float64 `yaml:"speed" toml:"speed"` // Units per second per held axis
	MaxHealth  int     `yaml:"max_health" toml:"max_health"`
	Scale      float64 `yaml:"scale" toml:"scale"`
	SpriteSize float64 `yaml:"sprite_size" toml:"sprite_size"`
	Confine    bool    `yaml:"confine" toml:"confine"` // Keep the player inside the world bounds
}

// MonstersConfig defines monster capacity, contact damage and per-type stats.
type MonstersConfig struct {
	Max                   int          `yaml:"max" toml:"max"`
	Scale                 float64      `yaml:"scale" toml:"scale"`
	SpriteSize            float64      `yaml:"sprite_size" toml:"sprite_size"`
	ContactDamage         int          `yaml:"contact_damage" toml:"contact_damage"`
	AttackCooldown        float64      `yaml:"attack_cooldown" toml:"attack_cooldown"`                 // Global, shared by all monsters
	InitialAttackCooldown float64      `yaml:"initial_attack_cooldown" toml:"initial_attack_cooldown"` // Grace period after reset
	Basic                 MonsterStats `yaml:"basic" toml:"basic"`
	Fast                  MonsterStats `yaml:"fast" toml:"fast"`
	Tank                  MonsterStats `yaml:"tank" toml:"tank"`
}

// MonsterStats defines one monster type.
type MonsterStats struct {
	Speed  float64 `yaml:"speed" toml:"speed"`
	Health int     `yaml:"health" toml:"health"`
	Weight int     `yaml:"weight" toml:"weight"` // Relative spawn weight
}

// CombatConfig defines the player's attack.
type CombatConfig struct {
	Damage            int     `yaml:"damage" toml:"damage"`
	Cooldown          float64 `yaml:"cooldown" toml:"cooldown"`
	KnockbackSpeed    float64 `yaml:"knockback_speed" toml:"knockback_speed"`
	KnockbackDuration float64 `yaml:"knockback_duration" toml:"knockback_duration"`
	KillReward        int     `yaml:"kill_reward" toml:"kill_reward"`
}

// BonusesConfig defines health pickups.
type BonusesConfig struct {
	Max        int     `yaml:"max" toml:"max"`
	Scale      float64 `yaml:"scale" toml:"scale"`
	SpriteSize float64 `yaml:"sprite_size" toml:"sprite_size"`
	Heal       int     `yaml:"heal" toml:"heal"`
	Lifetime   float64 `yaml:"lifetime" toml:"lifetime"`
	Interval   float64 `yaml:"interval" toml:"interval"` // Seconds between random spawns
}

// DifficultyConfig defines how the monster spawn interval evolves.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"`
	InitialInterval float64 `yaml:"initial_interval" toml:"initial_interval"`
	ShrinkRate      float64 `yaml:"shrink_rate" toml:"shrink_rate"`   // Seconds removed from the interval per second played
	MinInterval     float64 `yaml:"min_interval" toml:"min_interval"` // 0 disables the floor
}

// PlayerRadius returns the player's collision radius.
func (c ArenaConfig) PlayerRadius() float64 {
	return c.Player.SpriteSize * c.Player.Scale / 2
}

// MonsterRadius returns the collision radius shared by all monsters.
func (c ArenaConfig) MonsterRadius() float64 {
	return c.Monsters.SpriteSize * c.Monsters.Scale / 2
}

// BonusRadius returns the collision radius of a bonus pickup.
func (c ArenaConfig) BonusRadius() float64 {
	return c.Bonuses.SpriteSize * c.Bonuses.Scale / 2
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid arena config")

// Validate checks the config for values the simulation cannot run with.
func (c ArenaConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %gx%g", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player.max_health must be positive", ErrInvalidConfig)
	case c.Monsters.Max < 0 || c.Bonuses.Max < 0:
		return fmt.Errorf("%w: capacities must not be negative", ErrInvalidConfig)
	case c.Monsters.Basic.Weight < 0 || c.Monsters.Fast.Weight < 0 || c.Monsters.Tank.Weight < 0:
		return fmt.Errorf("%w: spawn weights must not be negative", ErrInvalidConfig)
	case c.Monsters.Basic.Weight+c.Monsters.Fast.Weight+c.Monsters.Tank.Weight == 0:
		return fmt.Errorf("%w: at least one spawn weight must be positive", ErrInvalidConfig)
	case c.Difficulty.InitialInterval <= 0:
		return fmt.Errorf("%w: difficulty.initial_interval must be positive", ErrInvalidConfig)
	case c.Difficulty.ShrinkRate < 0 || c.Difficulty.MinInterval < 0:
		return fmt.Errorf("%w: difficulty rates must not be negative", ErrInvalidConfig)
	case c.Bonuses.Interval <= 0:
		return fmt.Errorf("%w: bonuses.interval must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ShrinkMultiplierForPreset returns the factor applied to the shrink rate.
func ShrinkMultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}
