package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the built-in arena configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:      200,
			MaxHealth:  100,
			Scale:      0.6,
			SpriteSize: 64,
			Confine:    true,
		},
		Monsters: MonstersConfig{
			Max:                   100,
			Scale:                 0.5,
			SpriteSize:            64,
			ContactDamage:         10,
			AttackCooldown:        1.0,
			InitialAttackCooldown: 1.0,
			Basic:                 MonsterStats{Speed: 100, Health: 25, Weight: 6},
			Fast:                  MonsterStats{Speed: 150, Health: 15, Weight: 3},
			Tank:                  MonsterStats{Speed: 80, Health: 40, Weight: 1},
		},
		Combat: CombatConfig{
			Damage:            10,
			Cooldown:          0.5,
			KnockbackSpeed:    200,
			KnockbackDuration: 0.2,
			KillReward:        10,
		},
		Bonuses: BonusesConfig{
			Max:        100,
			Scale:      0.5,
			SpriteSize: 64,
			Heal:       20,
			Lifetime:   5,
			Interval:   10,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialInterval: 2.0,
			ShrinkRate:      0.02,
			MinInterval:     0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `arena config` style dumps.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
