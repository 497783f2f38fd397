package config

import "math"

// DifficultyManager derives the monster spawn interval from elapsed play time.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables spawn-rate progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the spawn interval shrinks over time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.ShrinkRate > 0
}

// SpawnInterval returns the seconds between monster spawns after elapsed
// seconds of play. The interval shrinks linearly and never drops below
// MinInterval; with MinInterval 0 it may reach zero, at which point every
// tick spawns a monster until the capacity is exhausted.
func (d *DifficultyManager) SpawnInterval(elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.cfg.InitialInterval
	}
	interval := d.cfg.InitialInterval - d.cfg.ShrinkRate*math.Max(0, elapsed)
	return math.Max(d.cfg.MinInterval, math.Max(0, interval))
}

// Level returns progress toward the fastest spawn rate in [0, 1].
func (d *DifficultyManager) Level(elapsed float64) float64 {
	if !d.IsEnabled() {
		return 0
	}
	span := d.cfg.InitialInterval - d.cfg.MinInterval
	if span <= 0 {
		return 1
	}
	return clampF((d.cfg.InitialInterval-d.SpawnInterval(elapsed))/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
