package config

import (
	"math"
	"testing"
)

func TestSpawnIntervalShrinks(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:         true,
		InitialInterval: 2.0,
		ShrinkRate:      0.02,
		MinInterval:     0.25,
	})

	tests := []struct {
		elapsed  float64
		expected float64
	}{
		{0, 2.0},
		{-5, 2.0}, // Negative elapsed time is treated as zero
		{10, 1.8},
		{50, 1.0},
		{87.5, 0.25},
		{1000, 0.25}, // Floored
	}

	for _, tc := range tests {
		if got := d.SpawnInterval(tc.elapsed); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("SpawnInterval(%f) = %f, expected %f", tc.elapsed, got, tc.expected)
		}
	}

	// Monotonically non-increasing
	prev := d.SpawnInterval(0)
	for e := 1.0; e < 200; e++ {
		cur := d.SpawnInterval(e)
		if cur > prev {
			t.Fatalf("SpawnInterval increased at %f: %f > %f", e, cur, prev)
		}
		prev = cur
	}
}

func TestSpawnIntervalWithoutFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:         true,
		InitialInterval: 2.0,
		ShrinkRate:      0.02,
		MinInterval:     0,
	})

	if got := d.SpawnInterval(500); got != 0 {
		t.Errorf("SpawnInterval(500) = %f, expected 0 without a floor", got)
	}
}

func TestSpawnIntervalDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:         false,
		InitialInterval: 2.0,
		ShrinkRate:      0.02,
		MinInterval:     0.25,
	})

	if got := d.SpawnInterval(1000); got != 2.0 {
		t.Errorf("SpawnInterval() = %f, expected constant 2.0", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if d.Level(1000) != 0 {
		t.Error("Level() should be 0 when disabled")
	}

	d.SetEnabled(true)
	if !d.IsEnabled() {
		t.Error("SetEnabled(true) should enable progression")
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:         true,
		InitialInterval: 2.0,
		ShrinkRate:      0.02,
		MinInterval:     1.0,
	})

	if got := d.Level(0); got != 0 {
		t.Errorf("Level(0) = %f, expected 0", got)
	}
	if got := d.Level(25); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(25) = %f, expected 0.5", got)
	}
	if got := d.Level(1000); got != 1 {
		t.Errorf("Level(1000) = %f, expected 1", got)
	}
}
