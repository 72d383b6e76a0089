package config

import (
	"math"
	"time"
)

// DifficultyManager derives the starting speed of a game from its difficulty settings.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// LevelingEnabled reports whether the game should level up as score grows.
func (d *DifficultyManager) LevelingEnabled() bool {
	return d.cfg.Enabled
}

// StartInterval returns the gravity interval at level 0.
// The base interval shrinks linearly with the initial level, down to
// base*(1-interval_reduction) at initial_level 1.0.
func (d *DifficultyManager) StartInterval(base time.Duration) time.Duration {
	reduction := clampF(d.cfg.Scaling.IntervalReduction, 0.0, 0.9)
	scale := 1.0 - d.initialLevel*reduction
	interval := time.Duration(float64(base) * scale)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
