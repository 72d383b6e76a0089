// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "time"

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Leveling   LevelingConfig   `yaml:"leveling"`
	LineClear  string           `yaml:"line_clear"` // "textbook" or "legacy"
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playing field size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	Interval    time.Duration `yaml:"interval"`     // Time between forced descents at level 0
	SpeedFactor float64       `yaml:"speed_factor"` // Interval multiplier applied on each level up
}

// LevelingConfig defines when the level advances.
type LevelingConfig struct {
	InitialThreshold int `yaml:"initial_threshold"` // Score to exceed for the first level up; doubles afterwards
}

// DifficultyConfig selects the starting speed and whether levels progress.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // false keeps the starting speed for the whole game
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the gravity interval removed at initial_level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// The empty string means "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", ErrUnknownPreset
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
