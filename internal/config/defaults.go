package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default board dimensions and progression constants.
const (
	DefaultBoardWidth       = 10
	DefaultBoardHeight      = 20
	DefaultGravityInterval  = 300 * time.Millisecond
	DefaultSpeedFactor      = 0.75
	DefaultInitialThreshold = 20
	LineClearTextbook       = "textbook"
	LineClearLegacy         = "legacy"

	// Every spawn orientation must fit on the board.
	MinBoardWidth  = 7
	MinBoardHeight = 4
)

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  DefaultBoardWidth,
			Height: DefaultBoardHeight,
		},
		Gravity: GravityConfig{
			Interval:    DefaultGravityInterval,
			SpeedFactor: DefaultSpeedFactor,
		},
		Leveling: LevelingConfig{
			InitialThreshold: DefaultInitialThreshold,
		},
		LineClear: LineClearTextbook,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
