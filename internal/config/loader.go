package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "tetris.yaml"

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are decoded on top of the built-in defaults, so a file may set only the keys it changes.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultTetrisConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultTetrisConfig and validates the result.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks that every value is usable by the game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < MinBoardWidth:
		return fmt.Errorf("%w: board.width must be at least %d, got %d", ErrInvalidConfig, MinBoardWidth, c.Board.Width)
	case c.Board.Height < MinBoardHeight:
		return fmt.Errorf("%w: board.height must be at least %d, got %d", ErrInvalidConfig, MinBoardHeight, c.Board.Height)
	case c.Gravity.Interval <= 0:
		return fmt.Errorf("%w: gravity.interval must be positive, got %s", ErrInvalidConfig, c.Gravity.Interval)
	case c.Gravity.SpeedFactor <= 0 || c.Gravity.SpeedFactor > 1:
		return fmt.Errorf("%w: gravity.speed_factor must be in (0, 1], got %g", ErrInvalidConfig, c.Gravity.SpeedFactor)
	case c.Leveling.InitialThreshold < 1:
		return fmt.Errorf("%w: leveling.initial_threshold must be positive, got %d", ErrInvalidConfig, c.Leveling.InitialThreshold)
	case c.LineClear != LineClearTextbook && c.LineClear != LineClearLegacy:
		return fmt.Errorf("%w: line_clear must be %q or %q, got %q", ErrInvalidConfig, LineClearTextbook, LineClearLegacy, c.LineClear)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: difficulty.initial_level must be in [0, 1], got %g", ErrInvalidConfig, c.Difficulty.InitialLevel)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
