package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of tetris.

Controls:
  ←/h/a          - Move left
  →/l/d          - Move right
  ↓/j/s          - Move down
  ↑/k/w/Space    - Rotate
  P/Esc          - Pause
  R              - Restart (after game over)
  ?              - Toggle full help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Normal starting speed, speeds up with each level
  normal - Start 30% of the way to the fastest start speed
  hard   - Start 70% of the way to the fastest start speed
  fixed  - No level progression, speed never changes

Without --difficulty, a menu asks for one first (skip it with --no-menu).

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log-file tetris.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var flagNoMenu bool

func init() {
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the difficulty menu and use the config as is")
}

func runPlay(cmd *cobra.Command, args []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return fmt.Errorf("%w: %q", err, flagDifficulty)
	}

	// Fail before taking over the terminal
	if _, err := config.LoadTetris(flagConfig); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if preset == "" && !flagNoMenu {
		selected, selErr := tui.RunDifficultySelector(cfg)
		if selErr != nil {
			return fmt.Errorf("difficulty menu: %w", selErr)
		}
		// User quit from the menu
		if selected == nil {
			return nil
		}
		preset = *selected
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)

	out, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	logger := newLogger(out, flagLogLevel)

	game, err := registry.Create("tetris")
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("tui stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
