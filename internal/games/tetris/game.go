// Package tetris implements the falling-block puzzle: the pure Session
// simulation and a fixed-tick Game wrapper that plugs it into the platform.
package tetris

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on every Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game drives a Session at the platform's tick rate.
type Game struct {
	session *Session
	runtime core.RuntimeConfig

	tick             uint64
	gravityCountdown int // Ticks left until the next forced descent

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a new game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)

	g.start(cfg, runtime)
}

// start builds the session from an already loaded config.
func (g *Game) start(cfg config.TetrisConfig, runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	opts, err := OptionsFromConfig(cfg, runtime.Seed)
	if err != nil {
		opts, _ = OptionsFromConfig(config.DefaultTetrisConfig(), runtime.Seed)
	}
	session, err := NewSession(opts)
	if err != nil {
		// Defaults always validate
		session, _ = NewSession(Options{Seed: runtime.Seed})
	}

	g.session = session
	g.tick = 0
	g.paused = false
	g.resetGravity()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// OptionsFromConfig converts a loaded config into session options.
func OptionsFromConfig(cfg config.TetrisConfig, seed int64) (Options, error) {
	rule, err := ParseClearRule(cfg.LineClear)
	if err != nil {
		return Options{}, err
	}
	difficulty := config.NewDifficultyManager(cfg.Difficulty)

	return Options{
		Width:           cfg.Board.Width,
		Height:          cfg.Board.Height,
		Seed:            seed,
		GravityInterval: difficulty.StartInterval(cfg.Gravity.Interval),
		SpeedFactor:     cfg.Gravity.SpeedFactor,
		LevelThreshold:  cfg.Leveling.InitialThreshold,
		FixedSpeed:      !difficulty.LevelingEnabled(),
		ClearRule:       rule,
	}, nil
}

// Resize adapts the layout to a new screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Session exposes the underlying simulation for read-only queries.
func (g *Game) Session() *Session {
	return g.session
}

// framesPerDrop converts the gravity interval into ticks, at least one.
func (g *Game) framesPerDrop() int {
	frames := int(math.Round(float64(g.runtime.TickRate) * g.session.GravityInterval().Seconds()))
	return max(1, frames)
}

func (g *Game) resetGravity() {
	g.gravityCountdown = g.framesPerDrop()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.session.GameOver() {
		if in.Has(core.ActionRestart) {
			g.session.Restart()
			g.paused = false
			g.resetGravity()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.session.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.session.MoveRight()
	}
	if in.Has(core.ActionDown) {
		g.session.MoveDown()
	}
	if in.Has(core.ActionRotate) {
		g.session.Rotate()
	}

	g.gravityCountdown--
	if g.gravityCountdown <= 0 {
		g.session.MoveDown()
		g.resetGravity()
	}

	g.session.TickLevelProgress()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}
