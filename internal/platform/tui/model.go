package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	termW      int
	termH      int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so the first frame has something to draw.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = helpStyle
	h.Styles.FullDesc = helpStyle
	h.Width = cfg.ScreenW

	termW, termH := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(0, termH-helpHeight)

	game.Reset(cfg)
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		termW:      termW,
		termH:      termH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit", "score", m.gameState.Score, "level", m.gameState.Level)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW = msg.Width
	m.termH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// relayout gives the game everything above the help footer.
func (m *Model) relayout() {
	m.config.ScreenW = m.termW
	m.config.ScreenH = max(0, m.termH-m.footerHeight())
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}

	// Games that cannot relayout start over at the new size
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// footerHeight returns the rows taken by the help view.
func (m Model) footerHeight() int {
	if !m.help.ShowAll {
		return helpHeight
	}
	rows := 0
	for _, col := range m.keys.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logTransition records level changes, game over and restarts.
func (m Model) logTransition(prev, cur core.GameState) {
	switch {
	case !prev.GameOver && cur.GameOver:
		m.logger.Info("game over", "score", cur.Score, "level", cur.Level)
	case prev.GameOver && !cur.GameOver:
		m.logger.Info("game restarted")
	case cur.Level > prev.Level:
		m.logger.Info("level up", "level", cur.Level, "score", cur.Score)
	}
	if prev.Paused != cur.Paused {
		m.logger.Debug("pause toggled", "paused", cur.Paused)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
