package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	state   core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FAKE") }

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, g *fakeGame) (Model, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, logger)
	return m, &buf
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func TestModelResetsGameOnce(t *testing.T) {
	g := &fakeGame{}
	_, buf := newTestModel(t, g)

	assert.Equal(t, 1, g.resets)
	assert.Contains(t, buf.String(), "game started")
}

func TestModelKeysReachNextTick(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	require.Len(t, g.frames, 2)
	assert.True(t, g.frames[0].Has(core.ActionLeft))
	assert.True(t, g.frames[0].Has(core.ActionRotate))
	assert.False(t, g.frames[1].Has(core.ActionLeft), "input must be cleared after a tick")
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 1, g.resets, "resizable games are not reset")
	assert.Equal(t, [2]int{100, 40 - helpHeight}, g.resized)
	assert.Equal(t, 40-helpHeight, m.screen.Height())
}

func TestModelHelpToggleRelayouts(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})

	assert.True(t, m.help.ShowAll)
	assert.Equal(t, 24-m.footerHeight(), g.resized[1])
	assert.Greater(t, m.footerHeight(), helpHeight)
}

func TestModelLogsTransitions(t *testing.T) {
	g := &fakeGame{}
	m, buf := newTestModel(t, g)

	g.state = core.GameState{Score: 30, Level: 1}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 30, Level: 1, GameOver: true}
	m = update(t, m, TickMsg{})
	g.state = core.GameState{}
	update(t, m, TickMsg{})

	out := buf.String()
	assert.Contains(t, out, "level up")
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "game restarted")
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m, _ := newTestModel(t, g)

	view := m.View()
	assert.True(t, strings.Contains(view, "FAKE"))
	assert.Contains(t, view, "rotate")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	assert.Contains(t, out, "cd")
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
}
