package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Runtime:   core.RuntimeConfig{Seed: 5, TickRate: 60},
		HoldTicks: 3,
		CellWidth: 2,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	require.True(t, ok)
	return mm, cmd
}

func TestModelConfirmStartsStage(t *testing.T) {
	m := newTestModel(t)
	require.NotEmpty(t, m.RunID())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(time.Now()))

	assert.NotNil(t, cmd, "tick loop continues")
	assert.Equal(t, tetris.PhaseStageIntro, m.game.Phase().Kind())
	assert.Contains(t, m.screenText(), "Level 1-1")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelHeldKeyExpires(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, "1-2", m.game.Progress().Label())

	// Three ticks of hold, then the key is released.
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	assert.False(t, m.held.Input().Up)
}

func TestModelBlurReleasesKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.BlurMsg{})

	assert.False(t, m.held.Input().Any())
}

func TestModelViewCentersInWindow(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	assert.Contains(t, out, "ENTER to start.")
	assert.Equal(t, 120, m.help.Width)
}

func TestModelCentersBeforeFirstResize(t *testing.T) {
	m := NewModel(Options{
		Runtime:   core.RuntimeConfig{Seed: 5, TickRate: 60, ScreenW: 100, ScreenH: 40},
		HoldTicks: 3,
		CellWidth: 2,
	})

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 40)
	assert.Equal(t, 100, m.help.Width)

	// The engine still sees the frame size.
	w, h := m.renderer.Size()
	assert.Equal(t, w, m.config.ScreenW)
	assert.Equal(t, h, m.config.ScreenH)
}

// screenText renders the current frame without styling.
func (m Model) screenText() string {
	m.renderer.Draw(m.screen, m.game.Snapshot())
	return m.screen.String()
}
