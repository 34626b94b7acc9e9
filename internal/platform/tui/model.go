package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options configure a play session.
type Options struct {
	Runtime       core.RuntimeConfig
	HoldTicks     int
	CellWidth     int
	StartStage    int // 0-based
	StartSubStage int // 0-based
	Logger        *log.Logger
}

// Model is the Bubble Tea model for a tetris session.
type Model struct {
	game     *tetris.Game
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	config   core.RuntimeConfig
	logger   *log.Logger
	runID    string

	width, height int
	quitting      bool
}

// NewModel creates a model with a fresh game sitting in the menu.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	runID := uuid.NewString()
	logger = logger.With("run", runID)

	// The terminal size is only needed for layout; the engine gets the frame size.
	termW, termH := cfg.ScreenW, cfg.ScreenH
	renderer := NewRenderer(opts.CellWidth)
	w, h := renderer.Size()
	cfg.ScreenW, cfg.ScreenH = w, h

	game := tetris.New(
		tetris.WithLogger(logger),
		tetris.WithStartStage(opts.StartStage, opts.StartSubStage),
	)
	game.Reset(cfg)

	hm := help.New()
	hm.Width = termW

	return Model{
		game:     game,
		screen:   core.NewScreen(w, h),
		renderer: renderer,
		keys:     DefaultKeyMap(),
		help:     hm,
		held:     NewHeldKeys(opts.HoldTicks),
		config:   cfg,
		logger:   logger,
		runID:    runID,
		width:    termW,
		height:   termH,
	}
}

// RunID returns the session identifier attached to every log line.
func (m Model) RunID() string {
	return m.runID
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.held.ReleaseAll()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session ended", "ticks", m.game.Tick(), "stage", m.game.Progress().Label())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if k, ok := m.keys.Lookup(msg); ok {
		m.held.Press(k)
	}
	return m, nil
}

// handleTick runs exactly one simulation step per tick message.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.held.Input())
	m.held.Advance()

	if res.PhaseChange {
		switch res.Phase {
		case tetris.PhaseStageIntro:
			m.logger.Info("stage started", "stage", m.game.Progress().Label())
		case tetris.PhaseGameOver:
			m.logger.Info("game over", "stage", m.game.Progress().Label(), "remaining", m.game.Progress().LinesRemaining)
		case tetris.PhaseLevelComplete:
			m.logger.Info("goal reached", "stage", m.game.Progress().Label())
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen, m.game.Snapshot())
	frame := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), "", m.help.View(m.keys))

	if m.width == 0 || m.height == 0 {
		return frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
}

// Run starts the Bubble Tea program for one session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
