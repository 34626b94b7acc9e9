package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the key bindings for the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Rotate  key.Binding
	Drop    key.Binding
	Confirm key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.Drop, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.Drop},
		{k.Confirm, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns arrow keys with WASD alternatives.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "rotate / level up"),
		),
		Drop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "drop / level down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Lookup translates a key message to the logical key it is bound to.
func (k KeyMap) Lookup(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case key.Matches(msg, k.Rotate):
		return core.KeyUp, true
	case key.Matches(msg, k.Drop):
		return core.KeyDown, true
	case key.Matches(msg, k.Confirm):
		return core.KeyConfirm, true
	}
	return 0, false
}

// HeldKeys turns terminal key events into held key state. Terminals send a
// press and then auto-repeat presses but never a release, so a key stays held
// for a fixed number of ticks after its most recent event.
type HeldKeys struct {
	hold      int
	remaining [len(core.Keys)]int
}

// NewHeldKeys creates a tracker with the given hold window in ticks.
func NewHeldKeys(holdTicks int) *HeldKeys {
	return &HeldKeys{hold: max(1, holdTicks)}
}

// Press records a press or auto-repeat of k.
func (h *HeldKeys) Press(k core.Key) {
	h.remaining[k] = h.hold
}

// Input returns the current held state.
func (h *HeldKeys) Input() core.Input {
	var in core.Input
	for _, k := range core.Keys {
		in.Set(k, h.remaining[k] > 0)
	}
	return in
}

// Advance ages every held key by one tick.
func (h *HeldKeys) Advance() {
	for i := range h.remaining {
		if h.remaining[i] > 0 {
			h.remaining[i]--
		}
	}
}

// ReleaseAll drops every held key, e.g. when the terminal loses focus.
func (h *HeldKeys) ReleaseAll() {
	h.remaining = [len(core.Keys)]int{}
}
