package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/money-grabber/internal/core"
	"github.com/vovakirdan/money-grabber/internal/grabber"
)

// KeyMap defines the key bindings for every phase.
// Some keys are shared between phases (h is Hard in the menu and left while
// playing), so bindings are always matched against the current phase.
// Back shares no key with Grab.
type KeyMap struct {
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Start      key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Grab       key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Easy: key.NewBinding(
			key.WithKeys("1", "e"),
			key.WithHelp("1/e", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2", "m"),
			key.WithHelp("2/m", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3", "h"),
			key.WithHelp("3/h", "hard"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("enter", "start"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Grab: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "grab"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// phaseHelp adapts the key map to help.KeyMap for one phase.
type phaseHelp struct {
	keys  KeyMap
	phase grabber.Phase
}

// ShortHelp returns key bindings for the short help view.
func (h phaseHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.phase {
	case grabber.PhasePlaying:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Grab, k.Quit}
	case grabber.PhaseGameOver:
		return []key.Binding{k.Back, k.Screenshot, k.Quit}
	default:
		return []key.Binding{k.Easy, k.Medium, k.Hard, k.Start, k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (h phaseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp(), {h.keys.Screenshot}}
}

// KeyResult is what a key press means in the current phase.
type KeyResult struct {
	Event      core.Event // Event for the match, nil if none
	DX, DY     int        // Pointer movement in cells
	Grab       bool       // Click at the pointer position
	Screenshot bool
}

// Map translates a key press for the given phase.
func (k KeyMap) Map(msg tea.KeyMsg, phase grabber.Phase) KeyResult {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyResult{Event: core.QuitRequested{}}
	case key.Matches(msg, k.Screenshot):
		return KeyResult{Screenshot: true}
	}

	switch phase {
	case grabber.PhaseMenu:
		switch {
		case key.Matches(msg, k.Easy):
			return KeyResult{Event: core.DifficultySelected{Level: core.DifficultyEasy}}
		case key.Matches(msg, k.Medium):
			return KeyResult{Event: core.DifficultySelected{Level: core.DifficultyMedium}}
		case key.Matches(msg, k.Hard):
			return KeyResult{Event: core.DifficultySelected{Level: core.DifficultyHard}}
		case key.Matches(msg, k.Start):
			return KeyResult{Event: core.StartRequested{}}
		}

	case grabber.PhasePlaying:
		switch {
		case key.Matches(msg, k.Up):
			return KeyResult{DY: -1}
		case key.Matches(msg, k.Down):
			return KeyResult{DY: 1}
		case key.Matches(msg, k.Left):
			return KeyResult{DX: -1}
		case key.Matches(msg, k.Right):
			return KeyResult{DX: 1}
		case key.Matches(msg, k.Grab):
			return KeyResult{Grab: true}
		}

	case grabber.PhaseGameOver:
		if key.Matches(msg, k.Back) {
			return KeyResult{Event: core.ReturnToMenuRequested{}}
		}
	}

	return KeyResult{}
}
