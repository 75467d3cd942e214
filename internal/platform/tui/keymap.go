package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for every scene.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Pause   key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Pause, k.Back, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Arrow keys and WASD steer.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Turn translates a key press into a direction request using the
// Up/Down/Left/Right bindings. Keys that do not steer return false and are ignored.
func (k KeyMap) Turn(msg tea.KeyMsg) (core.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.DirUp, true
	case key.Matches(msg, k.Down):
		return core.DirDown, true
	case key.Matches(msg, k.Left):
		return core.DirLeft, true
	case key.Matches(msg, k.Right):
		return core.DirRight, true
	}
	return core.DirRight, false
}

// bindingList is a help.KeyMap over a fixed set of bindings.
type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding  { return b }
func (b bindingList) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

// helpFor returns the bindings that do something in the given scene.
func (k KeyMap) helpFor(s Scene) help.KeyMap {
	switch s {
	case SceneMenu:
		return bindingList{k.Up, k.Down, k.Select, k.Quit}
	case ScenePlaying:
		return k
	case ScenePaused:
		return bindingList{k.Up, k.Down, k.Select, k.Pause, k.Quit}
	case SceneGameOver:
		return bindingList{k.Restart, k.Back, k.Quit}
	default:
		return k
	}
}
