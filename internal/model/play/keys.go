package play

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/tilewalk/internal/walker"
)

// KeyMap binds keys to play actions.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	About key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns arrows, wasd and hjkl for movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D", "l"),
			key.WithHelp("→/d", "right"),
		),
		About: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "about"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.About, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.About, k.Quit},
	}
}

// direction maps a key press to a movement direction.
func (k KeyMap) direction(msg tea.KeyMsg) walker.Direction {
	switch {
	case key.Matches(msg, k.Up):
		return walker.Up
	case key.Matches(msg, k.Down):
		return walker.Down
	case key.Matches(msg, k.Left):
		return walker.Left
	case key.Matches(msg, k.Right):
		return walker.Right
	}
	return walker.No
}
