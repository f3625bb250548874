package ui

import (
	"github.com/Mshel/catmouse/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type gameKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func (k gameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

func (k gameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Quit}}
}

var gameKeys = gameKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
	Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// directionForKey maps arrow keys and WASD to a move; anything else is
// game.NoDirection.
func directionForKey(msg tea.KeyMsg) game.Direction {
	switch {
	case key.Matches(msg, gameKeys.Up):
		return game.Up
	case key.Matches(msg, gameKeys.Down):
		return game.Down
	case key.Matches(msg, gameKeys.Left):
		return game.Left
	case key.Matches(msg, gameKeys.Right):
		return game.Right
	}
	return game.NoDirection
}
