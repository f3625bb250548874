package ui

import (
	"fmt"

	"github.com/Mshel/catmouse/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the data and local state for rendering the game over screen.
type GameOverState struct {
	Outcome        game.Signal
	Turn           int
	MaxTurns       int
	SelectedButton int
	ScreenWidth    int
	ScreenHeight   int
}

var (
	GameOverbuttonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = GameOverbuttonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	outcomeColors = map[game.Signal]lipgloss.Color{
		game.SignalWon:  lipgloss.Color("10"),
		game.SignalLost: lipgloss.Color("9"),
		game.SignalDraw: lipgloss.Color("11"),
	}
)

func outcomeMessage(outcome game.Signal) string {
	switch outcome {
	case game.SignalWon:
		return "You escaped!"
	case game.SignalLost:
		return "The cat caught you!"
	case game.SignalDraw:
		return "Draw!"
	}
	return "Game over"
}

// RenderGameOverScreen draws the outcome and the replay/exit buttons.
func (g *GameOverState) RenderGameOverScreen() string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(outcomeColors[g.Outcome]).
		Padding(1, 5).
		Align(lipgloss.Center)

	title := messageStyle.Render(outcomeMessage(g.Outcome))
	stats := fmt.Sprintf("\nTurns played: %d/%d\n", g.Turn, g.MaxTurns)

	playAgainButton := GameOverbuttonStyle.Render("PLAY AGAIN")
	exitButton := GameOverbuttonStyle.Render("EXIT")

	if g.SelectedButton == 0 {
		playAgainButton = selectedButtonStyle.Render("PLAY AGAIN")
	} else {
		exitButton = selectedButtonStyle.Render("EXIT")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, playAgainButton, exitButton)

	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, buttons)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}
