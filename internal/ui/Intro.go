package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: Play, 1: Settings
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: 0, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			m.selected = 1 - m.selected
		case "enter":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var catAndMouseAscii = `
  /\_/\                          ()-().----.
 ( o.o )      C A T   &         \"/' ___   ;__
  > ^ <          M O U S E       '--'       '--
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("214")).
					Foreground(lipgloss.Color("0"))

	introHintStyle = lipgloss.NewStyle().Faint(true)
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(catAndMouseAscii))
	sb.WriteString("\n")

	play := introButtonStyle.Render("Play")
	settings := introButtonStyle.Render("Settings")

	if m.selected == 0 {
		play = introSelectedButtonStyle.Render("Play")
	} else {
		settings = introSelectedButtonStyle.Render("Settings")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, play, settings)
	hint := introHintStyle.Render("Reach the box before the cat catches you.")

	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), hint, buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
