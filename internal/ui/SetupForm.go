package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/catmouse/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minSearchDepth = 1
	maxSearchDepth = 8
	minMaxTurns    = 2
	maxMaxTurns    = 200
	maxTurnsStep   = 2
)

var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

// SetupModel lets the player tune the cat's search depth and the turn
// budget before a match.
type SetupModel struct {
	searchDepth int
	maxTurns    int
	focusIndex  int // 0: Depth, 1: Max turns, 2: Submit
	width       int
	height      int
}

func NewInitialSetupModel(cfg game.Config, w, h int) SetupModel {
	return SetupModel{
		searchDepth: clamp(cfg.SearchDepth, minSearchDepth, maxSearchDepth),
		maxTurns:    clamp(cfg.MaxTurns, minMaxTurns, maxMaxTurns),
		width:       w,
		height:      h,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down", "j":
			m.focusIndex = (m.focusIndex + 1) % 3
		case "shift+tab", "up", "k":
			m.focusIndex = (m.focusIndex + 2) % 3
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "enter":
			if m.focusIndex < 2 {
				m.focusIndex++
				return m, nil
			}
			return m, func() tea.Msg {
				return SetupSubmitMsg{SearchDepth: m.searchDepth, MaxTurns: m.maxTurns}
			}
		}
	}

	return m, nil
}

func (m *SetupModel) adjust(delta int) {
	switch m.focusIndex {
	case 0:
		m.searchDepth = clamp(m.searchDepth+delta, minSearchDepth, maxSearchDepth)
	case 1:
		m.maxTurns = clamp(m.maxTurns+delta*maxTurnsStep, minMaxTurns, maxMaxTurns)
	}
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}
	field := func(index int, label string, value int) string {
		line := fmt.Sprintf("%s:  ◀ %d ▶", label, value)
		if m.focusIndex == index {
			return focusedStyle.Render(line)
		}
		return blurredStyle.Render(line)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Bold(true).Render("Settings")))
	b.WriteString("\n\n")
	b.WriteString(center(field(0, "Cat search depth", m.searchDepth)))
	b.WriteString("\n")
	b.WriteString(center(field(1, "Max turns", m.maxTurns)))
	b.WriteString("\n\n")

	submitText := "Save"
	var submitButton string
	if m.focusIndex == 2 {
		submitButton = submitButtonStyle.Render(submitText)
	} else {
		submitButton = blurredButtonStyle.Render(submitText)
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(arrows to change values, tab/shift+tab to navigate, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
