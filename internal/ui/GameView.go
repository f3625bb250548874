package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/catmouse/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type viewState int

const (
	StatePlaying viewState = iota
	StateGameOver
)

const (
	frameInterval     = time.Second / 60
	invalidMoveNotice = 300 * time.Millisecond
	pilotInterval     = 250 * time.Millisecond
)

var (
	voidColor    = "233"
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2).
				Width(34)

	cellStyle = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Background(lipgloss.Color(voidColor))

	voidCell     = cellStyle.Foreground(lipgloss.Color("238")).Render("·")
	obstacleCell = cellStyle.Foreground(lipgloss.Color("172")).Render("▓")
	escapeCell   = cellStyle.Foreground(lipgloss.Color("214")).Render("⌂")
	evaderCell   = cellStyle.Foreground(lipgloss.Color("15")).Bold(true).Render("M")
	pursuerCell  = cellStyle.Foreground(lipgloss.Color("203")).Bold(true).Render("C")
	caughtCell   = cellStyle.Foreground(lipgloss.Color("196")).Bold(true).Render("X")

	thinkingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

type frameMsg time.Time

type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int
	gameManager  *game.GameManager
	pilot        game.Pilot

	snapshot      game.Snapshot
	lastFrame     time.Time
	invalidUntil  time.Time
	lastPilotMove time.Time

	spinner spinner.Model
	help    help.Model

	viewState     viewState
	gameOverState GameOverState
}

func NewGameModel(gm *game.GameManager, pilot game.Pilot, screenWidth int, screenHeight int) GameViewModel {
	m := GameViewModel{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameManager:  gm,
		pilot:        pilot,
		snapshot:     gm.Snapshot(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(thinkingStyle)),
		help:         help.New(),
		viewState:    StatePlaying,
		gameOverState: GameOverState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
	if m.snapshot.Phase.Terminal() {
		m.enterGameOver()
	}
	return m
}

func (m GameViewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, nextFrame())
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.gameOverState.ScreenWidth = msg.Width
		m.gameOverState.ScreenHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case frameMsg:
		if m.viewState != StatePlaying {
			return m, nil
		}
		now := time.Time(msg)
		m.lastFrame = now
		m.apply(m.gameManager.Step(m.pilotIntent(now), now), now)
		if m.viewState != StatePlaying {
			return m, nil
		}
		return m, nextFrame()

	case tea.KeyMsg:
		if m.viewState == StateGameOver {
			return m.updateGameOver(msg)
		}
		if key.Matches(msg, gameKeys.Quit) {
			return m, tea.Quit
		}

		dir := directionForKey(msg)
		if dir == game.NoDirection || m.pilot != nil {
			return m, nil
		}
		now := time.Now()
		m.lastFrame = now
		m.apply(m.gameManager.Step(dir, now), now)
		return m, nil
	}

	return m, nil
}

// pilotIntent asks the pilot for a move at a watchable pace.
func (m *GameViewModel) pilotIntent(now time.Time) game.Direction {
	if m.pilot == nil || m.snapshot.Phase != game.AwaitingEvaderInput || now.Sub(m.lastPilotMove) < pilotInterval {
		return game.NoDirection
	}

	dir, err := m.pilot.NextDirection(m.snapshot)
	if err != nil {
		log.Error("Pilot failed, handing control back to the keyboard", "err", err)
		m.pilot = nil
		return game.NoDirection
	}
	m.lastPilotMove = now
	return dir
}

func (m *GameViewModel) apply(snap game.Snapshot, now time.Time) {
	m.snapshot = snap
	if snap.Signal == game.SignalInvalidMove {
		m.invalidUntil = now.Add(invalidMoveNotice)
	}
	if snap.Phase.Terminal() {
		m.enterGameOver()
	}
}

func (m *GameViewModel) enterGameOver() {
	m.viewState = StateGameOver
	m.gameOverState.Outcome = m.snapshot.Signal
	m.gameOverState.Turn = m.snapshot.Turn
	m.gameOverState.MaxTurns = m.snapshot.MaxTurns
	m.gameOverState.SelectedButton = 0
}

func (m GameViewModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
	case "right", "l":
		m.gameOverState.SelectedButton = min(1, m.gameOverState.SelectedButton+1)
	case "enter":
		// 0: Play again, 1: Exit
		if m.gameOverState.SelectedButton == 0 {
			return m, func() tea.Msg { return RestartMsg{} }
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m GameViewModel) View() string {
	if m.viewState == StateGameOver {
		return m.gameOverState.RenderGameOverScreen()
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(renderBoard(m.snapshot)),
		statusPanelStyle.Render(m.renderStatusPanel()),
	)
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

func renderBoard(snap game.Snapshot) string {
	var sb strings.Builder
	for row := 0; row < snap.Board.Size; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}
		for col := 0; col < snap.Board.Size; col++ {
			sb.WriteString(renderCell(snap, game.Position{Col: col, Row: row}))
		}
	}
	return sb.String()
}

func renderCell(snap game.Snapshot, pos game.Position) string {
	evader, pursuer := snap.State.EvaderPos, snap.State.PursuerPos
	switch {
	case pos == evader && pos == pursuer:
		if pos == snap.Escape {
			return evaderCell
		}
		return caughtCell
	case pos == evader:
		return evaderCell
	case pos == pursuer:
		return pursuerCell
	case snap.Board.IsObstacle(pos):
		return obstacleCell
	case pos == snap.Escape:
		return escapeCell
	}
	return voidCell
}

func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder
	snap := m.snapshot

	statusContent.WriteString(headerStyle.Render("--- Match ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Turn: %d/%d\n", snap.Turn, snap.MaxTurns))
	statusContent.WriteString(fmt.Sprintf("Phase: %s\n", snap.Phase))
	statusContent.WriteString(fmt.Sprintf("Cat depth: %d\n", m.gameManager.Config().SearchDepth))
	statusContent.WriteString(fmt.Sprintf("Mouse: %v\n", snap.State.EvaderPos))
	statusContent.WriteString(fmt.Sprintf("Cat: %v\n", snap.State.PursuerPos))
	statusContent.WriteString(fmt.Sprintf("Box: %v\n\n", snap.Escape))

	switch {
	case snap.Phase == game.PursuerThinking:
		statusContent.WriteString(m.spinner.View() + " The cat is thinking...\n")
	case m.pilot != nil:
		statusContent.WriteString("Autopilot is moving\n")
	default:
		statusContent.WriteString("Your move\n")
	}

	if m.lastFrame.Before(m.invalidUntil) {
		statusContent.WriteString(invalidStyle.Render("Invalid move") + "\n")
	} else {
		statusContent.WriteString("\n")
	}

	statusContent.WriteString("\n" + m.help.View(gameKeys))
	return statusContent.String()
}
