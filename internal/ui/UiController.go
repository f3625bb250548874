package ui

import (
	"github.com/Mshel/catmouse/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Play, 1 for Settings
type SetupSubmitMsg struct {
	SearchDepth int
	MaxTurns    int
}
type RestartMsg struct{}

type ControllerModel struct {
	CurrentScreen Screen
	Config        game.Config
	Pilot         game.Pilot
	Logger        *log.Logger

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int
}

// NewControllerModel builds the root model. pilot may be nil, in which case
// the evader is steered from the keyboard.
func NewControllerModel(cfg game.Config, pilot game.Pilot, logger *log.Logger, screenWidth int, screenHeight int) ControllerModel {
	if logger == nil {
		logger = log.Default()
	}
	return ControllerModel{
		CurrentScreen: IntroScreen,
		Config:        cfg,
		Pilot:         pilot,
		Logger:        logger,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(cfg, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		return m, nil

	case IntroSubmitMsg:
		if msg == 0 {
			return m.startGame()
		}
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()

	case SetupSubmitMsg:
		m.Config.SearchDepth = msg.SearchDepth
		m.Config.MaxTurns = msg.MaxTurns
		m.Logger.Info("Settings updated", "depth", msg.SearchDepth, "maxTurns", msg.MaxTurns)
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()

	case RestartMsg:
		return m.startGame()

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m ControllerModel) startGame() (tea.Model, tea.Cmd) {
	gameManager, err := game.NewGameManager(m.Config, game.WithLogger(m.Logger))
	if err != nil {
		m.Logger.Error("Could not start match", "err", err)
		return m, tea.Quit
	}

	m.CurrentScreen = GameScreen
	m.GameModel = NewGameModel(gameManager, m.Pilot, m.ScreenWidth, m.ScreenHeight)
	return m, m.GameModel.Init()
}
