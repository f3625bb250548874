package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
)

type Phase int

const (
	AwaitingEvaderInput Phase = iota
	PursuerThinking
	EvaderWon
	PursuerWon
	Draw
)

func (p Phase) Terminal() bool {
	return p == EvaderWon || p == PursuerWon || p == Draw
}

func (p Phase) String() string {
	switch p {
	case AwaitingEvaderInput:
		return "awaiting evader"
	case PursuerThinking:
		return "pursuer thinking"
	case EvaderWon:
		return "evader won"
	case PursuerWon:
		return "pursuer won"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Signal is what the presentation layer reacts to after a cycle.
type Signal int

const (
	SignalNone Signal = iota
	SignalWon
	SignalLost
	SignalDraw
	SignalInvalidMove
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalWon:
		return "won"
	case SignalLost:
		return "lost"
	case SignalDraw:
		return "draw"
	case SignalInvalidMove:
		return "invalid move"
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

// Snapshot is the read-only view handed to renderers and pilots.
type Snapshot struct {
	State    GameState
	Board    Board
	Escape   Position
	Turn     int
	MaxTurns int
	Phase    Phase
	Signal   Signal
}

// GameManager runs the turn state machine of a single match. It is driven
// by one caller at a time and reads the clock only through its arguments.
type GameManager struct {
	config   Config
	board    Board
	strategy Strategy
	logger   *log.Logger

	state         GameState
	turn          int
	phase         Phase
	evaderMovedAt time.Time
}

type Option func(gm *GameManager)

func WithStrategy(strategy Strategy) Option {
	return func(gm *GameManager) {
		if strategy != nil {
			gm.strategy = strategy
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(gm *GameManager) {
		if logger != nil {
			gm.logger = logger
		}
	}
}

func NewGameManager(cfg Config, options ...Option) (*GameManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gm := &GameManager{
		config: cfg,
		board:  cfg.Board(),
		logger: log.Default(),
		state: GameState{
			EvaderPos:  cfg.EvaderStart,
			PursuerPos: cfg.PursuerStart,
			EvaderTurn: true,
		},
		phase: AwaitingEvaderInput,
	}
	for _, option := range options {
		option(gm)
	}
	if gm.strategy == nil {
		gm.strategy = MinimaxStrategy{Depth: cfg.SearchDepth, Logger: gm.logger}
	}

	gm.logger.Info("Match started",
		"grid", cfg.GridSize,
		"evader", cfg.EvaderStart,
		"pursuer", cfg.PursuerStart,
		"escape", cfg.Escape,
		"depth", cfg.SearchDepth,
		"maxTurns", cfg.MaxTurns,
	)

	if !gm.checkTermination() {
		gm.passIfEvaderBoxedIn(time.Time{})
	}
	return gm, nil
}

func (gm *GameManager) Config() Config { return gm.config }
func (gm *GameManager) State() GameState { return gm.state }
func (gm *GameManager) Turn() int { return gm.turn }
func (gm *GameManager) Phase() Phase { return gm.phase }

func (gm *GameManager) Snapshot() Snapshot {
	snap := Snapshot{
		State:    gm.state,
		Board:    gm.board,
		Escape:   gm.config.Escape,
		Turn:     gm.turn,
		MaxTurns: gm.config.MaxTurns,
		Phase:    gm.phase,
	}
	switch gm.phase {
	case EvaderWon:
		snap.Signal = SignalWon
	case PursuerWon:
		snap.Signal = SignalLost
	case Draw:
		snap.Signal = SignalDraw
	}
	return snap
}

// SubmitEvaderMove applies the player's intent. An illegal direction leaves
// the match untouched and returns ErrInvalidMove.
func (gm *GameManager) SubmitEvaderMove(dir Direction, now time.Time) error {
	if gm.phase.Terminal() {
		return ErrGameOver
	}
	if gm.phase != AwaitingEvaderInput {
		return ErrNotEvaderTurn
	}

	next, err := gm.board.Apply(gm.state, dir)
	if err != nil {
		gm.logger.Debug("Evader move rejected", "direction", dir, "from", gm.state.EvaderPos, "err", err)
		return err
	}

	gm.state = next
	gm.turn++
	gm.phase = PursuerThinking
	gm.evaderMovedAt = now
	gm.logger.Debug("Evader moved", "direction", dir, "to", next.EvaderPos, "turn", gm.turn)

	gm.checkTermination()
	return nil
}

// ThinkingRemaining is how long Advance will keep waiting before it lets
// the pursuer move. Zero outside PursuerThinking.
func (gm *GameManager) ThinkingRemaining(now time.Time) time.Duration {
	if gm.phase != PursuerThinking {
		return 0
	}
	return max(0, gm.config.ThinkingDelay-now.Sub(gm.evaderMovedAt))
}

// Advance lets the pursuer move once the thinking delay has elapsed. It
// reports whether a pursuer turn was taken.
func (gm *GameManager) Advance(now time.Time) (bool, error) {
	if gm.phase != PursuerThinking || gm.ThinkingRemaining(now) > 0 {
		return false, nil
	}

	next, err := gm.strategy.NextMove(gm.board, gm.state)
	switch {
	case errors.Is(err, ErrNoLegalMoves):
		gm.logger.Warn("Pursuer is boxed in, passing", "at", gm.state.PursuerPos, "turn", gm.turn+1)
		next = gm.state.pass()
	case err != nil:
		return false, fmt.Errorf("pursuer strategy failed: %w", err)
	case !slices.Contains(gm.board.LegalMoves(gm.state), next):
		return false, fmt.Errorf("%w: strategy moved pursuer from %v to %v", ErrInvalidMove, gm.state.PursuerPos, next.PursuerPos)
	}

	gm.state = next
	gm.turn++
	gm.phase = AwaitingEvaderInput
	gm.logger.Debug("Pursuer moved", "to", next.PursuerPos, "turn", gm.turn)

	if !gm.checkTermination() {
		gm.passIfEvaderBoxedIn(now)
	}
	return true, nil
}

// Step runs one orchestration cycle: the optional evader intent, then the
// pursuer if its delay has elapsed.
func (gm *GameManager) Step(intent Direction, now time.Time) Snapshot {
	signal := SignalNone
	if intent != NoDirection {
		if err := gm.SubmitEvaderMove(intent, now); errors.Is(err, ErrInvalidMove) {
			signal = SignalInvalidMove
		}
	}

	if _, err := gm.Advance(now); err != nil {
		gm.logger.Error("Pursuer turn failed", "err", err)
	}

	snap := gm.Snapshot()
	if snap.Signal == SignalNone {
		snap.Signal = signal
	}
	return snap
}

// passIfEvaderBoxedIn skips the evader's turn when it cannot move at all.
func (gm *GameManager) passIfEvaderBoxedIn(now time.Time) {
	if gm.phase != AwaitingEvaderInput || len(gm.board.LegalMoves(gm.state)) > 0 {
		return
	}

	gm.logger.Warn("Evader is boxed in, passing", "at", gm.state.EvaderPos, "turn", gm.turn+1)
	gm.state = gm.state.pass()
	gm.turn++
	gm.phase = PursuerThinking
	gm.evaderMovedAt = now
	gm.checkTermination()
}

// checkTermination moves the match into a terminal phase when one applies.
// Reaching the escape cell wins even if the pursuer sits on it.
func (gm *GameManager) checkTermination() bool {
	switch {
	case gm.phase.Terminal():
		return true
	case gm.state.EvaderPos == gm.config.Escape:
		gm.phase = EvaderWon
	case gm.state.EvaderPos == gm.state.PursuerPos:
		gm.phase = PursuerWon
	case gm.turn >= gm.config.MaxTurns:
		gm.phase = Draw
	default:
		return false
	}

	gm.logger.Info("Match over", "outcome", gm.phase, "turn", gm.turn, "evader", gm.state.EvaderPos, "pursuer", gm.state.PursuerPos)
	return true
}
