package game

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

var quietLogger = log.New(io.Discard)

// replayStrategy moves the pursuer through a fixed list of cells.
type replayStrategy struct {
	cells []Position
	next  int
}

func (s *replayStrategy) NextMove(_ Board, state GameState) (GameState, error) {
	if s.next >= len(s.cells) {
		return state, ErrNoLegalMoves
	}
	cell := s.cells[s.next]
	s.next++
	return state.moveTo(cell), nil
}

// firstMoveStrategy always takes the first legal move.
type firstMoveStrategy struct{}

func (firstMoveStrategy) NextMove(board Board, state GameState) (GameState, error) {
	moves := board.LegalMoves(state)
	if len(moves) == 0 {
		return state, ErrNoLegalMoves
	}
	return moves[0], nil
}

type stuckStrategy struct{}

func (stuckStrategy) NextMove(_ Board, state GameState) (GameState, error) {
	return state, ErrNoLegalMoves
}

type teleportStrategy struct{}

func (teleportStrategy) NextMove(_ Board, state GameState) (GameState, error) {
	return state.moveTo(Position{4, 0}), nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ThinkingDelay = 0
	return cfg
}

func newTestManager(t *testing.T, cfg Config, options ...Option) *GameManager {
	t.Helper()
	gm, err := NewGameManager(cfg, append([]Option{WithLogger(quietLogger)}, options...)...)
	require.NoError(t, err)
	return gm
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cases := map[string]func(c *Config){
		"zero grid":           func(c *Config) { c.GridSize = 0 },
		"zero depth":          func(c *Config) { c.SearchDepth = 0 },
		"negative depth":      func(c *Config) { c.SearchDepth = -2 },
		"zero max turns":      func(c *Config) { c.MaxTurns = 0 },
		"negative delay":      func(c *Config) { c.ThinkingDelay = -time.Millisecond },
		"obstacle off grid":   func(c *Config) { c.Obstacle = Position{5, 0} },
		"evader off grid":     func(c *Config) { c.EvaderStart = Position{-1, 4} },
		"pursuer off grid":    func(c *Config) { c.PursuerStart = Position{0, 5} },
		"evader on obstacle":  func(c *Config) { c.EvaderStart = Position{2, 2} },
		"pursuer on obstacle": func(c *Config) { c.PursuerStart = Position{2, 2} },
		"escape on obstacle":  func(c *Config) { c.Escape = Position{2, 2} },
		"escape off grid":     func(c *Config) { c.Escape = Position{7, 7} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)

			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			gm, err := NewGameManager(cfg, WithLogger(quietLogger))
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Nil(t, gm)
		})
	}
}

func TestNewGameManager(t *testing.T) {
	gm := newTestManager(t, DefaultConfig())

	snap := gm.Snapshot()
	require.Equal(t, GameState{EvaderPos: Position{4, 4}, PursuerPos: Position{0, 0}, EvaderTurn: true}, snap.State)
	require.Equal(t, AwaitingEvaderInput, snap.Phase)
	require.Equal(t, SignalNone, snap.Signal)
	require.Equal(t, 0, snap.Turn)
	require.Equal(t, 30, snap.MaxTurns)
	require.Equal(t, Position{0, 0}, snap.Escape)
}

func TestEvaderReachesEscape(t *testing.T) {
	t.Run("scripted walk from (4,4) to the escape cell", func(t *testing.T) {
		pursuer := &replayStrategy{cells: []Position{
			{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 4}, {2, 4}, {3, 4},
		}}
		gm := newTestManager(t, testConfig(), WithStrategy(pursuer))
		path := []Direction{Left, Up, Up, Up, Left, Left, Up, Left}

		var snap Snapshot
		now := time.Now()
		for i, dir := range path {
			require.Equal(t, AwaitingEvaderInput, gm.Phase(), "before move %d", i)
			snap = gm.Step(dir, now)
			require.NotEqual(t, SignalInvalidMove, snap.Signal, "move %d (%v) was rejected", i, dir)
		}

		require.Equal(t, EvaderWon, snap.Phase)
		require.Equal(t, SignalWon, snap.Signal)
		require.Equal(t, Position{0, 0}, snap.State.EvaderPos)
		require.Equal(t, 15, snap.Turn, "eight evader moves and seven pursuer moves")
	})

	t.Run("escape wins over capture on the same cell", func(t *testing.T) {
		cfg := testConfig()
		cfg.EvaderStart = Position{1, 0}
		gm := newTestManager(t, cfg, WithStrategy(stuckStrategy{}))

		snap := gm.Step(Left, time.Now())

		require.Equal(t, snap.State.PursuerPos, snap.State.EvaderPos)
		require.Equal(t, EvaderWon, snap.Phase)
		require.Equal(t, SignalWon, snap.Signal)
	})
}

func TestPursuerCaptures(t *testing.T) {
	t.Run("agents starting on the same cell", func(t *testing.T) {
		cfg := testConfig()
		cfg.EvaderStart = Position{3, 3}
		cfg.PursuerStart = Position{3, 3}

		gm := newTestManager(t, cfg)

		require.Equal(t, PursuerWon, gm.Phase())
		require.Equal(t, SignalLost, gm.Snapshot().Signal)
	})

	t.Run("evader walks into the pursuer", func(t *testing.T) {
		cfg := testConfig()
		cfg.EvaderStart = Position{3, 4}
		cfg.PursuerStart = Position{4, 4}
		gm := newTestManager(t, cfg)

		snap := gm.Step(Right, time.Now())

		require.Equal(t, PursuerWon, snap.Phase)
		require.Equal(t, SignalLost, snap.Signal)
		require.Equal(t, 1, snap.Turn, "the pursuer never got to move")
	})

	t.Run("minimax pursuer takes an adjacent evader", func(t *testing.T) {
		cfg := testConfig()
		cfg.EvaderStart = Position{0, 3}
		cfg.PursuerStart = Position{0, 1}
		gm := newTestManager(t, cfg)

		snap := gm.Step(Up, time.Now())

		require.Equal(t, Position{0, 2}, snap.State.EvaderPos)
		require.Equal(t, Position{0, 2}, snap.State.PursuerPos)
		require.Equal(t, PursuerWon, snap.Phase)
		require.Equal(t, SignalLost, snap.Signal)
	})

	t.Run("terminal match rejects input", func(t *testing.T) {
		cfg := testConfig()
		cfg.EvaderStart = Position{3, 3}
		cfg.PursuerStart = Position{3, 3}
		gm := newTestManager(t, cfg)

		require.ErrorIs(t, gm.SubmitEvaderMove(Up, time.Now()), ErrGameOver)
		moved, err := gm.Advance(time.Now())
		require.NoError(t, err)
		require.False(t, moved)
		require.Equal(t, 0, gm.Turn())
	})
}

func TestDrawOnTurnLimit(t *testing.T) {
	gm := newTestManager(t, testConfig(), WithStrategy(firstMoveStrategy{}))

	var snap Snapshot
	now := time.Now()
	for i := 0; i < 15; i++ {
		require.False(t, gm.Phase().Terminal(), "ended early on cycle %d", i)
		dir := Up
		if i%2 == 1 {
			dir = Down
		}
		snap = gm.Step(dir, now)
	}

	require.Equal(t, 30, snap.Turn)
	require.Equal(t, Draw, snap.Phase)
	require.Equal(t, SignalDraw, snap.Signal)
	require.NotEqual(t, snap.Escape, snap.State.EvaderPos)
	require.NotEqual(t, snap.State.PursuerPos, snap.State.EvaderPos)
}

func TestInvalidMove(t *testing.T) {
	t.Run("into the obstacle", func(t *testing.T) {
		cfg := testConfig()
		cfg.EvaderStart = Position{2, 3}
		gm := newTestManager(t, cfg)
		before := gm.Snapshot()

		snap := gm.Step(Up, time.Now())

		require.Equal(t, SignalInvalidMove, snap.Signal)
		require.Equal(t, before.State, snap.State)
		require.Equal(t, 0, snap.Turn)
		require.Equal(t, AwaitingEvaderInput, snap.Phase)
		require.ErrorIs(t, gm.SubmitEvaderMove(Up, time.Now()), ErrInvalidMove)
	})

	t.Run("off the grid", func(t *testing.T) {
		gm := newTestManager(t, testConfig())

		snap := gm.Step(Right, time.Now())

		require.Equal(t, SignalInvalidMove, snap.Signal)
		require.Equal(t, Position{4, 4}, snap.State.EvaderPos)
		require.Equal(t, 0, snap.Turn)
	})
}

func TestThinkingDelay(t *testing.T) {
	cfg := DefaultConfig()
	gm := newTestManager(t, cfg)
	start := time.Now()

	snap := gm.Step(Left, start)
	require.Equal(t, PursuerThinking, snap.Phase)
	require.Equal(t, 1, snap.Turn)
	require.Equal(t, cfg.ThinkingDelay, gm.ThinkingRemaining(start))

	snap = gm.Step(NoDirection, start.Add(cfg.ThinkingDelay/2))
	require.Equal(t, PursuerThinking, snap.Phase, "pursuer waits out the delay")
	require.Equal(t, Position{0, 0}, snap.State.PursuerPos)

	require.ErrorIs(t, gm.SubmitEvaderMove(Up, start.Add(cfg.ThinkingDelay/2)), ErrNotEvaderTurn)

	snap = gm.Step(NoDirection, start.Add(cfg.ThinkingDelay))
	require.Equal(t, AwaitingEvaderInput, snap.Phase)
	require.Equal(t, 2, snap.Turn)
	require.True(t, snap.State.EvaderTurn)
	require.NotEqual(t, Position{0, 0}, snap.State.PursuerPos)
	require.Zero(t, gm.ThinkingRemaining(start.Add(cfg.ThinkingDelay)))
}

func TestBoxedInPasses(t *testing.T) {
	t.Run("pursuer passes its turn", func(t *testing.T) {
		gm := newTestManager(t, testConfig(), WithStrategy(stuckStrategy{}))

		snap := gm.Step(Left, time.Now())

		require.Equal(t, AwaitingEvaderInput, snap.Phase)
		require.Equal(t, 2, snap.Turn)
		require.True(t, snap.State.EvaderTurn)
		require.Equal(t, Position{0, 0}, snap.State.PursuerPos)
	})

	t.Run("evader passes its turn", func(t *testing.T) {
		cfg := testConfig()
		cfg.Escape = Position{1, 1}
		gm := newTestManager(t, cfg, WithStrategy(stuckStrategy{}))
		// A single-cell board leaves the evader nowhere to go.
		gm.board = Board{Size: 1, Obstacle: Position{-1, -1}}
		gm.state = GameState{EvaderPos: Position{0, 0}, PursuerPos: Position{3, 3}, EvaderTurn: false}
		gm.phase = PursuerThinking

		snap := gm.Step(NoDirection, time.Now())

		require.Equal(t, PursuerThinking, snap.Phase, "the evader's turn was skipped")
		require.Equal(t, 2, snap.Turn)
		require.False(t, snap.State.EvaderTurn)
		require.Equal(t, Position{0, 0}, snap.State.EvaderPos)
	})
}

func TestIllegalStrategyMove(t *testing.T) {
	gm := newTestManager(t, testConfig(), WithStrategy(teleportStrategy{}))
	require.NoError(t, gm.SubmitEvaderMove(Left, time.Now()))

	moved, err := gm.Advance(time.Now())

	require.ErrorIs(t, err, ErrInvalidMove)
	require.False(t, moved)
	require.Equal(t, PursuerThinking, gm.Phase())
	require.Equal(t, 1, gm.Turn())
}
