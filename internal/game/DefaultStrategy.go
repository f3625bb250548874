package game

import (
	"time"

	"github.com/charmbracelet/log"
)

// MinimaxStrategy searches Depth half-moves ahead with Board.Search.
type MinimaxStrategy struct {
	Depth  int
	Logger *log.Logger
}

func (s MinimaxStrategy) NextMove(board Board, state GameState) (GameState, error) {
	start := time.Now()
	result, err := board.Search(state, s.Depth)
	if err != nil {
		return state, err
	}

	if s.Logger != nil {
		to := result.Move.PursuerPos
		if state.EvaderTurn {
			to = result.Move.EvaderPos
		}
		s.Logger.Debug("search finished",
			"mover", state.MoverName(),
			"from", state.Mover(),
			"to", to,
			"value", result.Value,
			"nodes", result.Nodes,
			"depth", s.Depth,
			"elapsed", time.Since(start),
		)
	}
	return result.Move, nil
}
