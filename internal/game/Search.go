package game

import "fmt"

// Heuristic scores a state from the evader's point of view: the further
// apart the two agents are, the better for the evader.
func Heuristic(state GameState) int {
	return GetManhattanDistance(state.EvaderPos, state.PursuerPos)
}

type SearchResult struct {
	Move  GameState
	Value int
	Nodes int
}

// Minimax returns the value of state searched depth half-moves deep. The
// side that moves is always taken from the state; maximizing only selects
// how child values are combined. A side without moves is a leaf.
func (b Board) Minimax(state GameState, depth int, maximizing bool) int {
	var nodes int
	return b.minimax(state, depth, maximizing, &nodes)
}

func (b Board) minimax(state GameState, depth int, maximizing bool, nodes *int) int {
	*nodes++
	if depth <= 0 {
		return Heuristic(state)
	}

	children := b.LegalMoves(state)
	if len(children) == 0 {
		return Heuristic(state)
	}

	best := b.minimax(children[0], depth-1, !maximizing, nodes)
	for _, child := range children[1:] {
		value := b.minimax(child, depth-1, !maximizing, nodes)
		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best
}

// Search picks the move of the side to act. The evader takes the highest
// value, the pursuer the lowest; on equal values the earlier move wins.
func (b Board) Search(state GameState, depth int) (SearchResult, error) {
	moves := b.LegalMoves(state)
	if len(moves) == 0 {
		return SearchResult{}, fmt.Errorf("%w: %s is boxed in at %v", ErrNoLegalMoves, state.MoverName(), state.Mover())
	}

	var result SearchResult
	for i, move := range moves {
		value := b.minimax(move, depth-1, !state.EvaderTurn, &result.Nodes)

		better := value > result.Value
		if !state.EvaderTurn {
			better = value < result.Value
		}
		if i == 0 || better {
			result.Move = move
			result.Value = value
		}
	}

	return result, nil
}

func (b Board) BestMove(state GameState, depth int) (GameState, error) {
	result, err := b.Search(state, depth)
	if err != nil {
		return state, err
	}
	return result.Move, nil
}
