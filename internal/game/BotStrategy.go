package game

// Strategy chooses the pursuer's next state. The returned state must be
// one of board.LegalMoves(state).
type Strategy interface {
	NextMove(board Board, state GameState) (GameState, error)
}
