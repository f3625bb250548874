package game

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoLegalMoves     = errors.New("no legal moves")
	ErrGameOver         = errors.New("game is over")
	ErrNotEvaderTurn    = errors.New("not the evader's turn")
	ErrPilotExhausted   = errors.New("pilot has no more moves")
	ErrUnknownDirection = errors.New("unknown direction")
)
