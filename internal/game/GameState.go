package game

import "fmt"

// GameState is one configuration of the board. It is a value: every
// accepted move produces a new GameState.
type GameState struct {
	EvaderPos  Position
	PursuerPos Position
	EvaderTurn bool
}

// Mover returns the position of the side to act.
func (s GameState) Mover() Position {
	if s.EvaderTurn {
		return s.EvaderPos
	}
	return s.PursuerPos
}

func (s GameState) MoverName() string {
	if s.EvaderTurn {
		return "evader"
	}
	return "pursuer"
}

// moveTo relocates the side to act and hands the turn over.
func (s GameState) moveTo(p Position) GameState {
	if s.EvaderTurn {
		s.EvaderPos = p
	} else {
		s.PursuerPos = p
	}
	s.EvaderTurn = !s.EvaderTurn
	return s
}

// pass hands the turn over without moving anyone.
func (s GameState) pass() GameState {
	s.EvaderTurn = !s.EvaderTurn
	return s
}

func (s GameState) String() string {
	return fmt.Sprintf("evader=%v pursuer=%v toMove=%s", s.EvaderPos, s.PursuerPos, s.MoverName())
}
