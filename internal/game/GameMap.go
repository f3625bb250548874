package game

import "fmt"

// Board is the static part of the game: a square grid with one impassable
// cell.
type Board struct {
	Size     int
	Obstacle Position
}

func (b Board) InBounds(p Position) bool {
	return p.Col >= 0 && p.Row >= 0 && p.Col < b.Size && p.Row < b.Size
}

func (b Board) IsObstacle(p Position) bool {
	return p == b.Obstacle
}

func (b Board) IsPassable(p Position) bool {
	return b.InBounds(p) && !b.IsObstacle(p)
}

// LegalMoves lists the states reachable by one step of the side to act, in
// Directions order. Stepping onto the opponent is allowed.
func (b Board) LegalMoves(state GameState) []GameState {
	from := state.Mover()
	moves := make([]GameState, 0, len(Directions))
	for _, dir := range Directions {
		target := from.Add(dir)
		if !b.IsPassable(target) {
			continue
		}
		moves = append(moves, state.moveTo(target))
	}
	return moves
}

// Apply moves the side to act one step in dir.
func (b Board) Apply(state GameState, dir Direction) (GameState, error) {
	if !dir.IsStep() {
		return state, fmt.Errorf("%w: %v is not a unit step", ErrInvalidMove, dir)
	}

	target := state.Mover().Add(dir)
	if !b.InBounds(target) {
		return state, fmt.Errorf("%w: %s cannot leave the grid at %v", ErrInvalidMove, state.MoverName(), target)
	}
	if b.IsObstacle(target) {
		return state, fmt.Errorf("%w: %v is blocked", ErrInvalidMove, target)
	}

	return state.moveTo(target), nil
}
