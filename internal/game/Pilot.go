package game

// Pilot supplies the evader's intent when no one is at the keyboard.
type Pilot interface {
	NextDirection(snap Snapshot) (Direction, error)
}

// SequencePilot replays Moves in order.
type SequencePilot struct {
	Moves []Direction
	next  int
}

func NewSequencePilot(moves ...Direction) *SequencePilot {
	return &SequencePilot{Moves: moves}
}

func (p *SequencePilot) NextDirection(Snapshot) (Direction, error) {
	if p.next >= len(p.Moves) {
		return NoDirection, ErrPilotExhausted
	}
	dir := p.Moves[p.next]
	p.next++
	return dir, nil
}
