package game

import (
	"fmt"
	"strings"
)

type Position struct {
	Col, Row int
}

func (p Position) Add(dir Direction) Position {
	return Position{Col: p.Col + dir.Dx, Row: p.Row + dir.Dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

type Direction struct {
	Dx, Dy int
}

var (
	NoDirection = Direction{}
	Up          = Direction{Dx: 0, Dy: -1}
	Down        = Direction{Dx: 0, Dy: 1}
	Left        = Direction{Dx: -1, Dy: 0}
	Right       = Direction{Dx: 1, Dy: 0}
)

// Directions is the move generation order. Tie-breaking in the search
// depends on it.
var Directions = []Direction{Up, Down, Left, Right}

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	if d == NoDirection {
		return "none"
	}
	return fmt.Sprintf("(%d,%d)", d.Dx, d.Dy)
}

func (d Direction) IsStep() bool {
	_, ok := directionNames[d]
	return ok
}

func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "w":
		return Up, nil
	case "down", "s":
		return Down, nil
	case "left", "a":
		return Left, nil
	case "right", "d":
		return Right, nil
	}
	return NoDirection, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

func GetManhattanDistance(a, b Position) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
