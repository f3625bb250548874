package game

import (
	"fmt"
	"time"
)

const (
	DefaultGridSize      = 5
	DefaultSearchDepth   = 5
	DefaultMaxTurns      = 30
	DefaultThinkingDelay = 100 * time.Millisecond
)

// Config holds every fixed parameter of a match. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	GridSize      int
	Obstacle      Position
	Escape        Position
	EvaderStart   Position
	PursuerStart  Position
	SearchDepth   int
	MaxTurns      int
	ThinkingDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		GridSize:      DefaultGridSize,
		Obstacle:      Position{Col: 2, Row: 2},
		Escape:        Position{Col: 0, Row: 0},
		EvaderStart:   Position{Col: 4, Row: 4},
		PursuerStart:  Position{Col: 0, Row: 0},
		SearchDepth:   DefaultSearchDepth,
		MaxTurns:      DefaultMaxTurns,
		ThinkingDelay: DefaultThinkingDelay,
	}
}

func (c Config) Board() Board {
	return Board{Size: c.GridSize, Obstacle: c.Obstacle}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfig, c.GridSize)
	}
	if c.SearchDepth <= 0 {
		return fmt.Errorf("%w: search depth must be positive, got %d", ErrInvalidConfig, c.SearchDepth)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.ThinkingDelay < 0 {
		return fmt.Errorf("%w: thinking delay cannot be negative, got %s", ErrInvalidConfig, c.ThinkingDelay)
	}

	board := c.Board()
	if !board.InBounds(c.Obstacle) {
		return fmt.Errorf("%w: obstacle %v is outside the %dx%d grid", ErrInvalidConfig, c.Obstacle, c.GridSize, c.GridSize)
	}

	cells := []struct {
		name string
		pos  Position
	}{
		{"escape cell", c.Escape},
		{"evader start", c.EvaderStart},
		{"pursuer start", c.PursuerStart},
	}
	for _, cell := range cells {
		if !board.InBounds(cell.pos) {
			return fmt.Errorf("%w: %s %v is outside the %dx%d grid", ErrInvalidConfig, cell.name, cell.pos, c.GridSize, c.GridSize)
		}
		if board.IsObstacle(cell.pos) {
			return fmt.Errorf("%w: %s %v is on the obstacle", ErrInvalidConfig, cell.name, cell.pos)
		}
	}

	return nil
}
