package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const DefaultMaxInvalidMoves = 16

// MatchRunner plays a whole match without a UI, taking the evader's moves
// from a Pilot.
type MatchRunner struct {
	GameManager     *GameManager
	Pilot           Pilot
	MaxInvalidMoves int
	Logger          *log.Logger
}

func NewMatchRunner(gm *GameManager, pilot Pilot) *MatchRunner {
	return &MatchRunner{
		GameManager:     gm,
		Pilot:           pilot,
		MaxInvalidMoves: DefaultMaxInvalidMoves,
		Logger:          log.Default(),
	}
}

// Run returns the final snapshot once the match reaches a terminal phase.
func (mr *MatchRunner) Run(ctx context.Context) (Snapshot, error) {
	gm := mr.GameManager
	invalidMoves := 0

	for !gm.Phase().Terminal() {
		if err := ctx.Err(); err != nil {
			return gm.Snapshot(), err
		}

		switch gm.Phase() {
		case AwaitingEvaderInput:
			dir, err := mr.Pilot.NextDirection(gm.Snapshot())
			if err != nil {
				return gm.Snapshot(), fmt.Errorf("pilot failed on turn %d: %w", gm.Turn()+1, err)
			}

			if err := gm.SubmitEvaderMove(dir, time.Now()); err != nil {
				invalidMoves++
				mr.Logger.Warn("Pilot move rejected", "direction", dir, "err", err, "attempt", invalidMoves)
				if invalidMoves > mr.MaxInvalidMoves {
					return gm.Snapshot(), fmt.Errorf("pilot gave %d invalid moves in a row: %w", invalidMoves, err)
				}
				continue
			}
			invalidMoves = 0

		case PursuerThinking:
			if err := mr.wait(ctx, gm.ThinkingRemaining(time.Now())); err != nil {
				return gm.Snapshot(), err
			}
			if _, err := gm.Advance(time.Now()); err != nil {
				return gm.Snapshot(), err
			}
		}
	}

	final := gm.Snapshot()
	mr.Logger.Info("Match finished", "outcome", final.Signal, "turns", final.Turn)
	return final, nil
}

func (mr *MatchRunner) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
