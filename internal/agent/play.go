package agent

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

type Outcome int8

const (
	Lost Outcome = iota
	Won
	Stalled // no legal move left on an unfinished board
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Stalled:
		return "stalled"
	default:
		return "?"
	}
}

// StepResult describes one agent turn: the flags placed on newly proven
// mines and the chosen reveal. Moved is false when no legal move
// remained.
type StepResult struct {
	Move  Move
	Flags []knowledge.Cell
	Moved bool
}

// Step plays a single agent turn against the board: flag newly proven
// mines, reveal the chosen cell, feed the reveals back into the base.
func (a *Agent) Step(state *mines.GameState) (StepResult, error) {
	res := StepResult{Flags: a.PendingFlags()}
	for _, c := range res.Flags {
		state.FlagCell(c.X, c.Y)
	}
	move, ok := a.ChooseMove()
	if !ok {
		return res, nil
	}
	res.Move, res.Moved = move, true
	state.OpenCell(move.Cell.X, move.Cell.Y)
	if state.Dead {
		if !move.Guess {
			return res, fmt.Errorf(
				"agent exploded on provably safe cell %s", move.Cell,
			)
		}
		return res, nil
	}
	if err := a.Observe(state); err != nil {
		return res, err
	}
	return res, nil
}

/*
Play runs the agent against the board until the game is won, lost, or no
move remains. maxMoves <= 0 means no limit beyond the board size.
*/
func (a *Agent) Play(state *mines.GameState, maxMoves int) (Outcome, error) {
	if maxMoves <= 0 {
		maxMoves = state.Width * state.Height
	}
	if err := a.Observe(state); err != nil {
		return Lost, err
	}
	for range maxMoves {
		if state.Won {
			return Won, nil
		}
		if state.Dead {
			return Lost, nil
		}
		res, err := a.Step(state)
		if err != nil {
			return Lost, err
		}
		if !res.Moved {
			return Stalled, nil
		}
		Log.WithFields(logrus.Fields{
			"move":  res.Move.String(),
			"guess": res.Move.Guess,
		}).Debug("agent move")
	}
	if state.Won {
		return Won, nil
	}
	if state.Dead {
		return Lost, nil
	}
	return Stalled, nil
}


