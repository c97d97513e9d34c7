package agent

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

var Log = logrus.New()

// Move is the agent's chosen cell to reveal. Guess marks a move that is
// not provably safe (uniform random fallback).
type Move struct {
	Cell  knowledge.Cell
	Guess bool
}

func (m Move) String() string {
	if m.Guess {
		return m.Cell.String() + " (guess)"
	}
	return m.Cell.String()
}

/*
Agent wraps a [knowledge.Base] with the move policy: reveal a provably
safe cell when one exists, otherwise guess uniformly among cells not yet
revealed and not proven mines, otherwise report that no move remains.
*/
type Agent struct {
	base    *knowledge.Base
	flagged knowledge.CellSet
}

func New(width, height int, rnd *rand.Rand) *Agent {
	return &Agent{
		base:    knowledge.NewBase(width, height, rnd),
		flagged: knowledge.NewCellSet(),
	}
}

// Record feeds one revealed cell and its neighboring mine count into the
// knowledge base.
func (a *Agent) Record(cell knowledge.Cell, mineCount int) error {
	return a.base.AddKnowledge(cell, mineCount)
}

// Recorded reports whether cell has already been fed to the base.
func (a *Agent) Recorded(cell knowledge.Cell) bool {
	return a.base.Recorded(cell)
}

/*
ChooseMove picks the agent's next reveal. The second return is false when
no legal cell remains at all; the caller must treat that as a terminal
game state, not an error.
*/
func (a *Agent) ChooseMove() (Move, bool) {
	if c, ok := a.base.SafeMove(); ok {
		return Move{Cell: c}, true
	}
	if c, ok := a.base.RandomMove(); ok {
		return Move{Cell: c, Guess: true}, true
	}
	return Move{}, false
}

/*
PendingFlags returns proven mines not yet handed out by a previous call,
in row-major order. The host places the actual flags.
*/
func (a *Agent) PendingFlags() []knowledge.Cell {
	var pending []knowledge.Cell
	for _, c := range a.base.Mines().Sorted() {
		if !a.flagged.Has(c) {
			a.flagged.Add(c)
			pending = append(pending, c)
		}
	}
	return pending
}

// Safes exposes the proven-safe set for display purposes.
func (a *Agent) Safes() knowledge.CellSet {
	return a.base.Safes()
}

// Mines exposes the proven-mine set for display purposes.
func (a *Agent) Mines() knowledge.CellSet {
	return a.base.Mines()
}

// Moves exposes the revealed-cell set for display purposes.
func (a *Agent) Moves() knowledge.CellSet {
	return a.base.Moves()
}

func (a *Agent) SentenceCount() int {
	return a.base.SentenceCount()
}

/*
Observe feeds every newly revealed numbered square of the board into the
knowledge base. Flood reveals open many squares per move, and each one
carries information, so all of them are recorded exactly once.
*/
func (a *Agent) Observe(state *mines.GameState) error {
	for i, cs := range state.PlayerGrid {
		if !cs.Open() {
			continue
		}
		c := knowledge.Cell{X: i % state.Width, Y: i / state.Width}
		if a.Recorded(c) {
			continue
		}
		if err := a.Record(c, int(cs)); err != nil {
			return fmt.Errorf("unable to record cell %s: %w", c, err)
		}
	}
	return nil
}


