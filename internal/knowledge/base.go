package knowledge

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

/*
Base is the knowledge base of a single game: the accumulated sentences
plus the sets of cells already proven safe, proven to be mines, or
already revealed. It owns its sentences exclusively; nothing outside the
base holds references into them.

All three cell sets grow monotonically for the lifetime of one game and
the safe and mine sets stay disjoint.
*/
type Base struct {
	width, height int
	knowledge     []*Sentence
	moves         CellSet
	safes         CellSet
	mines         CellSet
	rnd           *rand.Rand
}

// panics [AssertionError] on degenerate dimensions
func NewBase(width, height int, rnd *rand.Rand) *Base {
	if width < 1 || height < 1 {
		panic(AssertionError{fmt.Sprintf(
			"degenerate grid %dx%d", width, height,
		)})
	}
	return &Base{
		width:  width,
		height: height,
		moves:  NewCellSet(),
		safes:  NewCellSet(),
		mines:  NewCellSet(),
		rnd:    rnd,
	}
}

func (b *Base) inBounds(c Cell) bool {
	return 0 <= c.X && c.X < b.width && 0 <= c.Y && c.Y < b.height
}

func (b *Base) neighbors(c Cell) []Cell {
	cells := make([]Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Cell{X: c.X + dx, Y: c.Y + dy}
			if b.inBounds(n) {
				cells = append(cells, n)
			}
		}
	}
	return cells
}

/*
AddKnowledge records that cell has been revealed and that exactly
mineCount of its neighbors are mines, then draws every conclusion this
rule system can reach (trivial conclusions, global mark propagation and
subset-elimination, repeated to a fixed point). Later queries are plain
set lookups.

Calling it with an out-of-range cell or count, or twice for the same
cell, is a caller bug and returns an error without touching the base.
*/
func (b *Base) AddKnowledge(cell Cell, mineCount int) (err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				err = ae
			} else {
				panic(r)
			}
		}
	}()

	if !b.inBounds(cell) {
		return fmt.Errorf("cell %s outside %dx%d grid", cell, b.width, b.height)
	}
	if b.moves.Has(cell) {
		return fmt.Errorf("cell %s already revealed", cell)
	}
	neighbors := b.neighbors(cell)
	if mineCount < 0 || mineCount > len(neighbors) {
		return fmt.Errorf(
			"cell %s has %d neighbors, got mine count %d",
			cell, len(neighbors), mineCount,
		)
	}

	b.moves.Add(cell)
	b.markSafe(cell)

	/*
	 * Build the new sentence over the still-unresolved neighbors.
	 * Neighbors already known to be mines contribute to mineCount but
	 * must not appear as variables, so the count drops by one for each.
	 */
	cells := NewCellSet()
	count := mineCount
	for _, n := range neighbors {
		switch {
		case b.mines.Has(n):
			count--
		case b.safes.Has(n) || b.moves.Has(n):
			// resolved, carries no information
		default:
			cells.Add(n)
		}
	}
	b.insert(NewSentence(cells, count))

	b.propagate()

	Log.WithFields(logrus.Fields{
		"cell":      cell.String(),
		"count":     mineCount,
		"sentences": len(b.knowledge),
		"safes":     b.safes.Len(),
		"mines":     b.mines.Len(),
	}).Debug("knowledge added")

	return nil
}

// insert appends a sentence unless it is vacuous or already present.
func (b *Base) insert(s *Sentence) bool {
	if s.Vacuous() {
		return false
	}
	for _, have := range b.knowledge {
		if have.Equal(s) {
			return false
		}
	}
	b.knowledge = append(b.knowledge, s)
	return true
}

// panics [AssertionError] if c was previously proven a mine
func (b *Base) markSafe(c Cell) {
	if b.mines.Has(c) {
		panic(AssertionError{fmt.Sprintf(
			"cell %s proven both safe and mine", c,
		)})
	}
	b.safes.Add(c)
	for _, s := range b.knowledge {
		s.MarkSafe(c)
	}
}

// panics [AssertionError] if c was previously proven safe
func (b *Base) markMine(c Cell) {
	if b.safes.Has(c) {
		panic(AssertionError{fmt.Sprintf(
			"cell %s proven both mine and safe", c,
		)})
	}
	b.mines.Add(c)
	for _, s := range b.knowledge {
		s.MarkMine(c)
	}
}

/*
propagate applies the two inference rules until a full pass produces no
new conclusion and no new sentence:

  - a sentence whose count is zero proves all its cells safe; one whose
    count equals its size proves them all mines. Each new fact is folded
    into every sentence in the base.
  - for every pair where one sentence's cells are a subset of another's,
    the set difference must hold exactly the count difference
    (subset-elimination).

Termination is guaranteed: the known sets only grow within a finite grid
and each distinct sentence is inserted at most once.
*/
func (b *Base) propagate() {
	for {
		changed := false

		for _, s := range b.knowledge {
			for _, c := range s.KnownSafes().Sorted() {
				if !b.safes.Has(c) {
					b.markSafe(c)
					changed = true
				}
			}
			for _, c := range s.KnownMines().Sorted() {
				if !b.mines.Has(c) {
					b.markMine(c)
					changed = true
				}
			}
		}

		b.prune()

		for i, sub := range b.knowledge {
			if sub.Size() == 0 {
				continue
			}
			for j, super := range b.knowledge {
				if i == j || sub.Size() >= super.Size() {
					continue
				}
				if !super.cells.ContainsAll(sub.cells) {
					continue
				}
				derived := NewSentence(
					super.cells.Diff(sub.cells),
					super.count-sub.count,
				)
				if b.insert(derived) {
					changed = true
				}
			}
		}

		if !changed {
			return
		}
	}
}

// prune drops sentences left with no unresolved cells.
func (b *Base) prune() {
	b.knowledge = slices.DeleteFunc(b.knowledge, func(s *Sentence) bool {
		return s.Vacuous()
	})
}

/*
SafeMove returns a cell proven safe that has not been revealed yet. Ties
break row-major (lowest row, then lowest column) so runs are
reproducible. The second return is false when no provably safe move
exists.
*/
func (b *Base) SafeMove() (Cell, bool) {
	var (
		best  Cell
		found bool
	)
	for c := range b.safes {
		if b.moves.Has(c) {
			continue
		}
		if !found || cellCompare(c, best) < 0 {
			best, found = c, true
		}
	}
	return best, found
}

/*
RandomMove returns a uniformly random cell that has neither been revealed
nor proven a mine. The second return is false when no such cell remains.
*/
func (b *Base) RandomMove() (Cell, bool) {
	candidates := make([]Cell, 0, b.width*b.height)
	for y := range b.height {
		for x := range b.width {
			c := Cell{X: x, Y: y}
			if !b.moves.Has(c) && !b.mines.Has(c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[b.rnd.IntN(len(candidates))], true
}

// Safes returns a copy of the proven-safe set.
func (b *Base) Safes() CellSet {
	return b.safes.Clone()
}

// Mines returns a copy of the proven-mine set.
func (b *Base) Mines() CellSet {
	return b.mines.Clone()
}

// Moves returns a copy of the revealed-cell set.
func (b *Base) Moves() CellSet {
	return b.moves.Clone()
}

// Recorded reports whether c has already been fed to [Base.AddKnowledge].
func (b *Base) Recorded(c Cell) bool {
	return b.moves.Has(c)
}

func (b *Base) SentenceCount() int {
	return len(b.knowledge)
}


