package knowledge

import "fmt"

/*
A Sentence states that exactly `count` of `cells` are mines. Cells whose
status becomes known are folded out via [Sentence.MarkMine] and
[Sentence.MarkSafe]; the count invariant 0 <= count <= len(cells) holds at
all times.
*/
type Sentence struct {
	cells CellSet
	count int
}

// panics [AssertionError] if count is impossible for the given cell set
func NewSentence(cells CellSet, count int) *Sentence {
	if count < 0 || count > cells.Len() {
		panic(AssertionError{fmt.Sprintf(
			"inconsistent sentence: %s = %d", cells, count,
		)})
	}
	return &Sentence{cells: cells, count: count}
}

func (s Sentence) Count() int {
	return s.count
}

func (s Sentence) Size() int {
	return s.cells.Len()
}

// A vacuous sentence has no unresolved cells and carries no information.
func (s Sentence) Vacuous() bool {
	return s.cells.Len() == 0
}

/*
KnownMines returns the cells of this sentence that are certainly mines:
all of them when the count equals the (non-zero) set size, none otherwise.
The returned set is a copy.
*/
func (s Sentence) KnownMines() CellSet {
	if s.cells.Len() > 0 && s.count == s.cells.Len() {
		return s.cells.Clone()
	}
	return NewCellSet()
}

/*
KnownSafes returns the cells of this sentence that are certainly safe:
all of them when the count is zero, none otherwise. The returned set is
a copy.
*/
func (s Sentence) KnownSafes() CellSet {
	if s.count == 0 {
		return s.cells.Clone()
	}
	return NewCellSet()
}

// MarkMine folds the fact that c is a mine into this sentence. No-op if c
// is not a member.
func (s *Sentence) MarkMine(c Cell) {
	if s.cells.Has(c) {
		s.cells.Delete(c)
		s.count--
	}
}

// MarkSafe folds the fact that c is safe into this sentence. No-op if c
// is not a member.
func (s *Sentence) MarkSafe(c Cell) {
	s.cells.Delete(c)
}

// Equal reports structural equivalence: same cell set, same count.
func (s Sentence) Equal(other *Sentence) bool {
	return s.count == other.count && s.cells.Equal(other.cells)
}

func (s Sentence) String() string {
	return fmt.Sprintf("%s = %d", s.cells, s.count)
}


