package knowledge

import (
	"fmt"
	"slices"
	"strings"
)

// Cell is a board coordinate: X is the column, Y is the row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Row-major: lower rows first, then lower columns.
func cellCompare(a, b Cell) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

type CellSet map[Cell]struct{}

func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) Delete(c Cell) {
	delete(s, c)
}

func (s CellSet) Len() int {
	return len(s)
}

func (s CellSet) Clone() CellSet {
	clone := make(CellSet, len(s))
	for c := range s {
		clone[c] = struct{}{}
	}
	return clone
}

// ContainsAll reports whether other is a (non-strict) subset of s.
func (s CellSet) ContainsAll(other CellSet) bool {
	if other.Len() > s.Len() {
		return false
	}
	for c := range other {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// Diff returns the cells of s that are not in other.
func (s CellSet) Diff(other CellSet) CellSet {
	diff := NewCellSet()
	for c := range s {
		if !other.Has(c) {
			diff.Add(c)
		}
	}
	return diff
}

func (s CellSet) Equal(other CellSet) bool {
	return s.Len() == other.Len() && s.ContainsAll(other)
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, cellCompare)
	return cells
}

func (s CellSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Sorted() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}


