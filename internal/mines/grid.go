package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is the player-visible state of one square. Values 0 to 8 are
// open squares with their neighboring mine count; the rest are markers.
type CellState int8

const (
	todo          CellState = -10 // flood-fill bookkeeping, never visible
	Unknown       CellState = -2
	Flagged       CellState = -1
	CorrectFlag   CellState = 64 // post-game-over states
	ExplodedMine  CellState = 65
	WrongFlag     CellState = 66
	UnflaggedMine CellState = 67
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == Flagged || s == CorrectFlag:
		return "*"
	case s == ExplodedMine:
		return "X"
	case s == WrongFlag:
		return "x"
	case s == UnflaggedMine:
		return "o"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Open reports whether the square has been revealed as a numbered square.
func (s CellState) Open() bool {
	return 0 <= s && s <= 8
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}


