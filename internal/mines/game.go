// reveal/flag/chord semantics after
// https://git.tartarus.org/simon/puzzles.git/mines.c

package mines

import (
	"math/rand/v2"
)

/*
GameState is the full state of one board: the hidden mine layout plus the
player-visible grid. Ground truth is read only inside this package; the
inference side of the program sees nothing but revealed counts.
*/
type GameState struct {
	Dead, Won  bool
	Mines      []bool /* real mine points */
	PlayerGrid Grid   /* player knowledge */
	GameParams
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

/*
placeMines scatters the requested number of mines, keeping the starting
square clear. When the board has room, the whole ring around the start is
kept clear too, so the opening move floods open a useful area.
*/
func placeMines(p GameParams, startX, startY int, r *rand.Rand) []bool {
	width, height, mineCount := p.Unpack()
	grid := make([]bool, width*height)

	candidates := make([]int, 0, width*height)
	for y := range height {
		for x := range width {
			if absDiff(startY, y) > 1 || absDiff(startX, x) > 1 {
				candidates = append(candidates, y*width+x)
			}
		}
	}
	if len(candidates) < mineCount {
		// tiny board; fall back to sparing just the starting square
		candidates = candidates[:0]
		for i := range grid {
			if i != startY*width+startX {
				candidates = append(candidates, i)
			}
		}
	}

	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}
	return grid
}

func NewGame(params *GameParams, x, y int, r *rand.Rand) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	playerGrid := make(Grid, params.Width*params.Height)
	for i := range playerGrid {
		playerGrid[i] = Unknown
	}
	state := &GameState{
		GameParams: *params,
		Mines:      placeMines(*params, x, y, r),
		PlayerGrid: playerGrid,
	}
	if state.OpenCell(x, y) != 0 {
		return nil, AssertionError{"mine in starting cell"}
	}
	return state, nil
}

func (s *GameState) index(x, y int) int {
	return y*s.Width + x
}

func (s *GameState) MineAt(x, y int) bool {
	return s.Mines[s.index(x, y)]
}

func (s *GameState) neighborMines(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if s.ValidatePoint(xx, yy) && s.MineAt(xx, yy) {
				n++
			}
		}
	}
	return n
}

/*
OpenCell reveals the square at x, y. Opening a mine loses the game and
exposes only the fatal square. Opening a zero floods outward until every
reachable zero region is bordered by numbered squares. Returns -1 on a
mine, 0 otherwise.
*/
func (s *GameState) OpenCell(x, y int) int {
	i := s.index(x, y)
	if s.Mines[i] {
		/*
		 * The player has landed on a mine. Bad luck. Expose the mine
		 * that killed them, but not the rest.
		 */
		s.Dead = true
		s.PlayerGrid[i] = ExplodedMine
		return -1
	}

	queue := []int{i}
	s.PlayerGrid[i] = todo
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		xx, yy := j%s.Width, j/s.Width
		v := s.neighborMines(xx, yy)
		s.PlayerGrid[j] = CellState(v)
		if v != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := xx+dx, yy+dy
				if !s.ValidatePoint(nx, ny) {
					continue
				}
				n := s.index(nx, ny)
				if s.PlayerGrid[n] == Unknown {
					s.PlayerGrid[n] = todo
					queue = append(queue, n)
				}
			}
		}
	}

	/*
	 * See if exactly as many squares are still covered as there are
	 * mines. If so the game is won; fill in mine markers on all
	 * covered squares.
	 */
	var ncovered int
	for j := range s.PlayerGrid {
		if s.PlayerGrid[j] < 0 {
			ncovered++
		}
	}
	if ncovered == s.MineCount {
		for j := range s.PlayerGrid {
			if s.PlayerGrid[j] == Unknown {
				s.PlayerGrid[j] = UnflaggedMine
			}
		}
		s.Won = true
	}
	return 0
}

// FlagCell toggles a flag on a covered square.
func (s *GameState) FlagCell(x, y int) {
	i := s.index(x, y)
	if s.PlayerGrid[i] == Unknown {
		s.PlayerGrid[i] = Flagged
	} else if s.PlayerGrid[i] == Flagged {
		s.PlayerGrid[i] = Unknown
	}
}

/*
ChordCell opens every unflagged neighbor of a numbered square whose flag
count already matches its number.
*/
func (s *GameState) ChordCell(x, y int) {
	i := s.index(x, y)
	if !s.PlayerGrid[i].Open() {
		return
	}
	c := int(s.PlayerGrid[i])
	var (
		covered []int
		flags   int
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 || !s.ValidatePoint(x+dx, y+dy) {
				continue
			}
			j := s.index(x+dx, y+dy)
			if s.PlayerGrid[j] == Flagged {
				flags++
			} else if s.PlayerGrid[j] == Unknown {
				covered = append(covered, j)
			}
		}
	}
	if c != flags {
		return
	}
	for _, j := range covered {
		s.OpenCell(j%s.Width, j/s.Width)
		if s.Dead || s.Won {
			return
		}
	}
}

// Forfeit ends the game as a loss and discloses the board.
func (s *GameState) Forfeit() {
	if !(s.Dead || s.Won) {
		s.Dead = true
	}
	s.RevealMines()
}

// RevealMines discloses the full board once the game is over: flags are
// graded, covered squares get their mine marker or number.
func (s *GameState) RevealMines() {
	if !(s.Dead || s.Won) {
		s.Dead = true
	}
	for i := range s.Mines {
		switch s.PlayerGrid[i] {
		case Flagged:
			if s.Mines[i] {
				s.PlayerGrid[i] = CorrectFlag
			} else {
				s.PlayerGrid[i] = WrongFlag
			}
		case Unknown:
			if s.Mines[i] {
				s.PlayerGrid[i] = UnflaggedMine
			} else {
				s.PlayerGrid[i] = CellState(s.neighborMines(i%s.Width, i/s.Width))
			}
		}
	}
}


