package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

func (p GameParams) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) ValidatePoint(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// A playable board needs at least one mine-free cell for the first click.
func (p GameParams) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("degenerate grid %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount > p.Width*p.Height-1 {
		return fmt.Errorf(
			"%d mines do not fit a %dx%d grid",
			p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}


