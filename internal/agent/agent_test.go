package agent

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestChooseMovePrefersSafe(t *testing.T) {
	a := New(3, 3, testRand())

	// no knowledge yet: any move is a guess
	move, ok := a.ChooseMove()
	require.True(t, ok)
	assert.True(t, move.Guess)

	require.NoError(t, a.Record(knowledge.Cell{X: 1, Y: 1}, 0))
	move, ok = a.ChooseMove()
	require.True(t, ok)
	assert.False(t, move.Guess)
	assert.Equal(t, knowledge.Cell{X: 0, Y: 0}, move.Cell)
}

func TestChooseMoveNoneLeft(t *testing.T) {
	a := New(1, 1, testRand())
	require.NoError(t, a.Record(knowledge.Cell{X: 0, Y: 0}, 0))

	_, ok := a.ChooseMove()
	assert.False(t, ok)
}

func TestPendingFlagsReportsEachMineOnce(t *testing.T) {
	a := New(2, 2, testRand())
	require.NoError(t, a.Record(knowledge.Cell{X: 0, Y: 0}, 3))

	flags := a.PendingFlags()
	assert.Len(t, flags, 3)
	assert.Empty(t, a.PendingFlags())
}

func TestObserveFeedsEveryRevealOnce(t *testing.T) {
	params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}
	r := testRand()
	state, err := mines.NewGame(&params, 4, 4, r)
	require.NoError(t, err)

	a := New(params.Width, params.Height, r)
	require.NoError(t, a.Observe(state))

	var open int
	for _, cs := range state.PlayerGrid {
		if cs.Open() {
			open++
		}
	}
	assert.Equal(t, open, a.Moves().Len())

	// observing again must be a no-op, not a contract violation
	require.NoError(t, a.Observe(state))
	assert.Equal(t, open, a.Moves().Len())
}

func TestPlayMineFreeBoardWins(t *testing.T) {
	params := mines.GameParams{Width: 4, Height: 4, MineCount: 0}
	r := testRand()
	state, err := mines.NewGame(&params, 0, 0, r)
	require.NoError(t, err)

	a := New(params.Width, params.Height, r)
	outcome, err := a.Play(state, 0)
	require.NoError(t, err)
	assert.Equal(t, Won, outcome)
}

func TestPlaySingleCell(t *testing.T) {
	params := mines.GameParams{Width: 1, Height: 1, MineCount: 0}
	r := testRand()
	state, err := mines.NewGame(&params, 0, 0, r)
	require.NoError(t, err)

	a := New(1, 1, r)
	outcome, err := a.Play(state, 0)
	require.NoError(t, err)
	assert.Equal(t, Won, outcome)
}

// Full seeded games: every game must end in a win or a loss without the
// agent ever tripping a knowledge-base contract violation or stepping on
// a cell it proved safe.
func TestPlayFullGames(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	tests := []struct {
		name   string
		params mines.GameParams
	}{
		{name: "4x4(2)", params: mines.GameParams{Width: 4, Height: 4, MineCount: 2}},
		{name: "9x9(10)", params: mines.GameParams{Width: 9, Height: 9, MineCount: 10}},
		{name: "16x16(40)", params: mines.GameParams{Width: 16, Height: 16, MineCount: 40}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for i := range uint64(25) {
				r := rand.New(rand.NewPCG(i, i+1))
				params := test.params
				x, y := r.IntN(params.Width), r.IntN(params.Height)

				state, err := mines.NewGame(&params, x, y, r)
				require.NoError(t, err)

				a := New(params.Width, params.Height, r)
				outcome, err := a.Play(state, 0)
				require.NoError(t, err)
				assert.Contains(t, []Outcome{Won, Lost}, outcome)
				assert.True(t, state.Won || state.Dead)

				// safe and mine conclusions must never overlap
				for c := range a.Safes() {
					assert.False(t, a.Mines().Has(c))
				}
			}
		})
	}
}


