package knowledge

import (
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// checkInvariants asserts the properties that must hold after any
// operation: sentence counts within bounds, safe and mine sets disjoint.
func checkInvariants(t *testing.T, b *Base) {
	t.Helper()
	for _, s := range b.knowledge {
		assert.GreaterOrEqual(t, s.Count(), 0, "sentence %s", s)
		assert.LessOrEqual(t, s.Count(), s.Size(), "sentence %s", s)
		assert.False(t, s.Vacuous(), "vacuous sentence %s not pruned", s)
	}
	for c := range b.safes {
		assert.False(t, b.mines.Has(c), "cell %s both safe and mine", c)
	}
}

func TestSingleCellGrid(t *testing.T) {
	b := NewBase(1, 1, testRand())

	require.NoError(t, b.AddKnowledge(Cell{0, 0}, 0))

	// no neighbors, no sentence; the game is trivially over
	assert.Equal(t, 0, b.SentenceCount())
	assert.True(t, b.Safes().Has(Cell{0, 0}))

	_, ok := b.SafeMove()
	assert.False(t, ok)
	_, ok = b.RandomMove()
	assert.False(t, ok)

	checkInvariants(t, b)
}

func TestZeroCountMarksAllNeighborsSafe(t *testing.T) {
	b := NewBase(3, 3, testRand())

	require.NoError(t, b.AddKnowledge(Cell{1, 1}, 0))

	safes := b.Safes()
	assert.Equal(t, 9, safes.Len())
	assert.Equal(t, 0, b.Mines().Len())
	assert.Equal(t, 0, b.SentenceCount())
	checkInvariants(t, b)
}

func TestFullCountMarksAllNeighborsMines(t *testing.T) {
	b := NewBase(2, 2, testRand())

	require.NoError(t, b.AddKnowledge(Cell{0, 0}, 3))

	mines := b.Mines()
	assert.True(t, mines.Equal(NewCellSet(Cell{1, 0}, Cell{0, 1}, Cell{1, 1})))
	checkInvariants(t, b)
}

// Classic corner-mine deduction: 3x3 grid, mine at 0:0 only. Revealing
// enough zero cells pins the mine and proves everything else safe.
func TestCornerMineDeduction(t *testing.T) {
	b := NewBase(3, 3, testRand())

	require.NoError(t, b.AddKnowledge(Cell{2, 2}, 0))
	require.NoError(t, b.AddKnowledge(Cell{1, 1}, 1))
	require.NoError(t, b.AddKnowledge(Cell{2, 1}, 0))
	require.NoError(t, b.AddKnowledge(Cell{1, 2}, 0))

	assert.True(t, b.Mines().Equal(NewCellSet(Cell{0, 0})))
	safes := b.Safes()
	assert.Equal(t, 8, safes.Len())
	assert.False(t, safes.Has(Cell{0, 0}))
	checkInvariants(t, b)
}

// {A,B,C} = 1 together with {A,B} = 1 must derive {C} = 0.
func TestSubsetElimination(t *testing.T) {
	b := NewBase(3, 1, testRand())
	A, B, C := Cell{0, 0}, Cell{1, 0}, Cell{2, 0}

	b.insert(NewSentence(NewCellSet(A, B, C), 1))
	b.insert(NewSentence(NewCellSet(A, B), 1))
	b.propagate()

	assert.True(t, b.Safes().Has(C))
	assert.False(t, b.Safes().Has(A))
	assert.False(t, b.Safes().Has(B))
	assert.Equal(t, 0, b.Mines().Len())
	checkInvariants(t, b)
}

// {A,B,C} = 2 together with {A,B} = 1 must derive {C} = 1, a mine.
func TestSubsetEliminationDerivesMine(t *testing.T) {
	b := NewBase(3, 1, testRand())
	A, B, C := Cell{0, 0}, Cell{1, 0}, Cell{2, 0}

	b.insert(NewSentence(NewCellSet(A, B, C), 2))
	b.insert(NewSentence(NewCellSet(A, B), 1))
	b.propagate()

	assert.True(t, b.Mines().Has(C))
	assert.False(t, b.Mines().Has(A))
	checkInvariants(t, b)
}

func TestDuplicateSentencesAreNotInserted(t *testing.T) {
	b := NewBase(3, 1, testRand())
	A, B := Cell{0, 0}, Cell{1, 0}

	assert.True(t, b.insert(NewSentence(NewCellSet(A, B), 1)))
	assert.False(t, b.insert(NewSentence(NewCellSet(B, A), 1)))
	assert.Equal(t, 1, b.SentenceCount())
}

func TestPropagateReachesFixedPoint(t *testing.T) {
	b := NewBase(3, 3, testRand())

	require.NoError(t, b.AddKnowledge(Cell{2, 2}, 0))
	require.NoError(t, b.AddKnowledge(Cell{1, 1}, 1))

	sentences := b.SentenceCount()
	safes := b.Safes()
	mines := b.Mines()

	// reprocessing with no new input must change nothing
	b.propagate()

	assert.Equal(t, sentences, b.SentenceCount())
	assert.True(t, safes.Equal(b.Safes()))
	assert.True(t, mines.Equal(b.Mines()))
}

func TestSafeMoveTieBreaksRowMajor(t *testing.T) {
	b := NewBase(3, 3, testRand())

	// reveal the center with no nearby mines; all neighbors become safe
	require.NoError(t, b.AddKnowledge(Cell{1, 1}, 0))

	c, ok := b.SafeMove()
	require.True(t, ok)
	assert.Equal(t, Cell{0, 0}, c)

	require.NoError(t, b.AddKnowledge(c, 0))
	c, ok = b.SafeMove()
	require.True(t, ok)
	assert.Equal(t, Cell{1, 0}, c)
}

func TestSafeMoveEmpty(t *testing.T) {
	b := NewBase(4, 4, testRand())

	_, ok := b.SafeMove()
	assert.False(t, ok)

	// with no inferences the random fallback must still find a cell
	c, ok := b.RandomMove()
	require.True(t, ok)
	assert.True(t, 0 <= c.X && c.X < 4)
	assert.True(t, 0 <= c.Y && c.Y < 4)
}

func TestRandomMoveExcludesMovesAndMines(t *testing.T) {
	b := NewBase(2, 2, testRand())

	// 0:0 revealed with all three neighbors mines
	require.NoError(t, b.AddKnowledge(Cell{0, 0}, 3))

	_, ok := b.RandomMove()
	assert.False(t, ok, "every cell is revealed or a proven mine")
}

func TestAddKnowledgeContractViolations(t *testing.T) {
	b := NewBase(3, 3, testRand())

	assert.Error(t, b.AddKnowledge(Cell{3, 0}, 0), "out of bounds")
	assert.Error(t, b.AddKnowledge(Cell{0, 0}, 4), "count above neighbor count")
	assert.Error(t, b.AddKnowledge(Cell{0, 0}, -1), "negative count")

	require.NoError(t, b.AddKnowledge(Cell{0, 0}, 1))
	assert.Error(t, b.AddKnowledge(Cell{0, 0}, 1), "duplicate reveal")
}

func TestKnownSetsGrowMonotonically(t *testing.T) {
	b := NewBase(3, 3, testRand())

	var prevSafes, prevMines CellSet = NewCellSet(), NewCellSet()
	reveals := []struct {
		cell  Cell
		count int
	}{
		{Cell{2, 2}, 0},
		{Cell{1, 1}, 1},
		{Cell{2, 1}, 0},
		{Cell{1, 2}, 0},
	}
	for _, r := range reveals {
		require.NoError(t, b.AddKnowledge(r.cell, r.count))
		assert.True(t, b.Safes().ContainsAll(prevSafes))
		assert.True(t, b.Mines().ContainsAll(prevMines))
		prevSafes, prevMines = b.Safes(), b.Mines()
		checkInvariants(t, b)
	}
}

func TestKnownMineFoldedIntoNewSentence(t *testing.T) {
	b := NewBase(2, 2, testRand())

	// every neighbor of 0:0 is a mine
	require.NoError(t, b.AddKnowledge(Cell{0, 0}, 3))

	// a later reveal must not resurrect resolved cells as variables;
	// feeding a known mine's cell is a contract violation, but feeding a
	// neighbor count that includes known mines must deduct them
	b2 := NewBase(3, 1, testRand())
	require.NoError(t, b2.AddKnowledge(Cell{0, 0}, 1)) // {1:0} = 1, a mine
	require.True(t, b2.Mines().Has(Cell{1, 0}))
	require.NoError(t, b2.AddKnowledge(Cell{2, 0}, 1)) // 1:0 accounts for it
	assert.Equal(t, 0, b2.SentenceCount())
	checkInvariants(t, b2)
}


