package session

import (
	"encoding/json"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

func setupSession(t *testing.T) (*Store, *Session) {
	t.Helper()
	r := rand.New(rand.NewPCG(1, 2))
	params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}
	state, err := mines.NewGame(&params, 4, 4, r)
	require.NoError(t, err)

	ag := agent.New(params.Width, params.Height, r)
	require.NoError(t, ag.Observe(state))

	st := NewStore()
	return st, st.Create(state, ag)
}

func TestStoreCreateAndGet(t *testing.T) {
	st, s := setupSession(t)

	got, err := st.Get(s.Id)
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Count())
}

func TestStoreGetMissing(t *testing.T) {
	st := NewStore()
	_, err := st.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	st, s := setupSession(t)

	st.Delete(s.Id)
	_, err := st.Get(s.Id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, st.Count())

	st.Delete(s.Id) // absent, no-op
}

func TestStoreIdsAreUnique(t *testing.T) {
	st, _ := setupSession(t)
	r := rand.New(rand.NewPCG(3, 4))
	params := mines.GameParams{Width: 4, Height: 4, MineCount: 2}
	state, err := mines.NewGame(&params, 0, 0, r)
	require.NoError(t, err)

	s2 := st.Create(state, agent.New(4, 4, r))
	s3 := st.Create(state, agent.New(4, 4, r))
	assert.NotEqual(t, s2.Id, s3.Id)
	assert.Equal(t, 3, st.Count())
}

func TestSessionJSON(t *testing.T) {
	_, s := setupSession(t)

	payload, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, s.Id, decoded["session_id"])
	assert.Equal(t, float64(9), decoded["width"])
	assert.Equal(t, float64(10), decoded["mine_count"])
	assert.Equal(t, false, decoded["dead"])
	assert.Contains(t, decoded, "known_safe")
	assert.Contains(t, decoded, "known_mines")
	assert.NotContains(t, decoded, "ended_at")
}

func TestSessionFinishedSetsEndedAtOnce(t *testing.T) {
	_, s := setupSession(t)

	s.State.Forfeit()
	s.Finished()
	first := s.EndedAt
	require.False(t, first.IsZero())

	s.Finished()
	assert.Equal(t, first, s.EndedAt)
}

