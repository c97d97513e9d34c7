package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

var ErrNotFound = fmt.Errorf("session not found")

// Store is an in-process session registry. Sessions are dropped on
// restart by design; there is no durable storage behind it.
type Store struct {
	mu       sync.Mutex
	serial   int
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Create(state *mines.GameState, ag *agent.Agent) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.serial++
	s := &Session{
		Id:        idFromSerial(st.serial),
		State:     state,
		Agent:     ag,
		StartedAt: time.Now().UTC(),
	}
	st.sessions[s.Id] = s
	return s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes a session without checking if it existed.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}

func (st *Store) Count() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return len(st.sessions)
}


