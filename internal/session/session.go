package session

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/mines"
)

/*
Session binds one board to one agent. All game and agent state lives for
a single session and dies with it; nothing is persisted. The mutex makes
each move, including its full inference pass, atomic under a concurrent
host.
*/
type Session struct {
	mu        sync.Mutex
	Id        string
	State     *mines.GameState
	Agent     *agent.Agent
	StartedAt time.Time
	EndedAt   time.Time
}

// WithLock runs f while holding the session lock.
func (s *Session) WithLock(f func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s)
}

// Finished marks the end of the game once, revealing the board.
func (s *Session) Finished() {
	s.State.RevealMines()
	if s.EndedAt.IsZero() {
		s.EndedAt = time.Now().UTC()
	}
}

type sessionJSON struct {
	SessionId string     `json:"session_id"`
	Grid      mines.Grid `json:"grid"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	MineCount int        `json:"mine_count"`
	Dead      bool       `json:"dead"`
	Won       bool       `json:"won"`
	Safes     []string   `json:"known_safe"`
	Mines     []string   `json:"known_mines"`
	Sentences int        `json:"sentences"`
	StartedAt int64      `json:"started_at"`
	EndedAt   *int64     `json:"ended_at,omitempty"`
}

func cellNames(s knowledge.CellSet) []string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Sorted() {
		names = append(names, c.String())
	}
	return names
}

func (s *Session) MarshalJSON() ([]byte, error) {
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return json.Marshal(sessionJSON{
		SessionId: s.Id,
		Grid:      s.State.PlayerGrid,
		Width:     s.State.Width,
		Height:    s.State.Height,
		MineCount: s.State.MineCount,
		Dead:      s.State.Dead,
		Won:       s.State.Won,
		Safes:     cellNames(s.Agent.Safes()),
		Mines:     cellNames(s.Agent.Mines()),
		Sentences: s.Agent.SentenceCount(),
		StartedAt: s.StartedAt.UnixMilli(),
		EndedAt:   endedAt,
	})
}

var _ json.Marshaler = (*Session)(nil)

func idFromSerial(serial int) string {
	return strconv.Itoa(serial)
}


