package handlers

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/session"
)

func cellNames(s knowledge.CellSet) []string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Sorted() {
		names = append(names, c.String())
	}
	return names
}

// AgentMove plays a single agent turn: flag newly proven mines, then
// reveal the safest available cell (or a marked guess).
func (g *GameHandler) AgentMove(w http.ResponseWriter, r *http.Request) {
	s := g.session(w, r)
	if s == nil {
		return
	}
	var move *MoveJSON
	err := s.WithLock(func(s *session.Session) error {
		if s.State.Dead || s.State.Won {
			return fmt.Errorf("game is over")
		}
		res, err := s.Agent.Step(s.State)
		if err != nil {
			return err
		}
		if res.Moved {
			move = moveJSON(res.Move, cellNames(knowledge.NewCellSet(res.Flags...)))
		}
		if s.State.Dead || s.State.Won {
			s.Finished()
		}
		return nil
	})
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	sendJSONOrLog(w, g.log, agentMoveResponse{Move: move, Session: s})
}

// Solve lets the agent play the game out to a win or a loss.
func (g *GameHandler) Solve(w http.ResponseWriter, r *http.Request) {
	s := g.session(w, r)
	if s == nil {
		return
	}
	err := s.WithLock(func(s *session.Session) error {
		if s.State.Dead || s.State.Won {
			return fmt.Errorf("game is over")
		}
		outcome, err := s.Agent.Play(s.State, 0)
		if err != nil {
			return err
		}
		g.log.WithFields(logrus.Fields{
			"id":      s.Id,
			"outcome": outcome.String(),
		}).Info("agent solve finished")
		s.Finished()
		return nil
	})
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	sendJSONOrLog(w, g.log, s)
}

// Hints exposes the inferred sets for display; read-only.
func (g *GameHandler) Hints(w http.ResponseWriter, r *http.Request) {
	s := g.session(w, r)
	if s == nil {
		return
	}
	var hints hintsResponse
	_ = s.WithLock(func(s *session.Session) error {
		hints = hintsResponse{
			Safes:     cellNames(s.Agent.Safes()),
			Mines:     cellNames(s.Agent.Mines()),
			Moves:     cellNames(s.Agent.Moves()),
			Sentences: s.Agent.SentenceCount(),
		}
		return nil
	})
	sendJSONOrLog(w, g.log, hints)
}


