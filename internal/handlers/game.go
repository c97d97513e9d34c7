package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/mines"
	"github.com/vancomm/minesweeper-agent/internal/session"
)

type GameHandler struct {
	log   *logrus.Logger
	store *session.Store
	ws    *config.WebSocket
	rnd   *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	store *session.Store,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:   log,
		store: store,
		ws:    ws,
		rnd:   rnd,
	}
}

func (g *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.log, map[string]any{
		"status":   "ok",
		"sessions": g.store.Count(),
	})
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	gameParams, err := parseNewGameParams(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	pos, err := parsePosParams(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	params := mines.GameParams(gameParams)
	if err := params.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	if !params.ValidatePoint(pos.X, pos.Y) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(fmt.Errorf("invalid cell position")))
		return
	}

	state, err := mines.NewGame(&params, pos.X, pos.Y, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to generate a new game")
		return
	}
	ag := agent.New(params.Width, params.Height, g.rnd)
	if err := ag.Observe(state); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to prime agent")
		return
	}

	s := g.store.Create(state, ag)
	if state.Won {
		s.Finished()
	}
	g.log.WithField("id", s.Id).Info("session created")
	sendJSONOrLog(w, g.log, s)
}

func (g *GameHandler) session(w http.ResponseWriter, r *http.Request) *session.Session {
	s, err := g.store.Get(r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return nil
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch session")
		return nil
	}
	return s
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	if s := g.session(w, r); s != nil {
		sendJSONOrLog(w, g.log, s)
	}
}

func (g *GameHandler) Open(w http.ResponseWriter, r *http.Request) {
	g.playerMove(w, r, func(s *session.Session, x, y int) error {
		s.State.OpenCell(x, y)
		if s.State.Dead || s.State.Won {
			s.Finished()
			return nil
		}
		return s.Agent.Observe(s.State)
	})
}

func (g *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	g.playerMove(w, r, func(s *session.Session, x, y int) error {
		s.State.FlagCell(x, y)
		return nil
	})
}

func (g *GameHandler) Chord(w http.ResponseWriter, r *http.Request) {
	g.playerMove(w, r, func(s *session.Session, x, y int) error {
		s.State.ChordCell(x, y)
		if s.State.Dead || s.State.Won {
			s.Finished()
			return nil
		}
		return s.Agent.Observe(s.State)
	})
}

func (g *GameHandler) playerMove(
	w http.ResponseWriter, r *http.Request,
	move func(s *session.Session, x, y int) error,
) {
	pos, err := parsePosParams(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	s := g.session(w, r)
	if s == nil {
		return
	}
	err = s.WithLock(func(s *session.Session) error {
		if !s.State.ValidatePoint(pos.X, pos.Y) {
			return fmt.Errorf("invalid cell position")
		}
		if s.State.Dead || s.State.Won {
			return fmt.Errorf("game is over")
		}
		return move(s, pos.X, pos.Y)
	})
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}
	sendJSONOrLog(w, g.log, s)
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	s := g.session(w, r)
	if s == nil {
		return
	}
	if err := s.WithLock(func(s *session.Session) error {
		s.State.Forfeit()
		s.Finished()
		return nil
	}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to forfeit")
		return
	}
	sendJSONOrLog(w, g.log, s)
}


