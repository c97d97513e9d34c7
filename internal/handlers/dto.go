package handlers

import (
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/session"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type NewGameParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

type PosParams struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func parseNewGameParams(query url.Values) (p NewGameParams, err error) {
	err = dec.Decode(&p, query)
	return
}

func parsePosParams(query url.Values) (p PosParams, err error) {
	err = dec.Decode(&p, query)
	return
}

type MoveJSON struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Guess bool     `json:"guess"`
	Flags []string `json:"flags,omitempty"`
}

type agentMoveResponse struct {
	Move    *MoveJSON        `json:"move"`
	Session *session.Session `json:"session"`
}

func moveJSON(m agent.Move, flags []string) *MoveJSON {
	return &MoveJSON{
		X:     m.Cell.X,
		Y:     m.Cell.Y,
		Guess: m.Guess,
		Flags: flags,
	}
}

type hintsResponse struct {
	Safes     []string `json:"known_safe"`
	Mines     []string `json:"known_mines"`
	Moves     []string `json:"moves_made"`
	Sentences int      `json:"sentences"`
}


