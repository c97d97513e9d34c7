package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-agent/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.store, a.ws, createRand())

	a.router.HandleFunc("GET /v1/status", game.Status)

	a.router.HandleFunc("POST /v1/game", game.NewGame)
	a.router.HandleFunc("GET /v1/game/{id}", game.Fetch)
	a.router.HandleFunc("POST /v1/game/{id}/open", game.Open)
	a.router.HandleFunc("POST /v1/game/{id}/flag", game.Flag)
	a.router.HandleFunc("POST /v1/game/{id}/chord", game.Chord)
	a.router.HandleFunc("POST /v1/game/{id}/forfeit", game.Forfeit)

	a.router.HandleFunc("POST /v1/game/{id}/agent/move", game.AgentMove)
	a.router.HandleFunc("POST /v1/game/{id}/agent/solve", game.Solve)
	a.router.HandleFunc("GET /v1/game/{id}/agent/hints", game.Hints)

	a.router.HandleFunc("/v1/game/{id}/connect", game.ConnectWS)
}


