package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-agent/internal/session"
)

/*
ConnectWS upgrades the connection and interprets newline-separated text
commands (see commandNargs) against the session, answering each batch
with the session state. Interpretation stops early once the game ends.
*/
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s := g.session(w, r)
	if s == nil {
		return
	}
	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.WithError(err).Warn("ws read")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		cmdErr := s.WithLock(func(s *session.Session) error {
			for _, cmd := range strings.Split(text, "\n") {
				if err := executeCommand(s, cmd); err != nil {
					return err
				}
				if s.State.Won || s.State.Dead {
					break
				}
			}
			return nil
		})
		if cmdErr != nil {
			if err := c.WriteJSON(wrapError(cmdErr)); err != nil {
				g.log.WithError(err).Error("ws write")
				break
			}
			continue
		}
		if err := c.WriteJSON(s); err != nil {
			g.log.WithError(err).Error("ws write")
			break
		}
	}
}


