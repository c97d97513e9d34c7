package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/middleware"
	"github.com/vancomm/minesweeper-agent/internal/session"
)

type App struct {
	log    *logrus.Logger
	router *http.ServeMux
	store  *session.Store
	ws     *config.WebSocket
}

func New(log *logrus.Logger) *App {
	return &App{
		log:    log,
		router: http.NewServeMux(),
		store:  session.NewStore(),
	}
}

func (a *App) Start(ctx context.Context, addr string) error {
	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()

	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Logging(a.log),
		),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.WithField("addr", addr).Info("server listening")

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}


