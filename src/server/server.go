package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"
)

// Dependencies carries the wired endpoint handlers into the router.
type Dependencies struct {
	Status    http.HandlerFunc
	Trades    http.HandlerFunc
	Positions http.HandlerFunc
	Stream    http.HandlerFunc
}

// NewRouter mounts the read-only dashboard surface.
func NewRouter(deps Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error("\"/healthcheck\" error")
		}
	})

	r.Get("/status", deps.Status)
	r.Get("/trades", deps.Trades)
	r.Get("/positions", deps.Positions)
	r.Get("/ws", deps.Stream)

	return r
}

// StartServer runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func StartServer(port string, deps Dependencies) {
	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: NewRouter(deps),
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
