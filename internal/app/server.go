package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/kol-client/config"
	"github.com/rs/zerolog/log"
)

// Server runs the control API until SIGINT or SIGTERM, then shuts down.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
	onShutdown      []func(context.Context) error
}

// NewServer creates a Server listening on cfg.Port.
func NewServer(handler http.Handler, cfg config.ServerConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20, // 1MB
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// OnShutdown registers fn to run after the HTTP server has stopped. Hooks run
// in registration order and share the shutdown deadline.
func (s *Server) OnShutdown(fn func(context.Context) error) {
	s.onShutdown = append(s.onShutdown, fn)
}

// Run starts the server and blocks until a shutdown signal arrives or the
// listener fails.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("Control API listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, waits for in-flight ones and then runs
// the shutdown hooks. The first error is returned.
func (s *Server) Shutdown() error {
	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Control API forced to shut down")
	}

	for _, fn := range s.onShutdown {
		if hookErr := fn(ctx); hookErr != nil {
			log.Error().Err(hookErr).Msg("Shutdown hook failed")
			if err == nil {
				err = hookErr
			}
		}
	}
	if err != nil {
		return err
	}

	log.Info().Msg("Control API stopped")
	return nil
}
