package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal, then
// shuts everything down.
func (s *Server) Start() error {
	s.Shell.Start(s.ctx)

	errCh := make(chan error, 1)
	go func() {
		addr := s.Cfg.GetAppAddr()
		s.logger.Info("OctoFit Tracker listening", "addr", addr, "api", s.Cfg.GetAPIBaseURL())
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	var serveErr error
	select {
	case <-quit:
	case serveErr = <-errCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return errors.Join(serveErr, s.Shutdown(ctx))
}

// Shutdown stops accepting requests, unmounts every view and shuts the
// modules down in reverse boot order.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.Shell.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			s.logger.Error("Module shutdown failed", "module", s.modules[i].Name(), "error", err)
			errs = append(errs, err)
		}
	}
	s.release()
	s.logger.Info("Server stopped")
	return errors.Join(errs...)
}
