package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mchadwick/parley/internal/database"
	"github.com/mchadwick/parley/internal/events"
)

// Start runs the HTTP server and the activity event logger, then blocks
// until an interrupt or terminate signal triggers a graceful shutdown.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := events.StartLogger(ctx, s.Bus); err != nil {
		return err
	}

	go func() {
		if err := s.E.Start(s.Cfg.Addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := s.Bus.Close(); err != nil {
		slog.Error("Failed to close event bus", "error", err)
	}
	return database.Close(s.DB)
}
