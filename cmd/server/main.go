package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/octofit/internal/config"
	"github.com/nfrund/octofit/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Create a new server instance; routes are registered during wiring.
	s, err := server.New(cfg, server.Options{})
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
