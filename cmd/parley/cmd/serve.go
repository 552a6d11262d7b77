package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mchadwick/parley/internal/config"
	"github.com/mchadwick/parley/internal/logging"
	"github.com/mchadwick/parley/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		logging.New()

		cfg, err := config.New()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}

		s, err := server.New(cfg)
		if err != nil {
			slog.Error("Failed to initialize server", "error", err)
			os.Exit(1)
		}
		s.RegisterRoutes()

		slog.Info("Starting server", "addr", cfg.Addr)
		if err := s.Start(); err != nil {
			slog.Error("Server exited with error", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
