// Command migrate applies the embedded database migrations and exits.
// It is intended for deploy pipelines and local development.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/app"
	"github.com/heartmarshall/fitlog-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("running migrations", slog.String("version", app.BuildVersion()))

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		logger.Error("migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
