// Command seeder bootstraps the database: admin account, predefined
// exercise catalog and measure types. Safe to re-run; existing rows are
// skipped.
//
// Flags:
//
//	--admin-name   override the seed admin display name
//	--admin-email  override the seed admin email
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/fitlog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/exercise"
	"github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/measurement"
	"github.com/heartmarshall/fitlog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/fitlog-backend/internal/app"
	"github.com/heartmarshall/fitlog-backend/internal/config"
	"github.com/heartmarshall/fitlog-backend/internal/seeder"
)

func main() {
	adminNameFlag := flag.String("admin-name", "", "override the seed admin display name")
	adminEmailFlag := flag.String("admin-email", "", "override the seed admin email")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	adminName := cfg.Seed.AdminName
	if *adminNameFlag != "" {
		adminName = *adminNameFlag
	}
	adminEmail := cfg.Seed.AdminEmail
	if *adminEmailFlag != "" {
		adminEmail = *adminEmailFlag
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, user.New(pool), exercise.New(pool), measurement.NewTypeRepo(pool))
	if err := s.Run(ctx, adminName, adminEmail); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed", slog.String("version", app.BuildVersion()))
}
