// Command migrate applies the embedded goose migrations to the database
// configured by DATABASE_DSN. Run it before starting the server in remote
// mode.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairway-backend/internal/app"
	"github.com/heartmarshall/fairway-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Database.DSN == "" {
		logger.Error("database.dsn is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
