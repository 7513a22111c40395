// Command seeder writes the bundled default records, or a collection-keyed
// JSON file, into every empty collection of the configured store. Non-empty
// collections are left alone.
//
// Flags:
//
//	--file     JSON file with {"courses": [...], ...} (default: bundled defaults)
//	--dry-run  print what would be seeded without writing
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

	"github.com/heartmarshall/fairway-backend/internal/app"
	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/seed"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

func main() {
	fileFlag := flag.String("file", "", "JSON file with collection-keyed records (default: bundled defaults)")
	dryRunFlag := flag.Bool("dry-run", false, "print what would be seeded without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	records, err := loadRecords(*fileFlag)
	if err != nil {
		logger.Error("load seed data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *dryRunFlag {
		for _, name := range domain.Collections {
			logger.Info("would seed", slog.String("collection", name), slog.Int("records", len(records[name])))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	if err := seedAll(ctx, storage.Gateway, records, logger); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		storage.Close()
		os.Exit(1)
	}
}

func loadRecords(path string) (map[string][]store.Record, error) {
	if path == "" {
		return seed.Defaults()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return seed.Parse(data)
}

func seedAll(ctx context.Context, gw *store.Gateway, records map[string][]store.Record, logger *slog.Logger) error {
	for _, name := range domain.Collections {
		recs := records[name]
		if len(recs) == 0 {
			continue
		}
		if err := gw.Seed(ctx, name, recs); err != nil {
			return err
		}
		logger.Info("collection processed", slog.String("collection", name), slog.Int("records", len(recs)))
	}
	return nil
}
