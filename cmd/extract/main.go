// Command extract runs document extraction on local files and prints the
// records as JSON. With --ingest the records are stored like an upload:
// courses are resolved or created and log entries are written.
//
// Flags:
//
//	--ingest   store the records in the configured store
//	--author   author written into ingested log entries
//	--text     extra pasted text to extract alongside the files
//
// Usage: extract [flags] FILE...
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/app"
	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/extraction"
	"github.com/heartmarshall/fairway-backend/internal/service/ingest"
)

func main() {
	ingestFlag := flag.Bool("ingest", false, "store the records in the configured store")
	authorFlag := flag.String("author", "extract-cli", "author written into ingested log entries")
	textFlag := flag.String("text", "", "extra pasted text to extract")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	docs, err := readDocuments(flag.Args(), *textFlag)
	if err != nil {
		logger.Error("read documents", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	svcs := app.NewServices(cfg, logger, storage.Gateway)
	if err := svcs.State.Hydrate(ctx); err != nil {
		logger.Error("hydrate state", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var out any
	if *ingestFlag {
		out, err = svcs.Ingest.Ingest(ctx, ingest.Input{Documents: docs, Author: *authorFlag})
	} else {
		out, err = svcs.Extractor.Extract(ctx, docs, svcs.State.CourseNames())
	}
	if err != nil {
		logger.Error("extraction failed",
			slog.String("category", domain.ExtractionCategoryOf(err).String()),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("write output", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func readDocuments(paths []string, text string) ([]extraction.Document, error) {
	docs := make([]extraction.Document, 0, len(paths)+1)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, extraction.Document{Name: filepath.Base(p), Bytes: data})
	}
	if text != "" {
		docs = append(docs, extraction.Document{Name: "pasted text", Text: text})
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no input: pass files or --text")
	}
	return docs, nil
}
