package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/fairway-backend/internal/config"
)

// NewLogger creates the process logger on os.Stderr and installs it as the
// slog default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger builds a logger writing to w.
//
// Format "json" produces structured JSON output (production); anything else
// produces text with source locations (development). Level is one of debug,
// info, warn, error (case-insensitive) and defaults to info.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	asJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !asJSON,
	}

	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
