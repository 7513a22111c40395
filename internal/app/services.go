package app

import (
	"log/slog"

	"github.com/heartmarshall/fairway-backend/internal/adapter/provider/claude"
	"github.com/heartmarshall/fairway-backend/internal/auth"
	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/extraction"
	"github.com/heartmarshall/fairway-backend/internal/seed"
	"github.com/heartmarshall/fairway-backend/internal/service/appstate"
	"github.com/heartmarshall/fairway-backend/internal/service/ingest"
	"github.com/heartmarshall/fairway-backend/internal/service/transfer"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

// Services is the application layer built over an opened store.
type Services struct {
	State     *appstate.Service
	Extractor *extraction.Client
	Ingest    *ingest.Service
	Transfer  *transfer.Service
}

// NewServices wires the services. Nothing is loaded yet: callers Hydrate
// the state store before serving.
func NewServices(cfg *config.Config, log *slog.Logger, gw *store.Gateway) *Services {
	opts := []appstate.Option{appstate.WithPasswordHashCost(cfg.Auth.PasswordHashCost)}
	if cfg.Store.SeedOnStart {
		opts = append(opts, appstate.WithDefaults(seed.Defaults))
	}
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	state := appstate.NewService(log, gw, tokens, opts...)

	// claude.New returns a nil *Generator without an API key; keep the
	// interface nil so the client reports the missing backend.
	var gen extraction.Generator
	if g := claude.New(cfg.Extraction, log); g != nil {
		gen = g
	} else {
		log.Warn("extraction api key not set, document upload is disabled")
	}
	ext := extraction.NewClient(gen, log, cfg.Extraction)

	return &Services{
		State:     state,
		Extractor: ext,
		Ingest:    ingest.NewService(log, ext, state, cfg.Extraction.AutoCreate),
		Transfer:  transfer.NewService(log, gw),
	}
}
