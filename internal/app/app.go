package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/transport/graphql"
	"github.com/heartmarshall/fairway-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/fairway-backend/internal/transport/middleware"
	"github.com/heartmarshall/fairway-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens the store,
// hydrates the state and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store_mode", cfg.Store.Mode),
	)

	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer storage.Close()

	svcs := NewServices(cfg, logger, storage.Gateway)
	if err := svcs.State.Hydrate(ctx); err != nil {
		return fmt.Errorf("hydrate state: %w", err)
	}

	stopWatch, err := svcs.State.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch state: %w", err)
	}
	defer stopWatch()

	if cfg.Auth.AdminEmail != "" {
		if _, err := svcs.State.EnsureAdmin(ctx, "", cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(BuildVersion(), storage.Gateway.Mode().String(), storage.Checks),
		Auth:     rest.NewAuthHandler(svcs.State, logger),
		Admin:    rest.NewAdminHandler(svcs.State, logger),
		Records:  rest.NewRecordHandler(svcs.State, logger),
		Upload:   rest.NewUploadHandler(svcs.Ingest, svcs.State, cfg.Extraction.MaxPayloadBytes, logger),
		Transfer: rest.NewTransferHandler(svcs.Transfer, logger),
		GraphQL: graphql.NewHandler(
			resolver.NewResolver(logger, svcs.State).Root(),
			graphql.NewErrorPresenter(logger),
			logger,
		),
	}, rest.RouterConfig{
		Sessions:  svcs.State,
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
