package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fairway-backend/internal/adapter/blob"
	"github.com/heartmarshall/fairway-backend/internal/adapter/blob/file"
	"github.com/heartmarshall/fairway-backend/internal/adapter/blob/memory"
	"github.com/heartmarshall/fairway-backend/internal/adapter/blob/redis"
	"github.com/heartmarshall/fairway-backend/internal/adapter/local"
	"github.com/heartmarshall/fairway-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairway-backend/internal/adapter/postgres/document"
	"github.com/heartmarshall/fairway-backend/internal/config"
	"github.com/heartmarshall/fairway-backend/internal/store"
	"github.com/heartmarshall/fairway-backend/internal/transport/rest"
)

// Storage is the opened persistence layer: the gateway over the selected
// adapter plus health checks for the backing services.
type Storage struct {
	Gateway *store.Gateway
	Checks  map[string]rest.Pinger

	closers []func()
}

// Close releases connections in reverse order of opening.
func (s *Storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// OpenStorage connects the adapter selected by cfg.Store: the PostgreSQL
// document store in remote mode, otherwise the local adapter over a
// memory, file or Redis blob backend.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	s := &Storage{Checks: make(map[string]rest.Pinger)}

	var adapter store.Adapter
	if cfg.Store.IsRemote() {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pool.Close)
		s.Checks["database"] = pool
		adapter = document.New(pool, postgres.NewTxManager(pool), log, cfg.Store.SeedBatchSize)
	} else {
		blobs, err := s.openBlobs(ctx, cfg)
		if err != nil {
			s.Close()
			return nil, err
		}
		adapter = local.New(blobs, log)
	}

	s.Gateway = store.New(adapter, log)
	log.Info("storage opened",
		slog.String("mode", adapter.Mode().String()),
		slog.String("local_backend", cfg.Store.LocalBackend),
	)
	return s, nil
}

func (s *Storage) openBlobs(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.Store.LocalBackend {
	case config.LocalBackendMemory:
		return memory.New(), nil
	case config.LocalBackendFile:
		fs, err := file.New(cfg.Store.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open data dir: %w", err)
		}
		return fs, nil
	case config.LocalBackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = client.Close() })
		s.Checks["redis"] = rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		return redis.New(client, cfg.Redis.KeyPrefix), nil
	}
	return nil, fmt.Errorf("unknown local backend %q", cfg.Store.LocalBackend)
}
