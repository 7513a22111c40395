package document

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/fairway-backend/internal/store"
)

// Subscribe opens a live query on collection. fn receives the current list
// once the listener is registered and again after every change to the
// collection. Changes that arrive while a snapshot is being read collapse
// into one more delivery.
//
// The returned Unsubscribe stops the listener and waits until it has
// exited, so no callback starts after it returns. It must not be called
// from inside fn.
func (r *Repo) Subscribe(ctx context.Context, collection string, fn store.Listener) (store.Unsubscribe, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire listener connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("listen %s: %w", notifyChannel, err)
	}

	subCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(ctx, cancel)

	changed := make(chan struct{}, 1)
	changed <- struct{}{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer cancel()
		r.listen(subCtx, conn, collection, changed)
	}()
	go func() {
		defer wg.Done()
		r.deliver(subCtx, collection, changed, fn)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			cancel()
			wg.Wait()
		})
	}, nil
}

// listen forwards notifications for collection into changed without
// blocking. It owns conn and releases it on exit.
func (r *Repo) listen(ctx context.Context, conn *pgxpool.Conn, collection string, changed chan<- struct{}) {
	defer func() {
		unlistenCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if !conn.Conn().IsClosed() {
			_, _ = conn.Exec(unlistenCtx, "UNLISTEN "+notifyChannel)
		}
		conn.Release()
	}()

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, context.Canceled) {
				r.log.ErrorContext(ctx, "live query ended",
					slog.String("collection", collection),
					slog.String("error", err.Error()),
				)
			}
			return
		}
		if n.Payload != collection {
			continue
		}
		select {
		case changed <- struct{}{}:
		default:
		}
	}
}

// deliver reads and hands out a fresh snapshot per signal on changed.
func (r *Repo) deliver(ctx context.Context, collection string, changed <-chan struct{}, fn store.Listener) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-changed:
		}

		records, err := r.Get(ctx, collection)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.log.WarnContext(ctx, "live query snapshot failed",
				slog.String("collection", collection),
				slog.String("error", err.Error()),
			)
			continue
		}
		if ctx.Err() != nil {
			return
		}
		fn(records)
	}
}
