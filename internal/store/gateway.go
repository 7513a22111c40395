// Package store is the unified data gateway. Every read and write of the
// application goes through a Gateway, which forwards it to one injected
// Adapter: browser-style local storage or the remote document database.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Mode names the backing store an Adapter talks to.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	return m == ModeLocal || m == ModeRemote
}

// Listener receives the full current list of a collection.
// The slice and its records belong to the listener.
type Listener func(records []Record)

// Unsubscribe stops a subscription. It is safe to call more than once.
type Unsubscribe func()

// Adapter is the contract both persistence adapters implement.
type Adapter interface {
	Get(ctx context.Context, collection string) ([]Record, error)
	// Save upserts rec and returns the id it is stored under.
	Save(ctx context.Context, collection string, rec Record) (string, error)
	Update(ctx context.Context, collection, id string, partial Record) error
	Delete(ctx context.Context, collection, id string) error
	Subscribe(ctx context.Context, collection string, fn Listener) (Unsubscribe, error)
	// Seed writes records only when the collection is empty.
	Seed(ctx context.Context, collection string, records []Record) error
	Mode() Mode
}

type adapterBox struct{ Adapter }

// Gateway dispatches operations to the current Adapter.
type Gateway struct {
	current atomic.Pointer[adapterBox]
	log     *slog.Logger
}

// New creates a Gateway backed by adapter.
func New(adapter Adapter, log *slog.Logger) *Gateway {
	g := &Gateway{log: log.With("component", "gateway")}
	g.Use(adapter)
	return g
}

// Use swaps the backing adapter. Operations already in flight finish on the
// adapter they started with.
func (g *Gateway) Use(adapter Adapter) {
	g.current.Store(&adapterBox{adapter})
	g.log.Info("gateway adapter selected", slog.String("mode", adapter.Mode().String()))
}

// Mode returns the mode of the current adapter.
func (g *Gateway) Mode() Mode {
	return g.adapter().Mode()
}

func (g *Gateway) adapter() Adapter {
	return g.current.Load().Adapter
}

func checkCollection(collection string) error {
	if strings.TrimSpace(collection) == "" {
		return fmt.Errorf("collection name is empty")
	}
	return nil
}

// Get returns every record of collection.
func (g *Gateway) Get(ctx context.Context, collection string) ([]Record, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	records, err := g.adapter().Get(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", collection, err)
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Save upserts rec and returns its id.
func (g *Gateway) Save(ctx context.Context, collection string, rec Record) (string, error) {
	if err := checkCollection(collection); err != nil {
		return "", err
	}
	a := g.adapter()
	id, err := a.Save(ctx, collection, rec)
	if err != nil {
		return "", fmt.Errorf("save %s/%s: %w", collection, rec.ID(), err)
	}
	g.log.DebugContext(ctx, "record saved",
		slog.String("mode", a.Mode().String()),
		slog.String("collection", collection),
		slog.String("id", id),
	)
	return id, nil
}

// Update merges partial onto the record with id.
func (g *Gateway) Update(ctx context.Context, collection, id string, partial Record) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := g.adapter().Update(ctx, collection, id, partial); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes the record with id. Missing ids are not an error.
func (g *Gateway) Delete(ctx context.Context, collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := g.adapter().Delete(ctx, collection, id); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// Subscribe registers fn for live snapshots of collection. fn is called
// with the current list shortly after subscribing, even when it is empty.
func (g *Gateway) Subscribe(ctx context.Context, collection string, fn Listener) (Unsubscribe, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	unsub, err := g.adapter().Subscribe(ctx, collection, fn)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", collection, err)
	}
	var once sync.Once
	return func() { once.Do(unsub) }, nil
}

// Seed populates an empty collection. It is a no-op when the collection
// already holds at least one record.
func (g *Gateway) Seed(ctx context.Context, collection string, records []Record) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	if err := g.adapter().Seed(ctx, collection, records); err != nil {
		return fmt.Errorf("seed %s: %w", collection, err)
	}
	return nil
}
