// Package local implements the local persistence adapter: every collection
// is one JSON array stored in a blob.Store, with in-process subscribers
// notified synchronously after each write.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/fairway-backend/internal/adapter/blob"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

var _ store.Adapter = (*Adapter)(nil)

// Adapter persists collections through a blob.Store.
//
// Writes and the notifications they trigger are serialised, so subscribers
// observe writes in the order they happen. Listeners run on the writing
// goroutine and must not write back to the adapter synchronously.
type Adapter struct {
	blobs blob.Store
	log   *slog.Logger

	writeMu sync.Mutex

	emMu     sync.Mutex
	emitters map[string]*emitter
}

// New creates an Adapter over blobs.
func New(blobs blob.Store, log *slog.Logger) *Adapter {
	return &Adapter{
		blobs:    blobs,
		log:      log.With("adapter", "local"),
		emitters: make(map[string]*emitter),
	}
}

func (a *Adapter) Mode() store.Mode { return store.ModeLocal }

func (a *Adapter) emitter(collection string) *emitter {
	a.emMu.Lock()
	defer a.emMu.Unlock()
	em, ok := a.emitters[collection]
	if !ok {
		em = newEmitter()
		a.emitters[collection] = em
	}
	return em
}

// load reads a collection. Missing or corrupt data is an empty list.
func (a *Adapter) load(ctx context.Context, collection string) ([]store.Record, error) {
	data, err := a.blobs.Read(ctx, collection)
	if errors.Is(err, blob.ErrNotFound) {
		return []store.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}

	var records []store.Record
	if err := json.Unmarshal(data, &records); err != nil {
		a.log.WarnContext(ctx, "corrupt collection treated as empty",
			slog.String("collection", collection),
			slog.String("error", err.Error()),
		)
		return []store.Record{}, nil
	}

	out := records[:0]
	for _, r := range records {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

// setLocked persists records and notifies subscribers. writeMu must be held.
func (a *Adapter) setLocked(ctx context.Context, collection string, records []store.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := a.blobs.Write(ctx, collection, data); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	a.emitter(collection).emit(records)
	return nil
}

// Get returns the stored list of collection.
func (a *Adapter) Get(ctx context.Context, collection string) ([]store.Record, error) {
	return a.load(ctx, collection)
}

// Set replaces the whole collection and notifies subscribers.
func (a *Adapter) Set(ctx context.Context, collection string, records []store.Record) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	if records == nil {
		records = []store.Record{}
	}
	return a.setLocked(ctx, collection, store.CloneAll(records))
}

// Save upserts rec. A record without an id gets a time-based local id;
// an existing record has the new fields merged over it.
func (a *Adapter) Save(ctx context.Context, collection string, rec store.Record) (string, error) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	records, err := a.load(ctx, collection)
	if err != nil {
		return "", err
	}

	rec = rec.Clone()
	if rec == nil {
		rec = store.Record{}
	}
	id := rec.ID()
	if id == "" {
		id = domain.NewLocalID()
		rec[store.IDField] = id
	}

	if idx := store.FindIndex(records, id); idx >= 0 {
		records[idx].Merge(rec)
	} else {
		records = append(records, rec)
	}

	if err := a.setLocked(ctx, collection, records); err != nil {
		return "", err
	}
	return id, nil
}

// Update merges partial onto the record with id. A missing id is a no-op.
func (a *Adapter) Update(ctx context.Context, collection, id string, partial store.Record) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	records, err := a.load(ctx, collection)
	if err != nil {
		return err
	}

	idx := store.FindIndex(records, id)
	if idx < 0 {
		a.log.DebugContext(ctx, "update of missing record ignored",
			slog.String("collection", collection),
			slog.String("id", id),
		)
		return nil
	}

	patch := partial.Clone()
	delete(patch, store.IDField)
	records[idx].Merge(patch)

	return a.setLocked(ctx, collection, records)
}

// Delete removes the record with id. A missing id leaves the collection
// untouched and notifies nobody.
func (a *Adapter) Delete(ctx context.Context, collection, id string) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	records, err := a.load(ctx, collection)
	if err != nil {
		return err
	}

	idx := store.FindIndex(records, id)
	if idx < 0 {
		return nil
	}
	records = append(records[:idx], records[idx+1:]...)

	return a.setLocked(ctx, collection, records)
}

// Seed writes records when the collection is empty. The emptiness check and
// the write happen under the write lock, so concurrent seeds write once.
func (a *Adapter) Seed(ctx context.Context, collection string, records []store.Record) error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	existing, err := a.load(ctx, collection)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	seeded := store.CloneAll(records)
	for _, r := range seeded {
		if r.ID() == "" {
			r[store.IDField] = domain.NewLocalID()
		}
	}

	if err := a.setLocked(ctx, collection, seeded); err != nil {
		return err
	}
	a.log.InfoContext(ctx, "collection seeded",
		slog.String("collection", collection),
		slog.Int("records", len(seeded)),
	)
	return nil
}

// Subscribe registers fn and delivers the current list from a separate
// goroutine. The initial delivery is serialised with writes and reads the
// store at delivery time, so it is never older than the last completed
// write. The subscription also ends when ctx is cancelled.
func (a *Adapter) Subscribe(ctx context.Context, collection string, fn store.Listener) (store.Unsubscribe, error) {
	em := a.emitter(collection)
	id, sub := em.add(fn)

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() { em.remove(id) })
	}
	stop := context.AfterFunc(ctx, unsubscribe)

	loadCtx := context.WithoutCancel(ctx)
	go func() {
		a.writeMu.Lock()
		defer a.writeMu.Unlock()

		if !sub.active.Load() {
			return
		}
		records, err := a.load(loadCtx, collection)
		if err != nil {
			a.log.ErrorContext(loadCtx, "initial snapshot",
				slog.String("collection", collection),
				slog.String("error", err.Error()),
			)
			records = []store.Record{}
		}
		if sub.active.Load() {
			fn(records)
		}
	}()

	return func() {
		stop()
		unsubscribe()
	}, nil
}

// SubscriberCount returns the number of live subscriptions of collection.
func (a *Adapter) SubscriberCount(collection string) int {
	return a.emitter(collection).len()
}
