// Package document implements the remote persistence adapter: collections of
// JSON documents in one PostgreSQL table, with live subscriptions driven by
// LISTEN/NOTIFY.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fairway-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

const (
	table = "documents"

	// notifyChannel is raised by the documents trigger with the collection
	// name as payload.
	notifyChannel = "documents_changed"

	// DefaultSeedBatchSize stays below the backend's batch-size ceiling.
	DefaultSeedBatchSize = 400
)

var _ store.Adapter = (*Repo)(nil)

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	pool      *pgxpool.Pool
	tx        *postgres.TxManager
	log       *slog.Logger
	sb        sq.StatementBuilderType
	batchSize int

	seedMu  sync.Mutex
	seeding map[string]bool
}

// New creates a document repository. batchSize <= 0 selects DefaultSeedBatchSize.
func New(pool *pgxpool.Pool, tx *postgres.TxManager, log *slog.Logger, batchSize int) *Repo {
	if batchSize <= 0 {
		batchSize = DefaultSeedBatchSize
	}
	return &Repo{
		pool:      pool,
		tx:        tx,
		log:       log.With("adapter", "remote"),
		sb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		batchSize: batchSize,
		seeding:   make(map[string]bool),
	}
}

func (r *Repo) Mode() store.Mode { return store.ModeRemote }

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns every document of collection in insertion order. The row id
// is written into each record's id field.
func (r *Repo) Get(ctx context.Context, collection string) ([]store.Record, error) {
	query, args, err := r.sb.
		Select("id", "data").
		From(table).
		Where(sq.Eq{"collection": collection}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, collection, "")
	}
	defer rows.Close()

	records := []store.Record{}
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		rec := store.Record{}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		rec[store.IDField] = id
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, collection, "")
	}

	return records, nil
}

func (r *Repo) hasDocuments(ctx context.Context, collection string) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM documents WHERE collection = $1)`, collection,
	).Scan(&exists)
	if err != nil {
		return false, mapError(err, collection, "")
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save creates or merges a document. Records without an id, or with a
// client-generated temporary id, become new documents with a server id.
func (r *Repo) Save(ctx context.Context, collection string, rec store.Record) (string, error) {
	id := rec.ID()
	if id == "" || domain.IsTemporaryID(id) {
		id = uuid.NewString()
	}

	doc := rec.Clone()
	if doc == nil {
		doc = store.Record{}
	}
	doc[store.IDField] = id

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	query, args, err := r.sb.
		Insert(table).
		Columns("collection", "id", "data").
		Values(collection, id, sq.Expr("?::jsonb", string(data))).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		r.log.ErrorContext(ctx, "save failed",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return "", mapError(err, collection, id)
	}

	return id, nil
}

// Update merges partial onto the document. Returns domain.ErrNotFound when
// the document does not exist.
func (r *Repo) Update(ctx context.Context, collection, id string, partial store.Record) error {
	patch := partial.Clone()
	delete(patch, store.IDField)

	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}

	query, args, err := r.sb.
		Update(table).
		Set("data", sq.Expr("data || ?::jsonb", string(data))).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		r.log.ErrorContext(ctx, "update failed",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return mapError(err, collection, id)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, collection, id)
	}

	return nil
}

// Delete removes the document. A missing id is not an error.
func (r *Repo) Delete(ctx context.Context, collection, id string) error {
	query, args, err := r.sb.
		Delete(table).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return mapError(err, collection, id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Seed
// ---------------------------------------------------------------------------

// beginSeed claims the per-collection seeding guard.
func (r *Repo) beginSeed(collection string) bool {
	r.seedMu.Lock()
	defer r.seedMu.Unlock()
	if r.seeding[collection] {
		return false
	}
	r.seeding[collection] = true
	return true
}

func (r *Repo) endSeed(collection string) {
	r.seedMu.Lock()
	defer r.seedMu.Unlock()
	delete(r.seeding, collection)
}

// Seed writes records into an empty collection in batches of at most the
// configured batch size, one transaction per batch. A seed already running
// for the same collection in this process makes the call a no-op. A failed
// batch aborts the remaining ones; batches already committed stay.
func (r *Repo) Seed(ctx context.Context, collection string, records []store.Record) error {
	if !r.beginSeed(collection) {
		r.log.InfoContext(ctx, "seed already in progress", slog.String("collection", collection))
		return nil
	}
	defer r.endSeed(collection)

	exists, err := r.hasDocuments(ctx, collection)
	if err != nil {
		return err
	}
	if exists || len(records) == 0 {
		return nil
	}

	for start := 0; start < len(records); start += r.batchSize {
		end := min(start+r.batchSize, len(records))
		batch := records[start:end]

		err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
			return r.writeBatch(ctx, collection, batch)
		})
		if err != nil {
			r.log.ErrorContext(ctx, "seed batch failed",
				slog.String("collection", collection),
				slog.Int("from", start),
				slog.Int("to", end),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("seed batch %d-%d: %w", start, end, err)
		}
	}

	r.log.InfoContext(ctx, "collection seeded",
		slog.String("collection", collection),
		slog.Int("records", len(records)),
	)
	return nil
}

func (r *Repo) writeBatch(ctx context.Context, collection string, records []store.Record) error {
	batch := &pgx.Batch{}
	for _, rec := range records {
		doc := rec.Clone()
		if doc == nil {
			doc = store.Record{}
		}
		id := doc.ID()
		if id == "" || domain.IsTemporaryID(id) {
			id = uuid.NewString()
		}
		doc[store.IDField] = id

		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s/%s: %w", collection, id, err)
		}

		query, args, err := r.sb.
			Insert(table).
			Columns("collection", "id", "data").
			Values(collection, id, sq.Expr("?::jsonb", string(data))).
			Suffix("ON CONFLICT (collection, id) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("build query: %w", err)
		}
		batch.Queue(query, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	for range records {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return mapError(err, collection, "")
		}
	}
	return br.Close()
}
