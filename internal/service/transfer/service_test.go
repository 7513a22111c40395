package transfer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/fairway-backend/internal/adapter/blob/memory"
	"github.com/heartmarshall/fairway-backend/internal/adapter/local"
	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/seed"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

func newGateway() *store.Gateway {
	return store.New(local.New(memory.New(), slog.Default()), slog.Default())
}

func seeded(t *testing.T) *store.Gateway {
	t.Helper()
	gw := newGateway()
	defaults, err := seed.Defaults()
	require.NoError(t, err)
	for name, records := range defaults {
		require.NoError(t, gw.Seed(context.Background(), name, records))
	}
	_, err = gw.Save(context.Background(), domain.CollectionUsers, store.Record{
		"id": "user-2", "email": "sora@example.com", "passwordHash": "$2a$04$secret",
	})
	require.NoError(t, err)
	return gw
}

func TestExportImport_RoundTripIntoFreshStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	src := NewService(slog.Default(), seeded(t))
	src.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

	bundle, err := src.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01T12:00:00Z", bundle.ExportedAt.Format(time.RFC3339))
	assert.Len(t, bundle.Collections, len(domain.Collections))

	// Through JSON, as a file on disk would be.
	data, err := json.Marshal(bundle)
	require.NoError(t, err)
	var decoded Bundle
	require.NoError(t, json.Unmarshal(data, &decoded))

	dstGW := newGateway()
	dst := NewService(slog.Default(), dstGW)
	res, err := dst.Import(ctx, &decoded)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"courses": 3, "people": 2, "logs": 2, "users": 2, "todos": 1}, res.Counts)

	again, err := dst.Export(ctx)
	require.NoError(t, err)
	for _, name := range domain.Collections {
		assert.Equal(t, decoded.Collections[name], again.Collections[name], name)
	}
}

func TestImport_MergesOntoConflictingIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw := seeded(t)
	svc := NewService(slog.Default(), gw)

	_, err := svc.Import(ctx, &Bundle{Collections: map[string][]store.Record{
		"courses": {{"id": "course-lakeside", "name": "Lakeside Links", "holes": 27}},
	}})
	require.NoError(t, err)

	courses, err := gw.Get(ctx, domain.CollectionCourses)
	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, 27.0, courses[1]["holes"])
	assert.Equal(t, "Gangwon", courses[1]["region"], "fields absent from the import are kept")
}

func TestImport_OmittedPasswordHashIsKept(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw := seeded(t)
	svc := NewService(slog.Default(), gw)

	res, err := svc.Import(ctx, &Bundle{Collections: map[string][]store.Record{
		"users": {{"id": "user-2", "email": "sora@example.com", "name": "Sora Kim", "status": "APPROVED"}},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts["users"])

	users, err := gw.Get(ctx, domain.CollectionUsers)
	require.NoError(t, err)
	idx := store.FindIndex(users, "user-2")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "Sora Kim", users[idx]["name"])
	assert.Equal(t, "APPROVED", users[idx]["status"])
	assert.Equal(t, "$2a$04$secret", users[idx]["passwordHash"])
}

func TestImport_RejectsUnknownCollectionBeforeWriting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw := newGateway()
	svc := NewService(slog.Default(), gw)

	_, err := svc.Import(ctx, &Bundle{Collections: map[string][]store.Record{
		"courses": {{"id": "c1", "name": "A"}},
		"secrets": {{"id": "s1"}},
	}})
	require.ErrorIs(t, err, domain.ErrValidation)

	courses, err := gw.Get(ctx, domain.CollectionCourses)
	require.NoError(t, err)
	assert.Empty(t, courses)

	_, err = svc.Import(ctx, &Bundle{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

type failingGateway struct{ err error }

func (f failingGateway) Get(context.Context, string) ([]store.Record, error) { return nil, f.err }
func (f failingGateway) Save(context.Context, string, store.Record) (string, error) {
	return "", f.err
}

func TestExport_PropagatesGatewayError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	svc := NewService(slog.Default(), failingGateway{err: boom})

	_, err := svc.Export(context.Background())
	assert.ErrorIs(t, err, boom)

	res, err := svc.Import(context.Background(), &Bundle{Collections: map[string][]store.Record{
		"todos": {{"id": "t1"}},
	}})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, res.Counts)
}

func TestExportWorkbook_OneSheetPerCollection(t *testing.T) {
	t.Parallel()
	svc := NewService(slog.Default(), seeded(t))

	buf, err := svc.ExportWorkbook(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, domain.Collections, f.GetSheetList())

	rows, err := f.GetRows("courses")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "id", rows[0][0])
	assert.Contains(t, rows[0], "name")
	assert.Equal(t, "course-skyview", rows[1][0])

	issuesCol := -1
	for i, h := range rows[0] {
		if h == "issues" {
			issuesCol = i
		}
	}
	require.GreaterOrEqual(t, issuesCol, 0)
	assert.Equal(t, `["Drainage on hole 7 after heavy rain"]`, rows[1][issuesCol])

	users, err := f.GetRows("users")
	require.NoError(t, err)
	assert.NotContains(t, users[0], "passwordHash")
}
