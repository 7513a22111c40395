// Package appstate owns the in-memory domain collections. Every mutation is
// applied to memory first, persisted through the data gateway, and undone
// when persisting fails.
package appstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

type gateway interface {
	Get(ctx context.Context, collection string) ([]store.Record, error)
	Save(ctx context.Context, collection string, rec store.Record) (string, error)
	Update(ctx context.Context, collection, id string, partial store.Record) error
	Delete(ctx context.Context, collection, id string) error
	Subscribe(ctx context.Context, collection string, fn store.Listener) (store.Unsubscribe, error)
	Seed(ctx context.Context, collection string, records []store.Record) error
}

// errNoChange aborts an update whose apply step found nothing to do.
var errNoChange = errors.New("no change")

type tokenManager interface {
	IssueToken(userID string, role domain.UserRole) (string, time.Time, error)
	ParseToken(token string) (string, domain.UserRole, error)
}

// Service is the application state store.
//
// The gateway is never called while mu is held: local adapter listeners run
// synchronously and take mu themselves.
type Service struct {
	gw       gateway
	tokens   tokenManager
	log      *slog.Logger
	now      func() time.Time
	defaults func() (map[string][]store.Record, error)
	hashCost int

	mu      sync.RWMutex
	courses coll[domain.Course]
	people  coll[domain.Person]
	logs    coll[domain.LogEntry]
	users   coll[domain.UserProfile]
	todos   coll[domain.Todo]
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for default dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithDefaults sets the records Hydrate seeds into empty collections.
func WithDefaults(fn func() (map[string][]store.Record, error)) Option {
	return func(s *Service) { s.defaults = fn }
}

// WithPasswordHashCost sets the bcrypt cost for new password hashes.
func WithPasswordHashCost(cost int) Option {
	return func(s *Service) { s.hashCost = cost }
}

// NewService creates an empty state store. Call Hydrate to load it.
func NewService(log *slog.Logger, gw gateway, tokens tokenManager, opts ...Option) *Service {
	s := &Service{
		gw:     gw,
		tokens: tokens,
		log:    log.With("service", "appstate"),
		now:    time.Now,
		courses: coll[domain.Course]{
			name:  domain.CollectionCourses,
			id:    func(c *domain.Course) string { return c.ID },
			setID: func(c *domain.Course, id string) { c.ID = id },
		},
		people: coll[domain.Person]{
			name:  domain.CollectionPeople,
			id:    func(p *domain.Person) string { return p.ID },
			setID: func(p *domain.Person, id string) { p.ID = id },
		},
		logs: coll[domain.LogEntry]{
			name:  domain.CollectionLogs,
			id:    func(l *domain.LogEntry) string { return l.ID },
			setID: func(l *domain.LogEntry, id string) { l.ID = id },
		},
		users: coll[domain.UserProfile]{
			name:  domain.CollectionUsers,
			id:    func(u *domain.UserProfile) string { return u.ID },
			setID: func(u *domain.UserProfile, id string) { u.ID = id },
		},
		todos: coll[domain.Todo]{
			name:  domain.CollectionTodos,
			id:    func(t *domain.Todo) string { return t.ID },
			setID: func(t *domain.Todo, id string) { t.ID = id },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() string {
	return s.now().Format(domain.DateLayout)
}

// ---------------------------------------------------------------------------
// In-memory collection
// ---------------------------------------------------------------------------

// coll is one in-memory collection. All methods expect Service.mu held.
type coll[T any] struct {
	name  string
	items []T
	id    func(*T) string
	setID func(*T, string)
}

func (c *coll[T]) index(id string) int {
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *coll[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *coll[T]) list() []T {
	return slices.Clone(c.items)
}

func (c *coll[T]) remove(id string) (T, int, bool) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, -1, false
	}
	old := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return old, i, true
}

func (c *coll[T]) restore(at int, item T) {
	if c.index(c.id(&item)) >= 0 {
		return
	}
	at = min(at, len(c.items))
	c.items = slices.Insert(c.items, at, item)
}

// ---------------------------------------------------------------------------
// Optimistic mutations
// ---------------------------------------------------------------------------

// create appends item, saves it and adopts the id the gateway returns.
// prepare runs under the write lock before the item is added and may
// reject or adjust it.
func create[T any](ctx context.Context, s *Service, c *coll[T], item T, prepare func(*T) error) (T, error) {
	var zero T

	s.mu.Lock()
	if prepare != nil {
		if err := prepare(&item); err != nil {
			s.mu.Unlock()
			return zero, err
		}
	}
	tmpID := c.id(&item)
	if tmpID == "" {
		tmpID = domain.NewLocalID()
		c.setID(&item, tmpID)
	}
	c.items = append(c.items, item)
	s.mu.Unlock()

	rec, err := store.Encode(item)
	var id string
	if err == nil {
		id, err = s.gw.Save(ctx, c.name, rec)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		c.remove(tmpID)
		s.log.WarnContext(ctx, "create rolled back",
			slog.String("collection", c.name),
			slog.String("id", tmpID),
			slog.String("error", err.Error()),
		)
		return zero, err
	}
	if id != tmpID {
		if i := c.index(tmpID); i >= 0 {
			c.setID(&c.items[i], id)
		}
		c.setID(&item, id)
	}
	return item, nil
}

// update replaces the item with id by apply(old) and persists it. The old
// value is put back when persisting fails.
func update[T any](ctx context.Context, s *Service, c *coll[T], id string, apply func(old T) (T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	i := c.index(id)
	if i < 0 {
		s.mu.Unlock()
		return zero, fmt.Errorf("%s %s: %w", c.name, id, domain.ErrNotFound)
	}
	old := c.items[i]
	next, err := apply(old)
	if err != nil {
		s.mu.Unlock()
		return zero, err
	}
	c.setID(&next, id)
	c.items[i] = next
	s.mu.Unlock()

	rec, err := store.Encode(next)
	if err == nil {
		err = s.gw.Update(ctx, c.name, id, rec)
	}
	if err != nil {
		s.mu.Lock()
		if j := c.index(id); j >= 0 {
			c.items[j] = old
		}
		s.mu.Unlock()
		s.log.WarnContext(ctx, "update rolled back",
			slog.String("collection", c.name),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return zero, err
	}
	return next, nil
}

// remove deletes the item with id. A missing id still reaches the gateway,
// which treats it as a no-op.
func remove[T any](ctx context.Context, s *Service, c *coll[T], id string) error {
	s.mu.Lock()
	old, at, found := c.remove(id)
	s.mu.Unlock()

	if err := s.gw.Delete(ctx, c.name, id); err != nil {
		if found {
			s.mu.Lock()
			c.restore(at, old)
			s.mu.Unlock()
		}
		s.log.WarnContext(ctx, "delete rolled back",
			slog.String("collection", c.name),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// decodeAll converts records into entities, skipping the ones that do not
// decode.
func decodeAll[T any](log *slog.Logger, collection string, records []store.Record) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		v, err := store.Decode[T](r)
		if err != nil {
			log.Warn("skipping undecodable record",
				slog.String("collection", collection),
				slog.String("id", r.ID()),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, v)
	}
	return out
}
