package appstate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/internal/store"
)

// Hydrate loads every collection from the gateway. A collection that is
// empty is seeded from the bundled defaults and read again, so state that
// was already persisted always wins over the defaults.
func (s *Service) Hydrate(ctx context.Context) error {
	var defaults map[string][]store.Record
	if s.defaults != nil {
		d, err := s.defaults()
		if err != nil {
			return fmt.Errorf("appstate.Hydrate load defaults: %w", err)
		}
		defaults = d
	}

	loaded := make(map[string][]store.Record, len(domain.Collections))
	for _, name := range domain.Collections {
		records, err := s.gw.Get(ctx, name)
		if err != nil {
			return fmt.Errorf("appstate.Hydrate: %w", err)
		}

		if len(records) == 0 && len(defaults[name]) > 0 {
			if err := s.gw.Seed(ctx, name, defaults[name]); err != nil {
				return fmt.Errorf("appstate.Hydrate: %w", err)
			}
			if records, err = s.gw.Get(ctx, name); err != nil {
				return fmt.Errorf("appstate.Hydrate: %w", err)
			}
			s.log.InfoContext(ctx, "collection seeded from defaults",
				slog.String("collection", name),
				slog.Int("records", len(records)),
			)
		}
		loaded[name] = records
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for name, records := range loaded {
		s.replaceLocked(name, records)
	}

	s.log.InfoContext(ctx, "state hydrated",
		slog.Int("courses", len(s.courses.items)),
		slog.Int("people", len(s.people.items)),
		slog.Int("logs", len(s.logs.items)),
		slog.Int("users", len(s.users.items)),
		slog.Int("todos", len(s.todos.items)),
	)
	return nil
}

// replaceLocked swaps the in-memory copy of collection for records.
func (s *Service) replaceLocked(collection string, records []store.Record) {
	switch collection {
	case domain.CollectionCourses:
		s.courses.items = decodeAll[domain.Course](s.log, collection, records)
	case domain.CollectionPeople:
		s.people.items = decodeAll[domain.Person](s.log, collection, records)
	case domain.CollectionLogs:
		s.logs.items = decodeAll[domain.LogEntry](s.log, collection, records)
	case domain.CollectionUsers:
		s.users.items = decodeAll[domain.UserProfile](s.log, collection, records)
	case domain.CollectionTodos:
		s.todos.items = decodeAll[domain.Todo](s.log, collection, records)
	}
}

// Watch subscribes to every collection and keeps the in-memory copy equal
// to the latest snapshot. The returned function stops all subscriptions.
func (s *Service) Watch(ctx context.Context) (func(), error) {
	unsubs := make([]store.Unsubscribe, 0, len(domain.Collections))
	stop := func() {
		for _, u := range unsubs {
			u()
		}
	}

	for _, name := range domain.Collections {
		unsub, err := s.gw.Subscribe(ctx, name, func(records []store.Record) {
			s.mu.Lock()
			s.replaceLocked(name, records)
			s.mu.Unlock()
		})
		if err != nil {
			stop()
			return nil, fmt.Errorf("appstate.Watch: %w", err)
		}
		unsubs = append(unsubs, unsub)
	}

	s.log.InfoContext(ctx, "watching collections", slog.Int("count", len(unsubs)))
	return stop, nil
}
