package appstate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// Todos returns a copy of every todo.
func (s *Service) Todos() []domain.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.todos.list()
}

// TodoByID returns the todo with id.
func (s *Service) TodoByID(id string) (domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.todos.get(id)
	if !ok {
		return domain.Todo{}, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

func (s *Service) AddTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	if err := validateTodo(t); err != nil {
		return domain.Todo{}, err
	}
	t.ID = ""
	t.Title = strings.TrimSpace(t.Title)
	if t.CreatedAt == nil {
		now := s.now().UTC().Truncate(time.Millisecond)
		t.CreatedAt = &now
	}
	return create(ctx, s, &s.todos, t, nil)
}

func (s *Service) UpdateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error) {
	if err := validateTodo(t); err != nil {
		return domain.Todo{}, err
	}
	t.Title = strings.TrimSpace(t.Title)
	return update(ctx, s, &s.todos, t.ID, func(old domain.Todo) (domain.Todo, error) {
		if t.CreatedAt == nil {
			t.CreatedAt = old.CreatedAt
		}
		return t, nil
	})
}

func (s *Service) DeleteTodo(ctx context.Context, id string) error {
	return remove(ctx, s, &s.todos, id)
}
