package resolver

import (
	"context"
	"errors"
	"strings"

	"github.com/heartmarshall/fairway-backend/internal/domain"
	"github.com/heartmarshall/fairway-backend/pkg/ctxutil"
)

func (r *queryResolver) Courses(ctx context.Context) ([]domain.Course, error) {
	return nonNil(r.state.Courses()), nil
}

func (r *queryResolver) Course(ctx context.Context, id string) (*domain.Course, error) {
	return orNull(r.state.CourseByID(id))
}

// MatchCourse returns null when no known course resembles name.
func (r *queryResolver) MatchCourse(ctx context.Context, name string) (*domain.Course, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	c, ok := r.state.FindCourseByName(name)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *queryResolver) People(ctx context.Context) ([]domain.Person, error) {
	return nonNil(r.state.People()), nil
}

func (r *queryResolver) Person(ctx context.Context, id string) (*domain.Person, error) {
	return orNull(r.state.PersonByID(id))
}

func (r *queryResolver) Logs(ctx context.Context, filter *LogFilter) ([]domain.LogEntry, error) {
	logs := r.state.Logs()
	if filter == nil {
		return nonNil(logs), nil
	}

	out := make([]domain.LogEntry, 0, len(logs))
	for _, l := range logs {
		switch {
		case filter.CourseID != nil && l.CourseID != *filter.CourseID:
		case filter.Department != nil && l.Department != *filter.Department:
		case filter.From != nil && l.Date < *filter.From:
		case filter.To != nil && l.Date > *filter.To:
		default:
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *queryResolver) Log(ctx context.Context, id string) (*domain.LogEntry, error) {
	return orNull(r.state.LogByID(id))
}

func (r *queryResolver) Todos(ctx context.Context, filter *TodoFilter) ([]domain.Todo, error) {
	todos := r.state.Todos()
	if filter == nil {
		return nonNil(todos), nil
	}

	out := make([]domain.Todo, 0, len(todos))
	for _, t := range todos {
		switch {
		case filter.Done != nil && t.Done != *filter.Done:
		case filter.CourseID != nil && t.CourseID != *filter.CourseID:
		default:
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *queryResolver) Todo(ctx context.Context, id string) (*domain.Todo, error) {
	return orNull(r.state.TodoByID(id))
}

func (r *queryResolver) Me(ctx context.Context) (*User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	u, err := r.state.UserByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return userFromProfile(u), nil
}
