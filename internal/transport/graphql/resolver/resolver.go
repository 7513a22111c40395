package resolver

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// stateStore defines what resolver needs from the application state.
type stateStore interface {
	Courses() []domain.Course
	CourseByID(id string) (domain.Course, error)
	FindCourseByName(name string) (domain.Course, bool)
	AddCourse(ctx context.Context, c domain.Course) (domain.Course, error)
	UpdateCourse(ctx context.Context, c domain.Course) (domain.Course, error)
	AddCourseIssues(ctx context.Context, courseID string, issues ...string) (int, error)
	DeleteCourse(ctx context.Context, id string) error

	People() []domain.Person
	PersonByID(id string) (domain.Person, error)
	AddPerson(ctx context.Context, p domain.Person) (domain.Person, error)
	UpdatePerson(ctx context.Context, p domain.Person) (domain.Person, error)
	DeletePerson(ctx context.Context, id string) error

	Logs() []domain.LogEntry
	LogByID(id string) (domain.LogEntry, error)
	AddLog(ctx context.Context, l domain.LogEntry) (domain.LogEntry, error)
	UpdateLog(ctx context.Context, l domain.LogEntry) (domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error

	Todos() []domain.Todo
	TodoByID(id string) (domain.Todo, error)
	AddTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)
	UpdateTodo(ctx context.Context, t domain.Todo) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error

	UserByID(id string) (domain.UserProfile, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	state stateStore
	log   *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(log *slog.Logger, state stateStore) *Resolver {
	return &Resolver{
		state: state,
		log:   log.With("component", "graphql"),
	}
}

type queryResolver struct{ *Resolver }

type mutationResolver struct{ *Resolver }
