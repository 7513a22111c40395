package resolver

import (
	"context"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

func (r *mutationResolver) CreateCourse(ctx context.Context, input domain.Course) (*domain.Course, error) {
	input.ID = ""
	c, err := r.state.AddCourse(ctx, input)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCourse replaces the course at id with input.
func (r *mutationResolver) UpdateCourse(ctx context.Context, id string, input domain.Course) (*domain.Course, error) {
	input.ID = id
	c, err := r.state.UpdateCourse(ctx, input)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mutationResolver) DeleteCourse(ctx context.Context, id string) (bool, error) {
	if err := r.state.DeleteCourse(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) AddCourseIssues(ctx context.Context, id string, issues []string) (*AddIssuesPayload, error) {
	added, err := r.state.AddCourseIssues(ctx, id, issues...)
	if err != nil {
		return nil, err
	}
	c, err := r.state.CourseByID(id)
	if err != nil {
		return nil, err
	}
	return &AddIssuesPayload{Added: added, Course: c}, nil
}

func (r *mutationResolver) CreatePerson(ctx context.Context, input domain.Person) (*domain.Person, error) {
	input.ID = ""
	p, err := r.state.AddPerson(ctx, input)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePerson replaces the person at id. A changed role or course archives
// the current employment.
func (r *mutationResolver) UpdatePerson(ctx context.Context, id string, input domain.Person) (*domain.Person, error) {
	input.ID = id
	p, err := r.state.UpdatePerson(ctx, input)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mutationResolver) DeletePerson(ctx context.Context, id string) (bool, error) {
	if err := r.state.DeletePerson(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) CreateLog(ctx context.Context, input domain.LogEntry) (*domain.LogEntry, error) {
	input.ID = ""
	l, err := r.state.AddLog(ctx, input)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *mutationResolver) UpdateLog(ctx context.Context, id string, input domain.LogEntry) (*domain.LogEntry, error) {
	input.ID = id
	l, err := r.state.UpdateLog(ctx, input)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *mutationResolver) DeleteLog(ctx context.Context, id string) (bool, error) {
	if err := r.state.DeleteLog(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *mutationResolver) CreateTodo(ctx context.Context, input domain.Todo) (*domain.Todo, error) {
	input.ID = ""
	t, err := r.state.AddTodo(ctx, input)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mutationResolver) UpdateTodo(ctx context.Context, id string, input domain.Todo) (*domain.Todo, error) {
	input.ID = id
	t, err := r.state.UpdateTodo(ctx, input)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *mutationResolver) DeleteTodo(ctx context.Context, id string) (bool, error) {
	if err := r.state.DeleteTodo(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
