package resolver

import (
	"context"

	"github.com/heartmarshall/fairway-backend/internal/transport/graphql"
)

type args = map[string]any

// Root binds every Query and Mutation field of the schema to r.
func (r *Resolver) Root() graphql.Root {
	q := &queryResolver{r}
	m := &mutationResolver{r}

	return graphql.Root{
		Query: map[string]graphql.FieldFunc{
			"courses": func(ctx context.Context, _ args) (any, error) { return q.Courses(ctx) },
			"course": func(ctx context.Context, a args) (any, error) {
				return q.Course(ctx, stringArg(a, "id"))
			},
			"matchCourse": func(ctx context.Context, a args) (any, error) {
				return q.MatchCourse(ctx, stringArg(a, "name"))
			},
			"people": func(ctx context.Context, _ args) (any, error) { return q.People(ctx) },
			"person": func(ctx context.Context, a args) (any, error) {
				return q.Person(ctx, stringArg(a, "id"))
			},
			"logs": func(ctx context.Context, a args) (any, error) {
				filter, err := decodeArg[*LogFilter](a, "filter")
				if err != nil {
					return nil, err
				}
				return q.Logs(ctx, filter)
			},
			"log": func(ctx context.Context, a args) (any, error) {
				return q.Log(ctx, stringArg(a, "id"))
			},
			"todos": func(ctx context.Context, a args) (any, error) {
				filter, err := decodeArg[*TodoFilter](a, "filter")
				if err != nil {
					return nil, err
				}
				return q.Todos(ctx, filter)
			},
			"todo": func(ctx context.Context, a args) (any, error) {
				return q.Todo(ctx, stringArg(a, "id"))
			},
			"me": func(ctx context.Context, _ args) (any, error) { return q.Me(ctx) },
		},
		Mutation: map[string]graphql.FieldFunc{
			"createCourse": create(m.CreateCourse),
			"updateCourse": update(m.UpdateCourse),
			"deleteCourse": remove(m.DeleteCourse),
			"addCourseIssues": func(ctx context.Context, a args) (any, error) {
				issues, err := decodeArg[[]string](a, "issues")
				if err != nil {
					return nil, err
				}
				return m.AddCourseIssues(ctx, stringArg(a, "id"), issues)
			},

			"createPerson": create(m.CreatePerson),
			"updatePerson": update(m.UpdatePerson),
			"deletePerson": remove(m.DeletePerson),

			"createLog": create(m.CreateLog),
			"updateLog": update(m.UpdateLog),
			"deleteLog": remove(m.DeleteLog),

			"createTodo": create(m.CreateTodo),
			"updateTodo": update(m.UpdateTodo),
			"deleteTodo": remove(m.DeleteTodo),
		},
	}
}

func create[T any](fn func(ctx context.Context, input T) (*T, error)) graphql.FieldFunc {
	return func(ctx context.Context, a args) (any, error) {
		input, err := decodeArg[T](a, "input")
		if err != nil {
			return nil, err
		}
		return fn(ctx, input)
	}
}

func update[T any](fn func(ctx context.Context, id string, input T) (*T, error)) graphql.FieldFunc {
	return func(ctx context.Context, a args) (any, error) {
		input, err := decodeArg[T](a, "input")
		if err != nil {
			return nil, err
		}
		return fn(ctx, stringArg(a, "id"), input)
	}
}

func remove(fn func(ctx context.Context, id string) (bool, error)) graphql.FieldFunc {
	return func(ctx context.Context, a args) (any, error) {
		return fn(ctx, stringArg(a, "id"))
	}
}
