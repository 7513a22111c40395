package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// FieldFunc resolves one root field. args holds the field arguments with
// variables substituted and defaults applied. The result is marshaled to
// JSON and projected onto the selection set, so its JSON field names must
// match the schema.
type FieldFunc func(ctx context.Context, args map[string]any) (any, error)

// Root binds the Query and Mutation fields to their resolvers.
type Root struct {
	Query    map[string]FieldFunc
	Mutation map[string]FieldFunc
}

// executableSchema implements graphql.ExecutableSchema over Root.
type executableSchema struct {
	schema *ast.Schema
	root   Root
}

var _ graphql.ExecutableSchema = (*executableSchema)(nil)

func (e *executableSchema) Schema() *ast.Schema { return e.schema }

// Complexity falls back to the default cost of one per field.
func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	var (
		object string
		fields map[string]FieldFunc
	)
	switch opCtx.Operation.Operation {
	case ast.Query:
		object, fields = "Query", e.root.Query
	case ast.Mutation:
		object, fields = "Mutation", e.root.Mutation
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data, err := e.execRoot(ctx, opCtx, object, fields)
		if err != nil {
			return graphql.ErrorResponse(ctx, "marshal response: %v", err)
		}
		return &graphql.Response{Data: data}
	}
}

// execRoot resolves the root selection set in document order. Mutations
// run one after another by construction.
func (e *executableSchema) execRoot(ctx context.Context, opCtx *graphql.OperationContext, object string, fields map[string]FieldFunc) (json.RawMessage, error) {
	collected := graphql.CollectFields(opCtx, opCtx.Operation.SelectionSet, []string{object})

	out := make(orderedObject, 0, len(collected))
	for _, f := range collected {
		var args map[string]any
		if f.Definition != nil {
			args = f.ArgumentMap(opCtx.Variables)
		}
		fctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{
			Object:     object,
			Field:      f,
			Args:       args,
			IsMethod:   true,
			IsResolver: true,
		})

		val, ok := e.resolveRootField(fctx, opCtx, object, f, fields)
		if !ok && f.Definition != nil && f.Definition.Type.NonNull {
			return json.RawMessage("null"), nil
		}
		out = append(out, member{key: f.Alias, value: val})
	}
	return json.Marshal(out)
}

func (e *executableSchema) resolveRootField(ctx context.Context, opCtx *graphql.OperationContext, object string, f graphql.CollectedField, fields map[string]FieldFunc) (val any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			graphql.AddError(ctx, opCtx.Recover(ctx, r))
			val, ok = nil, false
		}
	}()

	switch f.Name {
	case "__typename":
		return object, true
	case "__schema", "__type":
		graphql.AddError(ctx, gqlerror.Errorf("introspection disabled"))
		return nil, false
	}

	fn, exists := fields[f.Name]
	if !exists {
		graphql.AddError(ctx, gqlerror.Errorf("field %s.%s has no resolver", object, f.Name))
		return nil, false
	}

	res, err := fn(ctx, graphql.GetFieldContext(ctx).Args)
	if err != nil {
		graphql.AddError(ctx, err)
		return nil, false
	}

	tree, err := toTree(res)
	if err != nil {
		graphql.AddError(ctx, fmt.Errorf("encode %s: %w", f.Name, err))
		return nil, false
	}
	return project(opCtx, tree, f.Definition.Type.Name(), f.Selections), true
}

// toTree turns a resolver result into generic JSON values.
func toTree(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// project keeps the selected fields of v, in selection order, under their
// response keys.
func project(opCtx *graphql.OperationContext, v any, typeName string, sel ast.SelectionSet) any {
	if v == nil || len(sel) == 0 {
		return v
	}

	switch v := v.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = project(opCtx, item, typeName, sel)
		}
		return out
	case map[string]any:
		collected := graphql.CollectFields(opCtx, sel, []string{typeName})
		out := make(orderedObject, 0, len(collected))
		for _, f := range collected {
			if f.Name == "__typename" {
				out = append(out, member{key: f.Alias, value: typeName})
				continue
			}
			if f.Definition == nil {
				continue
			}
			out = append(out, member{
				key:   f.Alias,
				value: project(opCtx, v[f.Name], f.Definition.Type.Name(), f.Selections),
			})
		}
		return out
	default:
		return v
	}
}

type member struct {
	key   string
	value any
}

// orderedObject marshals as a JSON object that keeps member order.
type orderedObject []member

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
