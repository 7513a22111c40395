package resolver

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/fairway-backend/internal/domain"
)

// nonNil keeps empty lists from encoding as null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// orNull turns a not-found lookup into a null result.
func orNull[T any](item T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

// decodeArg converts a coerced argument value into T through its JSON
// form. A missing or null argument yields the zero value.
func decodeArg[T any](args map[string]any, name string) (T, error) {
	var out T
	raw, ok := args[name]
	if !ok || raw == nil {
		return out, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return out, fmt.Errorf("encode argument %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, domain.NewValidationError(name, "malformed value")
	}
	return out, nil
}
