package store

import (
	"encoding/json"
	"fmt"
)

// Record is a raw JSON document keyed by its "id" field. The store layer
// never interprets records beyond the id.
type Record map[string]any

// IDField is the key every record carries its identifier under.
const IDField = "id"

// ID returns the record id, or "" when absent or not a string.
func (r Record) ID() string {
	id, _ := r[IDField].(string)
	return id
}

// Merge copies every field of partial onto r (shallow, last write wins).
func (r Record) Merge(partial Record) {
	for k, v := range partial {
		r[k] = v
	}
}

// Clone returns a deep copy of r. Nested maps and slices produced by
// encoding/json are copied too.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = cloneValue(vv)
		}
		return m
	case Record:
		return t.Clone()
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = cloneValue(vv)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// CloneAll deep-copies a list of records. A nil input yields an empty,
// non-nil slice so subscribers always see a JSON array.
func CloneAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

// Encode converts a typed entity into a Record through its JSON form.
func Encode(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return r, nil
}

// Decode converts a Record into a typed entity through its JSON form.
func Decode[T any](r Record) (T, error) {
	var v T
	data, err := json.Marshal(r)
	if err != nil {
		return v, fmt.Errorf("decode record %q: %w", r.ID(), err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode record %q: %w", r.ID(), err)
	}
	return v, nil
}

// FindIndex returns the index of the record with id, or -1.
func FindIndex(records []Record, id string) int {
	for i, r := range records {
		if r.ID() == id {
			return i
		}
	}
	return -1
}
