// Package seed provides the bundled default records used to populate an
// empty store.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/fairway-backend/internal/store"
)

//go:embed defaults.json
var defaultsJSON []byte

// Defaults returns a fresh copy of the bundled records keyed by collection.
func Defaults() (map[string][]store.Record, error) {
	return Parse(defaultsJSON)
}

// Parse decodes a collection-keyed JSON document. Collections missing from
// data are absent from the result.
func Parse(data []byte) (map[string][]store.Record, error) {
	var out map[string][]store.Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	for coll, records := range out {
		for i, r := range records {
			if r.ID() == "" {
				return nil, fmt.Errorf("parse seed data: %s[%d] has no id", coll, i)
			}
		}
	}
	return out, nil
}
