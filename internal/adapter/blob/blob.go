// Package blob defines the named-blob port the local persistence adapter
// writes through, and the sentinel its implementations share.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")

// Store reads and writes whole blobs by key.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}
