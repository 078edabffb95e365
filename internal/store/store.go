// Package store persists the notepad text in a single key-value slot.
package store

import (
	"context"
	"fmt"
	"strings"
)

// Key is the fixed slot the document text lives under.
const Key = "notepadText"

// Store is a small key-value persistence layer. Get reports ok=false when the
// key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the store for backend rooted at path.
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFile(path), nil
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want file|sqlite|memory)", backend)
	}
}
