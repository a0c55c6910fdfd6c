// Package store implements the flat-file JSON document store backing the
// service's collections. Each collection is the full ordered set of records
// of one kind, persisted as a single JSON array at a fixed path.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Collection persists an ordered sequence of records as one JSON document on
// disk. All access goes through the collection's lock: Load takes the shared
// lock, Store and Update take the exclusive lock, so readers never observe a
// half-written file and concurrent update cycles cannot lose writes.
type Collection[T any] struct {
	path string
	mu   sync.RWMutex
}

// NewCollection opens a collection backed by the file at path, creating the
// parent directory if needed. The file itself is created on first Store.
func NewCollection[T any](path string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Collection[T]{path: path}, nil
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads and decodes the full collection. A missing, unreadable or
// malformed file means the collection has not been initialized yet and
// yields an empty slice.
func (c *Collection[T]) Load() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.read()
}

// Store replaces the collection's contents on disk in full. The document is
// written to a temp file and renamed into place, so a failed write leaves
// the previously durable data intact.
func (c *Collection[T]) Store(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(records)
}

// Update runs one load-mutate-store cycle under the exclusive lock. fn
// receives the current records and returns the records to persist; returning
// an error aborts the cycle without touching the file. Concurrent Update
// calls on the same collection serialize, so no cycle can silently overwrite
// another's effect.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	records, err := fn(c.read())
	if err != nil {
		return err
	}
	return c.write(records)
}

func (c *Collection[T]) read() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return []T{}
	}
	return records
}

func (c *Collection[T]) write(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}
