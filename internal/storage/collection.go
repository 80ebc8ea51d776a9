package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anonsen/anonsen/internal/logging"
)

// Collection persists an ordered sequence of records under a fixed key.
//
// Load fails soft: whatever goes wrong (missing key, unreadable backend,
// unparseable bytes), the caller gets an empty slice and never an error.
// Corrupted data is discarded so the next Save starts clean. Save is the
// only operation that reports failure; on failure the caller's in-memory
// state is left as is and may diverge from the stored copy until the next
// successful Save.
type Collection[T any] struct {
	backend Backend
	key     string
	log     logging.Logger
}

func NewCollection[T any](backend Backend, key string, log logging.Logger) *Collection[T] {
	return &Collection[T]{backend: backend, key: key, log: log.With("collection", key)}
}

// Load reads and decodes the stored collection. Missing data yields an
// empty slice. Unparseable data is logged, removed from the backend, and
// also yields an empty slice.
func (c *Collection[T]) Load(ctx context.Context) []T {
	data, err := c.backend.Get(ctx, c.key)
	if err != nil {
		c.log.Warn(ctx, "failed to read collection, starting empty", "error", err)
		return []T{}
	}
	if data == nil {
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.log.Warn(ctx, "discarding corrupted collection", "error", err)
		if err := c.backend.Delete(ctx, c.key); err != nil {
			c.log.Warn(ctx, "failed to remove corrupted collection", "error", err)
		}
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Save serializes the full collection and writes it under the key,
// replacing any prior value. Equal input produces identical stored bytes.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.key, err)
	}
	if err := c.backend.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", c.key, err)
	}
	return nil
}
