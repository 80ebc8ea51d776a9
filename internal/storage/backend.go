// Package storage implements the persistent store: named collections of
// records serialized as JSON into a key-value backend. The durable
// backend is a local SQLite table, the ephemeral one an in-process map
// that survives only for the duration of a run.
package storage

import "context"

// Fixed keys of the persisted collections.
const (
	UsersKey   = "anonsenUserDatabase"
	PostsKey   = "anonsenPostsDatabase"
	SessionKey = "anonsenCurrentUser"
)

// Backend is raw byte storage under string keys.
//
// Contract:
//   - Get returns (nil, nil) when the key does not exist.
//   - Set replaces any prior value.
//   - Delete is idempotent.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
