package storage

import "context"

// MemoryBackend is the ephemeral Backend. Values live for the lifetime of
// the process only.
type MemoryBackend struct {
	values map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := b.values[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	b.values[key] = value
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	delete(b.values, key)
	return nil
}
