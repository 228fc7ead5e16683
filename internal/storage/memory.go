package storage

import (
	"context"
	"slices"
	"sync"
)

// MemoryBackend keeps values in a map. A positive quota caps the total size
// of keys plus values in bytes, the way browser storage does.
type MemoryBackend struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int
}

func NewMemoryBackend(quota int) *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte), quota: quota}
}

func (m *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(v), nil
}

func (m *MemoryBackend) Set(ctx context.Context, key string, value []byte) error {
	return m.SetMany(ctx, map[string][]byte{key: value})
}

func (m *MemoryBackend) SetMany(ctx context.Context, values map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 && m.sizeAfter(values) > m.quota {
		return ErrQuotaExceeded
	}
	for k, v := range values {
		m.data[k] = slices.Clone(v)
	}
	return nil
}

// sizeAfter computes the footprint the map would have with values applied.
func (m *MemoryBackend) sizeAfter(values map[string][]byte) int {
	size := 0
	for k, v := range m.data {
		if _, replaced := values[k]; replaced {
			continue
		}
		size += len(k) + len(v)
	}
	for k, v := range values {
		size += len(k) + len(v)
	}
	return size
}

func (m *MemoryBackend) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryBackend) Keys(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (m *MemoryBackend) Close() error { return nil }
