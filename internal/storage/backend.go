package storage

import (
	"context"
	"errors"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrQuotaExceeded  = errors.New("storage quota exceeded")
)

// Backend is a flat key/value medium holding textual (JSON) values.
type Backend interface {
	// Get returns the stored value, or (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set creates or replaces the value at key.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany writes several keys at once.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the underlying connection, if any.
	Close() error
}
