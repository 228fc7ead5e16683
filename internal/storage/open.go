package storage

import (
	"context"
	"fmt"
)

// Kinds accepted by Open.
const (
	KindMemory   = "memory"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
	KindRedis    = "redis"
)

// Options selects and parameterises a backend.
type Options struct {
	Kind          string
	SQLitePath    string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	MemoryQuota   int
}

// Open constructs the backend named by opts.Kind.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Kind {
	case KindMemory:
		return NewMemoryBackend(opts.MemoryQuota), nil
	case KindSQLite, "":
		return OpenSQLite(ctx, opts.SQLitePath)
	case KindPostgres:
		return OpenPostgres(ctx, opts.PostgresDSN)
	case KindRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisPrefix)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Kind)
	}
}
