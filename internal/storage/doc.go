// Package storage provides the flat key/value media the persistence store
// is multiplexed onto.
//
// # Overview
//
// Backend is the only contract: textual values addressed by string keys.
// Implementations:
//
//   - MemoryBackend - process-local map with an optional byte quota; tests.
//   - SQLBackend    - table kv(key, value) over SQLite (default, on disk)
//     or PostgreSQL, schema applied with embedded goose migrations.
//   - RedisBackend  - namespaced keys in a Redis database.
//
// # Contract
//
//   - Get returns (nil, nil) for a missing key.
//   - Delete is idempotent.
//   - SetMany writes all values or none where the medium supports
//     transactions (SQL, Redis MULTI/EXEC, memory).
//
// Open picks an implementation from Options.
package storage
