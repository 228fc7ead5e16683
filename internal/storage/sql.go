package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/studify/internal/dbx"
	"github.com/dmitrijs2005/studify/internal/storage/migrations"
	"github.com/pressly/goose/v3"
)

const (
	queryGet    = `SELECT value FROM kv WHERE key = ?`
	queryUpsert = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	queryDelete = `DELETE FROM kv WHERE key = ?`
	queryKeys   = `SELECT key FROM kv ORDER BY key`
)

// SQLBackend implements Backend on the kv table.
type SQLBackend struct {
	db      *sql.DB
	dialect dbx.Dialect

	get, upsert, del, keys string
}

// NewSQLBackend binds a backend to an already migrated database.
func NewSQLBackend(db *sql.DB, dialect dbx.Dialect) *SQLBackend {
	return &SQLBackend{
		db:      db,
		dialect: dialect,
		get:     dbx.Rebind(dialect, queryGet),
		upsert:  dbx.Rebind(dialect, queryUpsert),
		del:     dbx.Rebind(dialect, queryDelete),
		keys:    dbx.Rebind(dialect, queryKeys),
	}
}

// gooseUpContext is a seam for tests that run against sqlmock.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema for the given dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	gooseDialect := "sqlite3"
	if dialect == dbx.DialectPostgres {
		gooseDialect = "postgres"
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return gooseUpContext(ctx, db, ".")
}

func (b *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.QueryRowContext(ctx, b.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return []byte(value), nil
}

func (b *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	if _, err := b.db.ExecContext(ctx, b.upsert, key, string(value)); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

// SetMany upserts all values inside one transaction.
func (b *SQLBackend) SetMany(ctx context.Context, values map[string][]byte) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	err := dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, b.upsert, k, string(values[k])); err != nil {
				return fmt.Errorf("failed to set kv[%s]: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set many: %w", err)
	}
	return nil
}

func (b *SQLBackend) Delete(ctx context.Context, key string) error {
	if _, err := b.db.ExecContext(ctx, b.del, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (b *SQLBackend) Keys(ctx context.Context) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, b.keys)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys: %w", err)
	}
	return keys, nil
}

func (b *SQLBackend) Close() error {
	return b.db.Close()
}
