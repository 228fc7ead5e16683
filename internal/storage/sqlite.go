package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studify/internal/dbx"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the SQLite file at path and applies
// migrations. Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (*SQLBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; also keeps ":memory:" on a single connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, dbx.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return NewSQLBackend(db, dbx.DialectSQLite), nil
}
