package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/studify/internal/dbx"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenPostgres connects through the pgx stdlib driver and applies migrations.
func OpenPostgres(ctx context.Context, dsn string) (*SQLBackend, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := RunMigrations(ctx, db, dbx.DialectPostgres); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return NewSQLBackend(db, dbx.DialectPostgres), nil
}
