// Package migrations embeds the goose migrations for the SQL key/value table.
// The DDL is portable between SQLite and PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
