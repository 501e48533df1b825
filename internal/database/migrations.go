package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Insertion order is the rowid order; there is no explicit sort key.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id   TEXT PRIMARY KEY NOT NULL,
			task TEXT NOT NULL,
			icon TEXT NOT NULL
		)
	`)
	return err
}
