package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Repository is the sqlite-backed ledger and subscription store.
type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewRepository opens (or creates) the database file at storagePath,
// verifies the connection and runs the initial schema migration.
func NewRepository(ctx context.Context, log *slog.Logger, storagePath string) (*Repository, error) {
	dtb, err := sql.Open("sqlite3", fmt.Sprintf("%s?_pragma=foreign_keys(1)", storagePath))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = dtb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("unable to establish connection to database: %w", err)
	}

	if err = initSchema(ctx, dtb); err != nil {
		return nil, fmt.Errorf("DB schema initialization error: %w", err)
	}

	return &Repository{db: dtb, log: log}, nil
}

// NewForTest wraps an existing database handle, bypassing the file
// open and the schema migration. Used by unit tests built on sqlmock.
func NewForTest(db *sql.DB) *Repository {
	return &Repository{db: db, log: slog.Default()}
}

// initSchema creates the tables if they don't already exist. The
// offers table is append-only: the autoincrement id is the only
// recency signal, so the last row per (operator, name) is the
// authoritative observation.
func initSchema(ctx context.Context, dtb *sql.DB) error {
	const migrationQuery = `
	CREATE TABLE IF NOT EXISTS offers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		operator TEXT NOT NULL,
		name TEXT NOT NULL,
		validity TEXT,
		details TEXT,
		price TEXT,
		remark TEXT
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		chat_id INTEGER PRIMARY KEY
	);
	`
	_, err := dtb.ExecContext(ctx, migrationQuery)
	if err != nil {
		return fmt.Errorf("failed to execute migration query: %w", err)
	}

	return nil
}

// Close closes the connection to the database.
func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		r.log.Error("failed to close the database", "op", "repository.sqlite.Close", "error", err)
		return fmt.Errorf("failed to close the database: %w", err)
	}

	return nil
}
