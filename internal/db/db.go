package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		profile_id TEXT NOT NULL UNIQUE
	);`,
	`CREATE TABLE IF NOT EXISTS stats (
		profile_id TEXT PRIMARY KEY,
		x_wins INTEGER NOT NULL DEFAULT 0 CHECK (x_wins >= 0),
		o_wins INTEGER NOT NULL DEFAULT 0 CHECK (o_wins >= 0),
		draws INTEGER NOT NULL DEFAULT 0 CHECK (draws >= 0)
	);`,
	`CREATE TABLE IF NOT EXISTS settings (
		profile_id TEXT PRIMARY KEY,
		dark_mode INTEGER NOT NULL DEFAULT 0
	);`,
}

// Connect opens the SQLite database at dbPath and applies the schema.
func Connect(ctx context.Context, dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	pool.SetMaxOpenConns(1)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database at %s: %w", dbPath, err)
	}

	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	slog.InfoContext(ctx, "DB connection initialized and schema verified.", "db.path", dbPath)
	return pool, nil
}

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
