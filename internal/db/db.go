// Package db provides PostgreSQL access for candidate and share-link documents.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the resumes and share_links collections if they do not
// exist. share_links.kandidat_id carries no foreign key: a share link may
// reference a candidate that never existed, and resolution treats the
// dangling reference as ordinary not-found.
func (db *DB) Migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			parsed JSONB NOT NULL,
			file_name TEXT NOT NULL,
			uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_uploaded_at ON resumes (uploaded_at DESC)`,
		`CREATE TABLE IF NOT EXISTS share_links (
			token UUID PRIMARY KEY,
			kandidat_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`,
	}

	for _, stmt := range ddl {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
