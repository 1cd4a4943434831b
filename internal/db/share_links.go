package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InsertShareLink persists a share link keyed by its token. No existence
// check is performed against the referenced candidate.
func (db *DB) InsertShareLink(ctx context.Context, link ShareLink) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO share_links (token, kandidat_id, created_at, expires_at)
		 VALUES ($1, $2, $3, $4)`,
		link.Token, link.KandidatID, link.CreatedAt, link.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert share link: %w", err)
	}
	return nil
}

// GetShareLink fetches a share link by token. It returns nil without error
// when no link exists for the token; expired links are returned as-is,
// expiry is the caller's decision.
func (db *DB) GetShareLink(ctx context.Context, token string) (*ShareLink, error) {
	tok, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	var link ShareLink
	err = db.pool.QueryRow(ctx,
		`SELECT token, kandidat_id, created_at, expires_at FROM share_links WHERE token = $1`,
		tok,
	).Scan(&link.Token, &link.KandidatID, &link.CreatedAt, &link.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get share link: %w", err)
	}
	return &link, nil
}
