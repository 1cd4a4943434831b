package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

// InsertResume stores a parsed profile as a new candidate record and
// returns the store-generated identifier.
func (db *DB) InsertResume(ctx context.Context, parsed types.ParsedProfile, fileName string, uploadedAt time.Time) (uuid.UUID, error) {
	doc, err := json.Marshal(parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (parsed, file_name, uploaded_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		doc, fileName, uploadedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert resume: %w", err)
	}
	return id, nil
}

// ListResumes returns all candidate records ordered by upload time, most
// recent first. Order among records sharing a timestamp is unspecified.
func (db *DB) ListResumes(ctx context.Context) ([]CandidateRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, parsed, file_name, uploaded_at
		 FROM resumes
		 ORDER BY uploaded_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	records := []CandidateRecord{}
	for rows.Next() {
		var rec CandidateRecord
		var doc []byte
		if err := rows.Scan(&rec.ID, &doc, &rec.FileName, &rec.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(doc, &rec.Parsed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parsed profile: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return records, nil
}

// GetResume fetches one candidate record by identifier. It returns nil
// without error when no record exists; an identifier that is not a UUID is
// treated the same way, since dangling share-link references may carry ids
// from a different store generation.
func (db *DB) GetResume(ctx context.Context, id string) (*CandidateRecord, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var rec CandidateRecord
	var doc []byte
	err = db.pool.QueryRow(ctx,
		`SELECT id, parsed, file_name, uploaded_at FROM resumes WHERE id = $1`,
		uid,
	).Scan(&rec.ID, &doc, &rec.FileName, &rec.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if err := json.Unmarshal(doc, &rec.Parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parsed profile: %w", err)
	}
	return &rec, nil
}
