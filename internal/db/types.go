package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

// CandidateRecord is one persisted resume document. The identifier is
// assigned by the store on creation; the record is never mutated afterwards.
type CandidateRecord struct {
	ID         uuid.UUID           `json:"id"`
	Parsed     types.ParsedProfile `json:"parsed"`
	FileName   string              `json:"fileName"`
	UploadedAt time.Time           `json:"uploadedAt"`
}

// ShareLink grants anonymous read access to a redacted candidate document
// until ExpiresAt. The token is the primary key; KandidatID is a weak
// reference with no referential integrity.
type ShareLink struct {
	Token      uuid.UUID `json:"token"`
	KandidatID string    `json:"kandidatId"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
