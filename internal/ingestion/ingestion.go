// Package ingestion accepts uploaded resumes, delegates parsing to the
// external parser, and persists the result as a candidate record.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/kandidaten-platform/internal/db"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

// Parser converts a raw resume file into a structured profile.
type Parser interface {
	Parse(ctx context.Context, file io.Reader, filename string) (types.ParsedProfile, error)
}

// Store persists candidate records.
type Store interface {
	InsertResume(ctx context.Context, parsed types.ParsedProfile, fileName string, uploadedAt time.Time) (uuid.UUID, error)
}

// Service wires the parser to the store.
type Service struct {
	parser Parser
	store  Store
	now    func() time.Time
}

// NewService creates an ingestion service.
func NewService(parser Parser, store Store) *Service {
	return &Service{
		parser: parser,
		store:  store,
		now:    time.Now,
	}
}

// Ingest forwards one uploaded file to the parser and stores the result
// merged with the file name and the upload timestamp. A parse failure is
// surfaced as-is and leaves no record behind; exactly one write happens on
// success.
func (s *Service) Ingest(ctx context.Context, file io.Reader, filename string) (*db.CandidateRecord, error) {
	parsed, err := s.parser.Parse(ctx, file, filename)
	if err != nil {
		return nil, err
	}

	uploadedAt := s.now().UTC()
	id, err := s.store.InsertResume(ctx, parsed, filename, uploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to store candidate record: %w", err)
	}

	return &db.CandidateRecord{
		ID:         id,
		Parsed:     parsed,
		FileName:   filename,
		UploadedAt: uploadedAt,
	}, nil
}
