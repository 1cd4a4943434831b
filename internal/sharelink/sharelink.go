// Package sharelink issues time-limited anonymous tokens for candidate
// profiles and resolves them to redacted views.
//
// A token moves through exactly two states: active while now <= expiresAt,
// expired afterwards. Expiry is enforced at read time; stale rows stay in
// storage but become permanently inaccessible.
package sharelink

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/kandidaten-platform/internal/db"
)

// TTL is the fixed lifetime of every share link. It is policy, not
// per-call configuration.
const TTL = 7 * 24 * time.Hour

// Store is the slice of the document store the service needs.
type Store interface {
	InsertShareLink(ctx context.Context, link db.ShareLink) error
	GetShareLink(ctx context.Context, token string) (*db.ShareLink, error)
	GetResume(ctx context.Context, id string) (*db.CandidateRecord, error)
}

// Service issues and resolves share links.
type Service struct {
	store   Store
	baseURL string
	now     func() time.Time
}

// NewService creates a share-link service. baseURL is the public prefix
// embedded into generated links.
func NewService(store Store, baseURL string) *Service {
	return &Service{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// CreateLink issues a fresh token for the given candidate identifier and
// returns the fully-qualified share URL. The candidate is not checked for
// existence; a link to a missing candidate resolves to not-found later.
func (s *Service) CreateLink(ctx context.Context, kandidatID string) (string, error) {
	if kandidatID == "" {
		return "", &MissingInputError{Field: "kandidatId"}
	}

	now := s.now().UTC()
	link := db.ShareLink{
		Token:      uuid.New(),
		KandidatID: kandidatID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(TTL),
	}
	if err := s.store.InsertShareLink(ctx, link); err != nil {
		return "", fmt.Errorf("failed to persist share link: %w", err)
	}

	return fmt.Sprintf("%s/share/%s", s.baseURL, link.Token), nil
}

// ResolveLink resolves a token to the referenced candidate record with
// every contact field cleared. It fails with *NotFoundError when the link
// or the candidate is missing and with *ExpiredError once the lifetime has
// passed. Links stay resolvable any number of times until expiry.
func (s *Service) ResolveLink(ctx context.Context, token string) (*db.CandidateRecord, error) {
	if token == "" {
		return nil, &MissingInputError{Field: "token"}
	}

	link, err := s.store.GetShareLink(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load share link: %w", err)
	}
	if link == nil {
		return nil, &NotFoundError{Resource: "share link", Ref: token}
	}
	if s.now().After(link.ExpiresAt) {
		return nil, &ExpiredError{Token: token, ExpiresAt: link.ExpiresAt}
	}

	rec, err := s.store.GetResume(ctx, link.KandidatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if rec == nil {
		return nil, &NotFoundError{Resource: "kandidat", Ref: link.KandidatID}
	}

	redacted := *rec
	redacted.Parsed = rec.Parsed.Redacted()
	return &redacted, nil
}
