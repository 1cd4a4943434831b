package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/kandidaten-platform/internal/db"
	"github.com/jonathan/kandidaten-platform/internal/ingestion"
	"github.com/jonathan/kandidaten-platform/internal/sharelink"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

// mockStore implements Store in memory for testing
type mockStore struct {
	resumes   map[string]db.CandidateRecord
	links     map[string]db.ShareLink
	listErr   error
	insertErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		resumes: make(map[string]db.CandidateRecord),
		links:   make(map[string]db.ShareLink),
	}
}

func (m *mockStore) InsertResume(_ context.Context, parsed types.ParsedProfile, fileName string, uploadedAt time.Time) (uuid.UUID, error) {
	if m.insertErr != nil {
		return uuid.Nil, m.insertErr
	}
	rec := db.CandidateRecord{ID: uuid.New(), Parsed: parsed, FileName: fileName, UploadedAt: uploadedAt}
	m.resumes[rec.ID.String()] = rec
	return rec.ID, nil
}

func (m *mockStore) ListResumes(_ context.Context) ([]db.CandidateRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	records := []db.CandidateRecord{}
	for _, rec := range m.resumes {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UploadedAt.After(records[j].UploadedAt)
	})
	return records, nil
}

func (m *mockStore) GetResume(_ context.Context, id string) (*db.CandidateRecord, error) {
	rec, ok := m.resumes[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *mockStore) InsertShareLink(_ context.Context, link db.ShareLink) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.links[link.Token.String()] = link
	return nil
}

func (m *mockStore) GetShareLink(_ context.Context, token string) (*db.ShareLink, error) {
	link, ok := m.links[token]
	if !ok {
		return nil, nil
	}
	return &link, nil
}

func (m *mockStore) Close() {}

// fakeParser stands in for the external parsing API
type fakeParser struct {
	profile types.ParsedProfile
	err     error
}

func (f *fakeParser) Parse(_ context.Context, _ io.Reader, _ string) (types.ParsedProfile, error) {
	return f.profile, f.err
}

// testServer creates a server backed by the mock store
type testServer struct {
	*Server
	mock   *mockStore
	parser *fakeParser
}

func newTestServer() *testServer {
	mock := newMockStore()
	p := &fakeParser{}
	s := &Server{
		store:    mock,
		ingest:   ingestion.NewService(p, mock),
		links:    sharelink.NewService(mock, "http://localhost:8080"),
		validate: validator.New(),
	}
	return &testServer{Server: s, mock: mock, parser: p}
}

// addCandidate seeds the mock store and returns the record
func (ts *testServer) addCandidate(profile types.ParsedProfile, uploadedAt time.Time) db.CandidateRecord {
	rec := db.CandidateRecord{
		ID:         uuid.New(),
		Parsed:     profile,
		FileName:   "resume.pdf",
		UploadedAt: uploadedAt,
	}
	ts.mock.resumes[rec.ID.String()] = rec
	return rec
}

// addLink seeds a share link and returns the token
func (ts *testServer) addLink(kandidatID string, createdAt, expiresAt time.Time) string {
	link := db.ShareLink{Token: uuid.New(), KandidatID: kandidatID, CreatedAt: createdAt, ExpiresAt: expiresAt}
	ts.mock.links[link.Token.String()] = link
	return link.Token.String()
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

// TestRoutes_MethodNotAllowed verifies the mux rejects wrong methods
func TestRoutes_MethodNotAllowed(t *testing.T) {
	s := newTestServer()
	mux := s.routes()

	req := httptest.NewRequest(http.MethodDelete, "/resumes", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

var errStorage = errors.New("storage unavailable")
