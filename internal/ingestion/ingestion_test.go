package ingestion

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/kandidaten-platform/internal/parser"
	"github.com/jonathan/kandidaten-platform/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParser struct {
	profile types.ParsedProfile
	err     error
}

func (f *fakeParser) Parse(_ context.Context, _ io.Reader, _ string) (types.ParsedProfile, error) {
	return f.profile, f.err
}

type fakeStore struct {
	id       uuid.UUID
	err      error
	inserts  int
	parsed   types.ParsedProfile
	fileName string
}

func (f *fakeStore) InsertResume(_ context.Context, parsed types.ParsedProfile, fileName string, _ time.Time) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.inserts++
	f.parsed = parsed
	f.fileName = fileName
	return f.id, nil
}

func TestIngest_Success(t *testing.T) {
	profile := types.ParsedProfile{Name: "Jane Doe", Skills: []string{"Go", "SQL"}}
	store := &fakeStore{id: uuid.New()}
	svc := NewService(&fakeParser{profile: profile}, store)

	before := time.Now().UTC()
	rec, err := svc.Ingest(context.Background(), nil, "jane.pdf")
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.Equal(t, store.id, rec.ID)
	assert.Equal(t, profile, rec.Parsed)
	assert.Equal(t, "jane.pdf", rec.FileName)
	assert.False(t, rec.UploadedAt.Before(before))
	assert.False(t, rec.UploadedAt.After(after))

	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, profile, store.parsed)
	assert.Equal(t, "jane.pdf", store.fileName)
}

func TestIngest_ParseFailureWritesNothing(t *testing.T) {
	upstreamErr := &parser.UpstreamError{URL: "https://parser", Message: "request failed"}
	store := &fakeStore{id: uuid.New()}
	svc := NewService(&fakeParser{err: upstreamErr}, store)

	_, err := svc.Ingest(context.Background(), nil, "jane.pdf")

	// The upstream failure is surfaced as-is, with no retry.
	var ue *parser.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 0, store.inserts)
}

func TestIngest_StoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	svc := NewService(&fakeParser{}, store)

	_, err := svc.Ingest(context.Background(), nil, "jane.pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store candidate record")
}
