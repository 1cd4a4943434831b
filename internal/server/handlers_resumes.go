package server

import (
	"net/http"
	"time"

	"github.com/jonathan/kandidaten-platform/internal/logger"
	"github.com/jonathan/kandidaten-platform/internal/rendering"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

// maxUploadSize bounds the in-memory portion of a multipart upload.
const maxUploadSize = 32 << 20

// UploadResponse represents the response for POST /resumes
type UploadResponse struct {
	ID         string              `json:"id"`
	Message    string              `json:"message"`
	Parsed     types.ParsedProfile `json:"parsed"`
	FileName   string              `json:"fileName"`
	UploadedAt time.Time           `json:"uploadedAt"`
}

// handleListResumes returns all candidate records, most recent upload first
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListResumes(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("failed to list resumes")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch resumes")
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

// handleGetResume returns one candidate record including contact fields
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume ID is required")
		return
	}

	rec, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to get resume")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

// handleResumeProfile renders the full profile page for internal use,
// contact section included.
func (s *Server) handleResumeProfile(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.GetResume(r.Context(), r.PathValue("id"))
	if err != nil {
		logger.Error().Err(err).Msg("failed to get resume")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch resume")
		return
	}
	if rec == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	page, err := rendering.RenderProfile(rec, false)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render profile")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render profile")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// handleUploadResume accepts a multipart resume upload, delegates parsing
// to the external parser and stores the resulting candidate record.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	rec, err := s.ingest.Ingest(r.Context(), file, header.Filename)
	if err != nil {
		logger.Error().Err(err).Str("file", header.Filename).Msg("failed to process resume")
		s.errorResponse(w, HTTPStatus(err), "Failed to process resume")
		return
	}

	s.writeJSON(w, http.StatusOK, UploadResponse{
		ID:         rec.ID.String(),
		Message:    "Resume parsed and stored successfully",
		Parsed:     rec.Parsed,
		FileName:   rec.FileName,
		UploadedAt: rec.UploadedAt,
	})
}
