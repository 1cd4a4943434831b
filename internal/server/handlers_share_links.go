package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/kandidaten-platform/internal/logger"
	"github.com/jonathan/kandidaten-platform/internal/rendering"
	"github.com/jonathan/kandidaten-platform/internal/sharelink"
)

// CreateShareLinkRequest represents the request body for POST /share-links
type CreateShareLinkRequest struct {
	KandidatID string `json:"kandidatId" validate:"required"`
}

// CreateShareLinkResponse represents the response for POST /share-links
type CreateShareLinkResponse struct {
	URL string `json:"url"`
}

// shareErrorMessage maps resolution errors to the user-visible localized
// messages. Internal details never reach the response body.
func shareErrorMessage(err error) string {
	var missing *sharelink.MissingInputError
	var notFound *sharelink.NotFoundError
	var expired *sharelink.ExpiredError

	switch {
	case errors.As(err, &missing):
		return "Token ist erforderlich"
	case errors.As(err, &expired):
		return "Link ist abgelaufen"
	case errors.As(err, &notFound):
		if notFound.Resource == "kandidat" {
			return "Kandidat nicht gefunden"
		}
		return "Link nicht gefunden"
	default:
		return "Fehler beim Laden des Profils"
	}
}

// handleCreateShareLink issues a time-limited anonymous link for a candidate
func (s *Server) handleCreateShareLink(w http.ResponseWriter, r *http.Request) {
	var req CreateShareLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "kandidatId ist erforderlich")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "kandidatId ist erforderlich")
		return
	}

	url, err := s.links.CreateLink(r.Context(), req.KandidatID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create share link")
		s.errorResponse(w, HTTPStatus(err), "Fehler beim Erstellen des Share-Links")
		return
	}
	s.writeJSON(w, http.StatusOK, CreateShareLinkResponse{URL: url})
}

// handleResolveShareLink resolves a token to a redacted candidate document
func (s *Server) handleResolveShareLink(w http.ResponseWriter, r *http.Request) {
	rec, err := s.links.ResolveLink(r.Context(), r.PathValue("token"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), shareErrorMessage(err))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"kandidat": rec})
}

// handleShareProfile renders the anonymized profile page behind a token
func (s *Server) handleShareProfile(w http.ResponseWriter, r *http.Request) {
	rec, err := s.links.ResolveLink(r.Context(), r.PathValue("token"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), shareErrorMessage(err))
		return
	}

	page, err := rendering.RenderProfile(rec, true)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render shared profile")
		s.errorResponse(w, http.StatusInternalServerError, "Fehler beim Laden des Profils")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
