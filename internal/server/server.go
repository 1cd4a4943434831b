package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/kandidaten-platform/internal/db"
	"github.com/jonathan/kandidaten-platform/internal/ingestion"
	"github.com/jonathan/kandidaten-platform/internal/logger"
	"github.com/jonathan/kandidaten-platform/internal/parser"
	"github.com/jonathan/kandidaten-platform/internal/sharelink"
	"github.com/jonathan/kandidaten-platform/internal/types"
)

// Store is the slice of the document store the handlers use. *db.DB
// implements it; tests substitute an in-memory fake.
type Store interface {
	InsertResume(ctx context.Context, parsed types.ParsedProfile, fileName string, uploadedAt time.Time) (uuid.UUID, error)
	ListResumes(ctx context.Context) ([]db.CandidateRecord, error)
	GetResume(ctx context.Context, id string) (*db.CandidateRecord, error)
	InsertShareLink(ctx context.Context, link db.ShareLink) error
	GetShareLink(ctx context.Context, token string) (*db.ShareLink, error)
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	ingest     *ingestion.Service
	links      *sharelink.Service
	validate   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	BaseURL      string
	ParserAPIKey string
	ParserAPIURL string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to the document store
	store, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	parserClient := parser.NewClient(cfg.ParserAPIURL, cfg.ParserAPIKey)

	s := &Server{
		store:    store,
		ingest:   ingestion.NewService(parserClient, store),
		links:    sharelink.NewService(store, cfg.BaseURL),
		validate: validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // upstream parse calls block the request
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Candidate records
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("GET /resumes/{id}/profile", s.handleResumeProfile)
	mux.HandleFunc("POST /resumes", s.handleUploadResume)

	// Share links
	mux.HandleFunc("POST /share-links", s.handleCreateShareLink)
	mux.HandleFunc("GET /share/{token}", s.handleResolveShareLink)
	mux.HandleFunc("GET /share/{token}/profile", s.handleShareProfile)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Close()
	logger.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs one line per request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
