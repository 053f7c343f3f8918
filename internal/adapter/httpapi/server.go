// Package httpapi exposes the query pipeline over HTTP alongside health,
// readiness, and metrics endpoints. It is a thin presentation boundary: the
// core returns structured data and this package only serializes it.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/digitalsri/singapore-flood-risk-tool/internal/domain"
)

// RiskAssessor runs the lookup and risk-classification pipeline.
type RiskAssessor interface {
	Assess(postalCode string) (domain.RiskAssessment, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the assessment API plus health, readiness, and metrics
// HTTP endpoints.
type Server struct {
	httpServer *http.Server
	assessor   RiskAssessor
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the assessment, legend, health,
// readiness, and metrics routes.
func NewServer(addr string, assessor RiskAssessor, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		assessor: assessor,
		logger:   logger,
	}

	mux.HandleFunc("GET /api/v1/assessments/{postal}", s.handleAssessment)
	mux.HandleFunc("GET /api/v1/legend", s.handleLegend)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	postal := r.PathValue("postal")

	assessment, err := s.assessor.Assess(postal)
	if err != nil {
		s.writeAssessmentError(w, postal, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// writeAssessmentError maps pipeline errors to distinct HTTP responses:
// a malformed code and a well-formed but absent code are different user
// conditions and must not be conflated.
func (s *Server) writeAssessmentError(w http.ResponseWriter, postal string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Code:    "invalid_format",
			Message: "please enter a valid 6-digit postal code (e.g. 018989)",
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{
			Code:    "not_found",
			Message: "postal code not found in database, please verify the code and try again",
		})
	default:
		s.logger.Error("assessment failed", "postal_code", postal, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code:    "internal",
			Message: "internal error",
		})
	}
}

func (s *Server) handleLegend(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Legend())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.assessor.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
