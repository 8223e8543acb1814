// Package httpapi serves the grading engine over HTTP for live dashboards.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/placardhq/placard/core"
	"github.com/placardhq/placard/internal/contract"
	"github.com/placardhq/placard/schema"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the engine's read-only operations as JSON endpoints.
type Server struct {
	engine *core.Engine
	mgr    contract.HistoryManager
}

// Option customizes a Server.
type Option func(*Server)

// WithHistory records graded location lookups through mgr.
func WithHistory(mgr contract.HistoryManager) Option {
	return func(s *Server) {
		s.mgr = mgr
	}
}

// New creates a Server. Lookups are not recorded unless WithHistory is given.
func New(engine *core.Engine, opts ...Option) *Server {
	s := &Server{engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// gradeRequest is the body of POST /v1/grade.
type gradeRequest struct {
	Score          *float64 `json:"score"`
	JurisdictionID string   `json:"jurisdiction_id"`
}

// gradeResponse mirrors the live service's scheme result plus the resolved jurisdiction.
type gradeResponse struct {
	schema.SchemeResult
	JurisdictionID string `json:"jurisdiction_id"`
	FellBack       bool   `json:"fell_back"`
}

// unassignedResponse is returned for a location with no jurisdiction yet.
type unassignedResponse struct {
	LocationID string `json:"location_id"`
	Score      *int   `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes returns a chi.Router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/jurisdictions", s.handleJurisdictions)
		r.Post("/grade", s.handleGrade)
		r.Get("/locations/{id}/score", s.handleLocationScore)
	})
	return r
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleJurisdictions(w http.ResponseWriter, r *http.Request) {
	pillar, err := contract.ParsePillar(r.URL.Query().Get("pillar"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	summaries := s.engine.Summaries()
	if pillar != "" {
		filtered := summaries[:0]
		for _, sum := range summaries {
			if sum.Pillar == pillar {
				filtered = append(filtered, sum)
			}
		}
		summaries = filtered
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.Score == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "score is required"})
		return
	}

	outcome := s.engine.GradeScore(*req.Score, req.JurisdictionID)
	writeJSON(w, http.StatusOK, gradeResponse{
		SchemeResult:   outcome.Result,
		JurisdictionID: outcome.JurisdictionID,
		FellBack:       outcome.FellBack,
	})
}

// handleLocationScore never fails for an unknown location: it answers with a
// null score so dashboards can render "not yet assigned".
func (s *Server) handleLocationScore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	results := core.ScoreLocations(r.Context(), s.engine, s.mgr, []string{id})
	if len(results) == 0 {
		writeJSON(w, http.StatusOK, unassignedResponse{LocationID: id})
		return
	}
	writeJSON(w, http.StatusOK, results[0])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contract.LogWarn("Failed to write response", err)
	}
}
