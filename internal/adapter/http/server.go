// Package http exposes the cleaned tables, the master table, and the derived
// analysis views as read-only JSON, plus the usual health, readiness, and
// metrics endpoints. This is the only output channel of the service.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/forest-data-etl/internal/domain"
	"github.com/couchcryptid/forest-data-etl/internal/pipeline"
)

// ResultProvider serves load results and readiness state. Implemented by
// *pipeline.Pipeline.
type ResultProvider interface {
	Load(ctx context.Context) (*pipeline.Result, error)
	Reload(ctx context.Context) (*pipeline.Result, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the data API over HTTP.
type Server struct {
	httpServer *http.Server
	provider   ResultProvider
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all data and operational routes.
func NewServer(addr string, provider ResultProvider, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		provider: provider,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /tables/{key}", s.handleTable)
	mux.HandleFunc("GET /master", s.handleMaster)
	mux.HandleFunc("GET /master/mangrove", s.handleMangroveSnapshot)
	mux.HandleFunc("GET /summary", s.handleSummary)
	mux.HandleFunc("GET /leaderboard", s.handleLeaderboard)
	mux.HandleFunc("GET /states/{name}", s.handleState)
	mux.HandleFunc("GET /quality", s.handleQuality)
	mux.HandleFunc("POST /reload", s.handleReload)

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

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.provider.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	table, found := result.Tables.ByKey(r.PathValue("key"))
	if !found {
		writeError(w, http.StatusNotFound, "unknown table: "+r.PathValue("key"))
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleMaster(w http.ResponseWriter, r *http.Request) {
	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result.Master)
}

func (s *Server) handleMangroveSnapshot(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		writeError(w, http.StatusBadRequest, "year query parameter must be a positive integer")
		return
	}

	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	snapshot := domain.MangroveSnapshot(result.Master, result.Tables.Mangrove, year)
	writeJSON(w, http.StatusOK, map[string]any{
		"year":            year,
		"available_years": domain.MangroveYears(result.Tables.Mangrove),
		"table":           snapshot,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, domain.Summarize(result.Master))
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	n := 5
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "n query parameter must be a positive integer")
			return
		}
		n = parsed
	}

	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	gainers, losers := domain.Leaderboard(result.Master, n)
	writeJSON(w, http.StatusOK, map[string]any{
		"gainers": gainers,
		"losers":  losers,
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	profile, found := domain.ProfileState(result.Master, result.Tables.Mangrove, r.PathValue("name"))
	if !found {
		writeError(w, http.StatusNotFound, "unknown state: "+r.PathValue("name"))
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	result, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result.Quality)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	result, err := s.provider.Reload(r.Context())
	if err != nil {
		s.logger.Error("reload failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"fingerprint": result.Fingerprint,
		"loaded_at":   result.LoadedAt,
		"master_rows": result.Master.Len(),
	})
}

// loadResult fetches the current result, writing a 503 when the sources are
// unavailable. The load is memoized, so the common path is a cache hit.
func (s *Server) loadResult(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	result, err := s.provider.Load(r.Context())
	if err != nil {
		s.logger.Error("load failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return nil, false
	}
	return result, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
