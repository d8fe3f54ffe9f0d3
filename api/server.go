// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration, output serialization.
// The API NEVER performs cost logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mach-cost/core/engine"
	"mach-cost/internal/errors"
)

// Server is the API server
type Server struct {
	router         *mux.Router
	engine         *engine.Engine
	version        string
	logger         *zap.Logger
	metricsEnabled bool
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetrics toggles the /metrics endpoint
func WithMetrics(enabled bool) Option {
	return func(s *Server) { s.metricsEnabled = enabled }
}

// NewServer creates a new API server around an engine
func NewServer(version string, eng *engine.Engine, opts ...Option) *Server {
	s := &Server{
		router:         mux.NewRouter(),
		engine:         eng,
		version:        version,
		logger:         zap.NewNop(),
		metricsEnabled: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.Use(requestID)
	s.router.Use(s.instrument)
	s.router.Use(s.recovery)

	// Core endpoints
	s.router.HandleFunc("/estimate", s.handleEstimate).Methods(http.MethodPost)
	s.router.HandleFunc("/tier", s.handleTier).Methods(http.MethodPost)
	s.router.HandleFunc("/vendors", s.handleVendors).Methods(http.MethodGet)
	s.router.HandleFunc("/vendors/filter", s.handleFilterVendors).Methods(http.MethodPost)
	s.router.HandleFunc("/architecture/extract", s.handleExtract).Methods(http.MethodPost)

	// Supporting endpoints
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)
	if s.metricsEnabled {
		s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	// Router middleware does not run for unmatched requests
	s.router.NotFoundHandler = s.unmatched(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, string(errors.TypeNotFound), "no route for "+r.URL.Path, http.StatusNotFound)
	})
	s.router.MethodNotAllowedHandler = s.unmatched(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, "METHOD_NOT_ALLOWED", r.Method+" not allowed on "+r.URL.Path, http.StatusMethodNotAllowed)
	})
}

func (s *Server) unmatched(fn http.HandlerFunc) http.Handler {
	return requestID(s.instrument(fn))
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"vendors": s.engine.Catalog().Len(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":        s.version,
		"engine":         "mach-cost",
		"engine_version": engine.Version,
		"api_version":    "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// writeEngineError maps a typed error to its HTTP status
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	errType := errors.TypeOf(err)

	status := http.StatusInternalServerError
	switch errType {
	case errors.TypeInput, errors.TypeParsing, errors.TypeValidation:
		status = http.StatusBadRequest
	case errors.TypeNotFound:
		status = http.StatusNotFound
	}

	message := err.Error()
	if typed, ok := err.(*errors.Error); ok {
		message = typed.Message
	}
	s.writeError(w, string(errType), message, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return srv.ListenAndServe()
}
