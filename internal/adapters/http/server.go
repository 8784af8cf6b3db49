package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dvstudio/nodewire/internal/logging"
	"github.com/dvstudio/nodewire/pkg/domain"
	"github.com/dvstudio/nodewire/pkg/observability"
)

// Service is the slice of the template service the HTTP layer needs.
type Service interface {
	UpdateNodeConfig(ctx context.Context, req domain.UpdateRequest) (domain.NodeConfig, error)
	NodeConfig(ctx context.Context, nodeID string) (domain.NodeConfig, error)
	LoadState(ctx context.Context, filePath string) (domain.SavedState, error)
}

// Server exposes the FormatString endpoints consumed by the editor frontend.
type Server struct {
	svc     Service
	log     *slog.Logger
	metrics *observability.Metrics
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets a structured logger.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) {
		s.log = log
	}
}

// WithMetrics attaches request counters and mounts /metrics.
func WithMetrics(m *observability.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewHandler creates the HTTP handler for the template service.
func NewHandler(svc Service, opts ...ServerOption) http.Handler {
	s := &Server{svc: svc, log: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/update_format_string_node", s.updateNode)
	r.Post("/load_format_string_node", s.loadNode)
	r.Get("/get_format_string_node_config/{node_id}", s.getNodeConfig)
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, route string, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "route", route, "error", err)
	}
	s.metrics.Request(route, code)
}

func (s *Server) writeError(w http.ResponseWriter, route string, code int, msg string) {
	s.writeJSON(w, route, code, map[string]string{"error": msg})
}

// updateNode handles POST /update_format_string_node.
func (s *Server) updateNode(w http.ResponseWriter, r *http.Request) {
	const route = "/update_format_string_node"

	var req domain.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, route, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := s.svc.UpdateNodeConfig(r.Context(), req)
	if err != nil {
		s.log.Error("update node config failed", "node", req.NodeID, "error", err)
		s.writeError(w, route, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, route, http.StatusOK, cfg)
}

// loadNode handles POST /load_format_string_node. A path with nothing saved
// answers an empty object, matching what the frontend expects.
func (s *Server) loadNode(w http.ResponseWriter, r *http.Request) {
	const route = "/load_format_string_node"

	var body struct {
		FilePath string `json:"file_path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, route, http.StatusBadRequest, "invalid request body")
		return
	}

	st, err := s.svc.LoadState(r.Context(), body.FilePath)
	if err != nil {
		if errors.Is(err, domain.ErrMissingSavePath) {
			s.writeError(w, route, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("state load failed", "path", body.FilePath, "error", err)
		s.writeError(w, route, http.StatusInternalServerError, err.Error())
		return
	}

	if st.IsZero() {
		s.writeJSON(w, route, http.StatusOK, map[string]any{})
		return
	}
	s.writeJSON(w, route, http.StatusOK, st)
}

// getNodeConfig handles GET /get_format_string_node_config/{node_id}. An
// unknown node answers an empty object rather than an error.
func (s *Server) getNodeConfig(w http.ResponseWriter, r *http.Request) {
	const route = "/get_format_string_node_config"

	nodeID := chi.URLParam(r, "node_id")
	cfg, err := s.svc.NodeConfig(r.Context(), nodeID)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			s.writeJSON(w, route, http.StatusOK, map[string]any{})
			return
		}
		s.log.Error("config lookup failed", "node", nodeID, "error", err)
		s.writeError(w, route, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, route, http.StatusOK, cfg)
}
