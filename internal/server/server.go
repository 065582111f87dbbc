// Package server exposes the understanding pipeline over HTTP. It is the
// conversation-orchestration shell around the pure core: it owns session
// persistence and response serialization, the pipeline owns the analysis.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	stderrors "github.com/Kelvin-Wepo/Rafiki.ai/internal/common/errors"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/logger"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/common/observability"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/models"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/notify"
	"github.com/Kelvin-Wepo/Rafiki.ai/internal/pipeline"
)

// SessionStore is the slice of the session layer the server needs.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*models.SessionContext, error)
	Save(ctx context.Context, sessionID string, sc models.SessionContext) error
	Ping(ctx context.Context) error
}

type Server struct {
	analyzer *pipeline.Analyzer
	sessions SessionStore
	channels notify.Channels
	obs      *observability.Observability
	logger   logger.Logger
}

func New(analyzer *pipeline.Analyzer, sessions SessionStore, channels notify.Channels, obs *observability.Observability, log logger.Logger) *Server {
	if channels.SMS == nil {
		channels.SMS = notify.NoopNotifier{}
	}
	if channels.Email == nil {
		channels.Email = notify.NoopNotifier{}
	}
	return &Server{
		analyzer: analyzer,
		sessions: sessions,
		channels: channels,
		obs:      obs,
		logger:   log.WithFields(map[string]interface{}{"component": "http-server"}),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ai/analyze", s.handleAnalyze).Methods(http.MethodPost)
	api.HandleFunc("/ai/detect-language", s.handleDetectLanguage).Methods(http.MethodPost)
	api.HandleFunc("/ai/detect-switches", s.handleDetectSwitches).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/language", s.handlePinLanguage).Methods(http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// writeError serializes a StandardError; the code constants in
// common/errors are the single source of the wire-level error vocabulary.
func (s *Server) writeError(w http.ResponseWriter, status int, serr *stderrors.StandardError) {
	payload := map[string]interface{}{
		"error":   serr.Code,
		"message": serr.Message,
	}
	if serr.Details != "" {
		payload["details"] = serr.Details
	}
	s.writeJSON(w, status, payload)
}
