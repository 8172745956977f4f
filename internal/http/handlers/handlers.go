// Package handlers wires HTTP routes to the auction services.
package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/roto-auction-service/internal/app/draft"
	"github.com/preston-bernstein/roto-auction-service/internal/app/keepers"
	"github.com/preston-bernstein/roto-auction-service/internal/app/recommend"
	"github.com/preston-bernstein/roto-auction-service/internal/app/valuations"
	"github.com/preston-bernstein/roto-auction-service/internal/autosave"
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/projections"
	"github.com/preston-bernstein/roto-auction-service/internal/providers"
)

// Handler wires HTTP routes to the domain services.
type Handler struct {
	valuations *valuations.Service
	keepers    *keepers.Service
	draft      *draft.Service
	recommend  *recommend.Service
	files      *projections.FileStore
	news       providers.NewsProvider
	cfg        config.League
	logger     *slog.Logger
	statusFn   func() autosave.Status
}

// NewHandler constructs a Handler. files, news, and statusFn may be nil
// when the corresponding feature is disabled.
func NewHandler(vals *valuations.Service, keeps *keepers.Service, drft *draft.Service, recs *recommend.Service, files *projections.FileStore, news providers.NewsProvider, cfg config.League, logger *slog.Logger, statusFn func() autosave.Status) *Handler {
	return &Handler{
		valuations: vals,
		keepers:    keeps,
		draft:      drft,
		recommend:  recs,
		files:      files,
		news:       news,
		cfg:        cfg,
		logger:     logger,
		statusFn:   statusFn,
	}
}

// Health reports process liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic: the pool must be loaded and valued,
// and the autosave loop must not be failing repeatedly.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.valuations.PoolSize() == 0 {
		writeError(w, r, nethttp.StatusServiceUnavailable, "projections not loaded", h.logger)
		return
	}
	if h.statusFn != nil && !h.statusFn().Healthy() {
		msg := h.statusFn().LastError
		if msg == "" {
			msg = "draft autosave failing"
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status":   "ready",
		"poolSize": h.valuations.PoolSize(),
	}, h.logger)
}
