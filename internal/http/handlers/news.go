package handlers

import (
	nethttp "net/http"
	"strings"
)

// PlayerNews proxies roster status and recent transactions for one player
// (GET /news/{playerName}). The upstream source is cached, so draft-room
// polling stays cheap.
func (h *Handler) PlayerNews(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.news == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "news lookups are disabled", h.logger)
		return
	}
	name := strings.TrimSpace(strings.TrimPrefix(r.URL.Path, "/news/"))
	if name == "" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	news, err := h.news.PlayerNews(r.Context(), name)
	if err != nil {
		writeError(w, r, nethttp.StatusBadGateway, "news lookup failed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, news, loggerFromContext(r, h.logger))
}
