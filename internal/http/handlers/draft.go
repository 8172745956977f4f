package handlers

import (
	nethttp "net/http"
	"strconv"
	"strings"
)

// StartDraft opens the auction.
func (h *Handler) StartDraft(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := h.draft.Start(); err != nil {
		writeError(w, r, nethttp.StatusConflict, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.draft.State(), loggerFromContext(r, h.logger))
}

// DraftPicks records a pick (POST /draft/picks) or undoes one
// (DELETE /draft/picks/{id}).
func (h *Handler) DraftPicks(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/draft/picks")
	id = strings.TrimPrefix(id, "/")

	switch {
	case r.Method == nethttp.MethodPost && id == "":
		h.recordPick(w, r)
	case r.Method == nethttp.MethodDelete && id != "":
		if err := h.draft.Undo(id); err != nil {
			writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, h.draft.State(), loggerFromContext(r, h.logger))
	case r.Method == nethttp.MethodGet && id == "":
		writeJSON(w, nethttp.StatusOK, map[string]any{"picks": h.draft.State().Picks}, h.logger)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) recordPick(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req struct {
		PlayerID string `json:"playerId"`
		TeamID   string `json:"teamId"`
		Price    int    `json:"price"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid body", h.logger)
		return
	}
	if req.PlayerID == "" || req.TeamID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "playerId and teamId are required", h.logger)
		return
	}
	pick, err := h.draft.Record(req.PlayerID, req.TeamID, req.Price)
	if err != nil {
		writeError(w, r, nethttp.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, pick, loggerFromContext(r, h.logger))
}

// DraftState returns the current ledger.
func (h *Handler) DraftState(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.draft.State(), loggerFromContext(r, h.logger))
}

// ResetDraft discards the ledger and frees drafted players.
func (h *Handler) ResetDraft(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	h.draft.Reset()
	writeJSON(w, nethttp.StatusOK, h.draft.State(), loggerFromContext(r, h.logger))
}

// SaveDraft persists the ledger to disk on demand.
func (h *Handler) SaveDraft(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := h.draft.Save(); err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "saved"}, loggerFromContext(r, h.logger))
}

// LoadDraft restores the saved ledger and replays it against the pool.
func (h *Handler) LoadDraft(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	picks, err := h.draft.Load()
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"status": "loaded",
		"picks":  picks,
	}, loggerFromContext(r, h.logger))
}

// DraftAlerts returns the most recent picks, newest first. Query
// parameter limit defaults to 10.
func (h *Handler) DraftAlerts(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, nethttp.StatusBadRequest, "limit must be a positive integer", h.logger)
			return
		}
		limit = n
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"alerts": h.draft.Alerts(limit)}, loggerFromContext(r, h.logger))
}
