package handlers

import (
	nethttp "net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/positions"
)

// ListValuations returns the valued pool. Query parameters: type
// (hitting|pitching), position, available=true (undrafted non-keepers),
// sort (value|sgp|name, default value), limit.
func (h *Handler) ListValuations(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	pool := h.valuations.Players()
	q := r.URL.Query()

	if typ := q.Get("type"); typ != "" {
		side, ok := parseSide(typ)
		if !ok {
			writeError(w, r, nethttp.StatusBadRequest, "type must be hitting or pitching", h.logger)
			return
		}
		pool = filterValued(pool, func(p players.Valued) bool { return p.Type == side })
	}
	if pos := q.Get("position"); pos != "" {
		slot := strings.ToUpper(pos)
		pool = filterValued(pool, func(p players.Valued) bool {
			return positions.Eligible(p.Positions, slot) || hasPosition(p.Positions, slot)
		})
	}
	if q.Get("available") == "true" {
		pool = filterValued(pool, func(p players.Valued) bool { return !p.Drafted && !p.IsKeeper })
	}

	switch q.Get("sort") {
	case "", "value":
		sort.SliceStable(pool, func(i, j int) bool { return pool[i].InflatedValue > pool[j].InflatedValue })
	case "sgp":
		sort.SliceStable(pool, func(i, j int) bool { return pool[i].SGP.Total > pool[j].SGP.Total })
	case "name":
		sort.SliceStable(pool, func(i, j int) bool { return pool[i].Name < pool[j].Name })
	default:
		writeError(w, r, nethttp.StatusBadRequest, "sort must be value, sgp, or name", h.logger)
		return
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			writeError(w, r, nethttp.StatusBadRequest, "limit must be a positive integer", h.logger)
			return
		}
		if limit < len(pool) {
			pool = pool[:limit]
		}
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"count":   len(pool),
		"players": pool,
	}, loggerFromContext(r, h.logger))
}

// GetValuation returns one valued player by ID, or inflation/warnings
// sub-resources.
func (h *Handler) GetValuation(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/valuations/")
	switch id {
	case "":
		h.ListValuations(w, r)
		return
	case "inflation":
		writeJSON(w, nethttp.StatusOK, h.valuations.Inflation(), h.logger)
		return
	case "warnings":
		writeJSON(w, nethttp.StatusOK, map[string]any{"warnings": h.valuations.Warnings()}, h.logger)
		return
	}

	player, ok := h.valuations.Player(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, loggerFromContext(r, h.logger))
}

func parseSide(s string) (players.Type, bool) {
	switch strings.ToLower(s) {
	case "hitting", "hitter", "hitters":
		return players.TypeHitter, true
	case "pitching", "pitcher", "pitchers":
		return players.TypePitcher, true
	}
	return "", false
}

func filterValued(pool []players.Valued, keep func(players.Valued) bool) []players.Valued {
	out := pool[:0:0]
	for _, p := range pool {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func hasPosition(ps []string, pos string) bool {
	for _, p := range ps {
		if p == pos {
			return true
		}
	}
	return false
}
