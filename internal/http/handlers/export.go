package handlers

import (
	"encoding/csv"
	nethttp "net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/roto-auction-service/internal/logging"
)

// ExportPreDraft streams the valued pool as a draft-day cheat sheet, one
// row per player sorted by inflated value descending (GET /export/pre-draft).
func (h *Handler) ExportPreDraft(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if format := r.URL.Query().Get("format"); format != "" && format != "csv" {
		writeError(w, r, nethttp.StatusBadRequest, "only csv export is supported", h.logger)
		return
	}

	pool := h.valuations.Players()
	if len(pool) == 0 {
		writeError(w, r, nethttp.StatusUnprocessableEntity,
			"no players loaded; upload projections first", h.logger)
		return
	}
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].InflatedValue > pool[j].InflatedValue })

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=pre_draft.csv`)

	cw := csv.NewWriter(w)
	cw.Write([]string{
		"Name", "Team", "Positions", "Dollar Value", "Inflated Value",
		"Steal Below", "Fair Low", "Fair High", "Overpay Above",
		"Breakout Label", "Breakout Score",
	})
	for _, p := range pool {
		label, score := "", ""
		if p.Breakout != nil {
			label = p.Breakout.Label
			score = dollars(p.Breakout.Score)
		}
		cw.Write([]string{
			p.Name, p.Team, strings.Join(p.Positions, ", "),
			dollars(p.DollarValue), dollars(p.InflatedValue),
			dollars(p.Range.StealBelow), dollars(p.Range.FairLow),
			dollars(p.Range.FairHigh), dollars(p.Range.OverpayAbove),
			label, score,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "pre-draft export truncated", "error", err)
	}
}

func dollars(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
