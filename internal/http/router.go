// Package http registers the service's routes.
package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/roto-auction-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)

	mux.HandleFunc("/projections", handler.ListProjections)
	mux.HandleFunc("/projections/hitting", handler.UploadHitting)
	mux.HandleFunc("/projections/pitching", handler.UploadPitching)
	mux.HandleFunc("/projections/", handler.DeleteProjection)

	mux.HandleFunc("/valuations", handler.ListValuations)
	mux.HandleFunc("/valuations/", handler.GetValuation)

	mux.HandleFunc("/teams", handler.ListTeams)
	mux.HandleFunc("/teams/", handler.TeamRoutes)

	mux.HandleFunc("/export/pre-draft", handler.ExportPreDraft)
	mux.HandleFunc("/news/", handler.PlayerNews)

	mux.HandleFunc("/keepers/import", handler.ImportKeepers)
	mux.HandleFunc("/keepers/link", handler.LinkKeepers)

	mux.HandleFunc("/draft/start", handler.StartDraft)
	mux.HandleFunc("/draft/picks", handler.DraftPicks)
	mux.HandleFunc("/draft/picks/", handler.DraftPicks)
	mux.HandleFunc("/draft/state", handler.DraftState)
	mux.HandleFunc("/draft/reset", handler.ResetDraft)
	mux.HandleFunc("/draft/save", handler.SaveDraft)
	mux.HandleFunc("/draft/load", handler.LoadDraft)
	mux.HandleFunc("/draft/alerts", handler.DraftAlerts)

	return mux
}
