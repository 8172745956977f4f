package handlers

import (
	nethttp "net/http"
	"strings"

	domaindraft "github.com/preston-bernstein/roto-auction-service/internal/domain/draft"
)

// teamView is a Team plus the derived budget numbers clients always want
// next to it.
type teamView struct {
	*domaindraft.Team
	KeeperSalary    int `json:"keeperSalary"`
	TotalSpent      int `json:"totalSpent"`
	RemainingBudget int `json:"remainingBudget"`
}

func (h *Handler) teamView(t *domaindraft.Team) teamView {
	return teamView{
		Team:            t,
		KeeperSalary:    t.KeeperSalary(),
		TotalSpent:      t.TotalSpent(),
		RemainingBudget: t.RemainingBudget(h.cfg.BudgetPerTeam),
	}
}

// ListTeams returns every team with budget summaries.
func (h *Handler) ListTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	teams := h.keepers.Teams()
	out := make([]teamView, 0, len(teams))
	for _, t := range teams {
		out = append(out, h.teamView(t))
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": out}, h.logger)
}

// TeamRoutes dispatches /teams/{id} and its sub-resources.
func (h *Handler) TeamRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	teamID, sub, _ := strings.Cut(rest, "/")
	if teamID == "" {
		h.ListTeams(w, r)
		return
	}

	switch sub {
	case "":
		h.team(w, r, teamID)
	case "keepers":
		h.teamKeepers(w, r, teamID)
	case "recommendations":
		h.teamRecommendations(w, r, teamID)
	case "needs":
		h.teamNeeds(w, r, teamID)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) team(w nethttp.ResponseWriter, r *nethttp.Request, teamID string) {
	switch r.Method {
	case nethttp.MethodGet:
		t, ok := h.keepers.Team(teamID)
		if !ok {
			writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, h.teamView(t), h.logger)
	case nethttp.MethodPut:
		var req struct {
			Name string `json:"name"`
		}
		if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Name) == "" {
			writeError(w, r, nethttp.StatusBadRequest, "body must include a non-empty name", h.logger)
			return
		}
		if err := h.keepers.Rename(teamID, strings.TrimSpace(req.Name)); err != nil {
			writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
			return
		}
		t, _ := h.keepers.Team(teamID)
		writeJSON(w, nethttp.StatusOK, h.teamView(t), h.logger)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) teamKeepers(w nethttp.ResponseWriter, r *nethttp.Request, teamID string) {
	logger := loggerFromContext(r, h.logger)
	switch r.Method {
	case nethttp.MethodGet:
		t, ok := h.keepers.Team(teamID)
		if !ok {
			writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, map[string]any{"keepers": t.Keepers}, logger)
	case nethttp.MethodPost:
		var req struct {
			PlayerName string `json:"playerName"`
			Salary     int    `json:"salary"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid body", h.logger)
			return
		}
		if strings.TrimSpace(req.PlayerName) == "" || req.Salary < 1 {
			writeError(w, r, nethttp.StatusBadRequest, "playerName and a salary of at least $1 are required", h.logger)
			return
		}
		k := domaindraft.Keeper{PlayerName: strings.TrimSpace(req.PlayerName), Salary: req.Salary}
		if err := h.keepers.AddKeeper(teamID, k); err != nil {
			writeError(w, r, nethttp.StatusUnprocessableEntity, err.Error(), h.logger)
			return
		}
		t, _ := h.keepers.Team(teamID)
		writeJSON(w, nethttp.StatusCreated, map[string]any{"keepers": t.Keepers}, logger)
	case nethttp.MethodPut:
		var req struct {
			Keepers []struct {
				PlayerName string `json:"playerName"`
				Salary     int    `json:"salary"`
			} `json:"keepers"`
		}
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid body", h.logger)
			return
		}
		ks := make([]domaindraft.Keeper, 0, len(req.Keepers))
		for _, k := range req.Keepers {
			if strings.TrimSpace(k.PlayerName) == "" || k.Salary < 1 {
				writeError(w, r, nethttp.StatusBadRequest, "each keeper needs playerName and a salary of at least $1", h.logger)
				return
			}
			ks = append(ks, domaindraft.Keeper{PlayerName: strings.TrimSpace(k.PlayerName), Salary: k.Salary})
		}
		if err := h.keepers.SetKeepers(teamID, ks); err != nil {
			writeError(w, r, nethttp.StatusUnprocessableEntity, err.Error(), h.logger)
			return
		}
		t, _ := h.keepers.Team(teamID)
		writeJSON(w, nethttp.StatusOK, map[string]any{"keepers": t.Keepers}, logger)
	case nethttp.MethodDelete:
		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, r, nethttp.StatusBadRequest, "name query parameter required", h.logger)
			return
		}
		if err := h.keepers.RemoveKeeper(teamID, name); err != nil {
			writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
			return
		}
		t, _ := h.keepers.Team(teamID)
		writeJSON(w, nethttp.StatusOK, map[string]any{"keepers": t.Keepers}, logger)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) teamRecommendations(w nethttp.ResponseWriter, r *nethttp.Request, teamID string) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	recs, err := h.recommend.Recommendations(teamID)
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"recommendations": recs}, loggerFromContext(r, h.logger))
}

func (h *Handler) teamNeeds(w nethttp.ResponseWriter, r *nethttp.Request, teamID string) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	needs, err := h.recommend.Needs(teamID)
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{"needs": needs}, loggerFromContext(r, h.logger))
}

// ImportKeepers ingests a keeper CSV of team_name,player_name,salary rows.
func (h *Handler) ImportKeepers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	body, _, err := readUpload(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	report, err := h.keepers.ImportCSV(strings.NewReader(string(body)))
	if err != nil {
		writeError(w, r, nethttp.StatusUnprocessableEntity, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, loggerFromContext(r, h.logger))
}

// LinkKeepers re-resolves all keeper names against the current pool.
func (h *Handler) LinkKeepers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.keepers.Link(), loggerFromContext(r, h.logger))
}
