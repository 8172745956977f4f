package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	appdraft "github.com/preston-bernstein/roto-auction-service/internal/app/draft"
	"github.com/preston-bernstein/roto-auction-service/internal/app/keepers"
	"github.com/preston-bernstein/roto-auction-service/internal/app/recommend"
	"github.com/preston-bernstein/roto-auction-service/internal/app/valuations"
	"github.com/preston-bernstein/roto-auction-service/internal/autosave"
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/projections"
	"github.com/preston-bernstein/roto-auction-service/internal/providers"
	"github.com/preston-bernstein/roto-auction-service/internal/snapshots"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
)

const hittingCSV = `Name,Team,Pos,playerid,AB,H,HR,R,RBI,SB,AVG
Aaron Judge,NYY,OF,15640,590,170,48,110,115,8,.288
Bo Bichette,TOR,SS,19612,600,175,24,90,85,12,.292
Gunnar Henderson,BAL,SS/3B,26289,610,168,35,100,92,18,.275
Juan Soto,NYM,OF,20123,550,160,38,105,100,9,.291
`

const pitchingCSV = `Name,Team,Pos,playerid,IP,W,SV,SO,ERA,WHIP
Tarik Skubal,DET,SP,22267,190,15,0,220,2.90,1.02
Emmanuel Clase,CLE,RP,23472,70,4,38,75,2.40,0.95
George Kirby,SEA,SP,24509,185,12,0,180,3.40,1.08
`

type fixture struct {
	handler *Handler
	mux     http.Handler
}

// stubNews serves canned lookups without touching the network.
type stubNews struct {
	news providers.PlayerNews
	err  error
	last string
}

func (s *stubNews) PlayerNews(ctx context.Context, name string) (providers.PlayerNews, error) {
	s.last = name
	return s.news, s.err
}

func newFixture(t *testing.T, statusFn func() autosave.Status) *fixture {
	return newFixtureWithNews(t, statusFn, nil)
}

func newFixtureWithNews(t *testing.T, statusFn func() autosave.Status, news providers.NewsProvider) *fixture {
	t.Helper()
	cfg := config.DefaultLeague()
	st := store.NewMemoryStore()
	keeperSvc := keepers.NewService(cfg, st, nil)
	valSvc := valuations.NewService(st, cfg, keeperSvc, nil, nil)
	keeperSvc.SetRevaluer(valSvc)

	dir := t.TempDir()
	writer := snapshots.NewWriter(dir, 14)
	snaps := snapshots.NewFSStore(dir)
	draftSvc := appdraft.NewService(st, keeperSvc, valSvc, writer, snaps, cfg, nil, nil)
	recSvc := recommend.NewService(st, keeperSvc, cfg)
	files := projections.NewFileStore(t.TempDir())

	h := NewHandler(valSvc, keeperSvc, draftSvc, recSvc, files, news, cfg, nil, statusFn)
	return &fixture{handler: h, mux: newMux(h)}
}

// newMux mirrors the route table so handler tests cover dispatch too.
func newMux(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/projections", h.ListProjections)
	mux.HandleFunc("/projections/hitting", h.UploadHitting)
	mux.HandleFunc("/projections/pitching", h.UploadPitching)
	mux.HandleFunc("/projections/", h.DeleteProjection)
	mux.HandleFunc("/valuations", h.ListValuations)
	mux.HandleFunc("/valuations/", h.GetValuation)
	mux.HandleFunc("/teams", h.ListTeams)
	mux.HandleFunc("/teams/", h.TeamRoutes)
	mux.HandleFunc("/export/pre-draft", h.ExportPreDraft)
	mux.HandleFunc("/news/", h.PlayerNews)
	mux.HandleFunc("/keepers/import", h.ImportKeepers)
	mux.HandleFunc("/keepers/link", h.LinkKeepers)
	mux.HandleFunc("/draft/start", h.StartDraft)
	mux.HandleFunc("/draft/picks", h.DraftPicks)
	mux.HandleFunc("/draft/picks/", h.DraftPicks)
	mux.HandleFunc("/draft/state", h.DraftState)
	mux.HandleFunc("/draft/reset", h.ResetDraft)
	mux.HandleFunc("/draft/save", h.SaveDraft)
	mux.HandleFunc("/draft/load", h.LoadDraft)
	mux.HandleFunc("/draft/alerts", h.DraftAlerts)
	return mux
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		if strings.HasPrefix(body, "{") {
			req.Header.Set("Content-Type", "application/json")
		} else {
			req.Header.Set("Content-Type", "text/csv")
		}
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) loadPool(t *testing.T) {
	t.Helper()
	if rec := f.do(t, http.MethodPost, "/projections/hitting", hittingCSV); rec.Code != http.StatusOK {
		t.Fatalf("hitting upload failed: %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(t, http.MethodPost, "/projections/pitching", pitchingCSV); rec.Code != http.StatusOK {
		t.Fatalf("pitching upload failed: %d %s", rec.Code, rec.Body)
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("response not json: %v\n%s", err, rec.Body)
	}
}

func TestHealth(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health should be 200, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPost, "/health", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health should be 405, got %d", rec.Code)
	}
}

func TestReadyLifecycle(t *testing.T) {
	f := newFixture(t, nil)

	if rec := f.do(t, http.MethodGet, "/ready", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("empty pool means not ready, got %d", rec.Code)
	}

	f.loadPool(t)
	rec := f.do(t, http.MethodGet, "/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("loaded pool should be ready, got %d %s", rec.Code, rec.Body)
	}
	var body struct {
		Status   string `json:"status"`
		PoolSize int    `json:"poolSize"`
	}
	decodeBody(t, rec, &body)
	// The NL hitter is filtered out at parse time.
	if body.Status != "ready" || body.PoolSize != 6 {
		t.Fatalf("unexpected ready body: %+v", body)
	}
}

func TestReadyReportsAutosaveFailures(t *testing.T) {
	status := autosave.Status{ConsecutiveFailures: 5, LastError: "disk full"}
	f := newFixture(t, func() autosave.Status { return status })
	f.loadPool(t)

	rec := f.do(t, http.MethodGet, "/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("failing autosave means not ready, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "disk full") {
		t.Fatalf("last error should surface: %s", rec.Body)
	}
}

func TestUploadAndListValuations(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/projections/hitting", hittingCSV)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload failed: %d %s", rec.Code, rec.Body)
	}
	var upload struct {
		Side    string `json:"side"`
		Loaded  int    `json:"loaded"`
		Skipped int    `json:"skipped"`
	}
	decodeBody(t, rec, &upload)
	if upload.Side != "hitter" || upload.Loaded != 3 || upload.Skipped != 1 {
		t.Fatalf("unexpected upload report: %+v", upload)
	}

	f.do(t, http.MethodPost, "/projections/pitching", pitchingCSV)

	rec = f.do(t, http.MethodGet, "/valuations?type=hitting&sort=value", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body)
	}
	var list struct {
		Count   int `json:"count"`
		Players []struct {
			ID            string  `json:"id"`
			DollarValue   float64 `json:"dollarValue"`
			InflatedValue float64 `json:"inflatedValue"`
		} `json:"players"`
	}
	decodeBody(t, rec, &list)
	if list.Count != 3 {
		t.Fatalf("expected 3 hitters, got %+v", list)
	}
	for i := 1; i < len(list.Players); i++ {
		if list.Players[i].DollarValue > list.Players[i-1].DollarValue {
			t.Fatalf("value sort violated: %+v", list.Players)
		}
	}
	for _, p := range list.Players {
		if p.DollarValue < 1 {
			t.Fatalf("every rostered player carries at least $1: %+v", p)
		}
	}
}

func TestValuationFilters(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	rec := f.do(t, http.MethodGet, "/valuations?position=SS", "")
	var list struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &list)
	if list.Count != 2 {
		t.Fatalf("expected the two shortstops, got %+v", list)
	}

	if rec := f.do(t, http.MethodGet, "/valuations?type=goalie", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad type must 400, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/valuations?sort=height", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad sort must 400, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/valuations?limit=0", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit must 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/valuations?limit=2", "")
	decodeBody(t, rec, &list)
	if list.Count != 2 {
		t.Fatalf("limit must truncate, got %+v", list)
	}
}

func TestGetValuationByID(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	rec := f.do(t, http.MethodGet, "/valuations/h15640", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup failed: %d %s", rec.Code, rec.Body)
	}
	var player struct {
		Name string `json:"name"`
	}
	decodeBody(t, rec, &player)
	if player.Name != "Aaron Judge" {
		t.Fatalf("wrong player: %+v", player)
	}

	if rec := f.do(t, http.MethodGet, "/valuations/nobody", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown ID must 404, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/valuations/inflation", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("inflation failed: %d", rec.Code)
	}
	var inflation struct {
		Rate float64 `json:"inflationRate"`
	}
	decodeBody(t, rec, &inflation)
	if inflation.Rate != 1.0 {
		t.Fatalf("no keepers means neutral inflation, got %+v", inflation)
	}
}

func TestTeamRoutes(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	rec := f.do(t, http.MethodGet, "/teams", "")
	var teams struct {
		Teams []struct {
			ID              string `json:"id"`
			RemainingBudget int    `json:"remainingBudget"`
		} `json:"teams"`
	}
	decodeBody(t, rec, &teams)
	if len(teams.Teams) != 11 || teams.Teams[0].RemainingBudget != 270 {
		t.Fatalf("unexpected teams: %+v", teams)
	}

	rec = f.do(t, http.MethodPut, "/teams/team_1", `{"name":"Bronx Bombers"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("rename failed: %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(t, http.MethodPut, "/teams/team_1", `{"name":""}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("empty name must 400, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/teams/team_99", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown team must 404, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/teams/team_1/unknown", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown sub-resource must 404, got %d", rec.Code)
	}
}

func TestKeeperRoutes(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	rec := f.do(t, http.MethodPost, "/teams/team_1/keepers", `{"playerName":"Aaron Judge","salary":45}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add keeper failed: %d %s", rec.Code, rec.Body)
	}
	var keepers struct {
		Keepers []struct {
			PlayerID string `json:"playerId"`
			Salary   int    `json:"salary"`
		} `json:"keepers"`
	}
	decodeBody(t, rec, &keepers)
	if len(keepers.Keepers) != 1 || keepers.Keepers[0].PlayerID != "h15640" {
		t.Fatalf("keeper not linked: %+v", keepers)
	}

	// Keeper salaries below value push inflation above neutral.
	rec = f.do(t, http.MethodGet, "/valuations/inflation", "")
	var inflation struct {
		Rate float64 `json:"inflationRate"`
	}
	decodeBody(t, rec, &inflation)
	if inflation.Rate < 1.0 {
		t.Fatalf("inflation must not deflate here: %+v", inflation)
	}

	if rec := f.do(t, http.MethodPost, "/teams/team_1/keepers", `{"playerName":"","salary":5}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("blank name must 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodDelete, "/teams/team_1/keepers?name=Aaron+Judge", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove failed: %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(t, http.MethodDelete, "/teams/team_1/keepers?name=Aaron+Judge", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second remove must 404, got %d", rec.Code)
	}
}

func TestKeeperImportRoute(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	csv := "team_name,player_name,salary\nTeam 1,Aaron Judge,$45\nTeam 2,Nobody Real,20\n"
	rec := f.do(t, http.MethodPost, "/keepers/import", csv)
	if rec.Code != http.StatusOK {
		t.Fatalf("import failed: %d %s", rec.Code, rec.Body)
	}
	var report struct {
		Imported int      `json:"imported"`
		Errors   []string `json:"errors"`
	}
	decodeBody(t, rec, &report)
	if report.Imported != 2 {
		t.Fatalf("both rows parse; linking is separate: %+v", report)
	}

	rec = f.do(t, http.MethodPost, "/keepers/link", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("link failed: %d %s", rec.Code, rec.Body)
	}
	var link struct {
		Linked    int      `json:"linked"`
		Unmatched []string `json:"unmatched"`
	}
	decodeBody(t, rec, &link)
	if link.Linked != 1 || len(link.Unmatched) != 1 {
		t.Fatalf("unexpected link report: %+v", link)
	}
}

func TestDraftFlow(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	if rec := f.do(t, http.MethodPost, "/draft/picks", `{"playerId":"h15640","teamId":"team_1","price":30}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("picks before start must 422, got %d", rec.Code)
	}

	if rec := f.do(t, http.MethodPost, "/draft/start", ""); rec.Code != http.StatusOK {
		t.Fatalf("start failed: %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(t, http.MethodPost, "/draft/start", ""); rec.Code != http.StatusConflict {
		t.Fatalf("double start must 409, got %d", rec.Code)
	}

	rec := f.do(t, http.MethodPost, "/draft/picks", `{"playerId":"h15640","teamId":"team_1","price":30}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("pick failed: %d %s", rec.Code, rec.Body)
	}
	var pick struct {
		ID             string `json:"id"`
		Classification string `json:"classification"`
	}
	decodeBody(t, rec, &pick)
	if pick.ID == "" || pick.Classification == "" {
		t.Fatalf("pick body incomplete: %+v", pick)
	}

	if rec := f.do(t, http.MethodPost, "/draft/picks", `{"playerId":"h15640","teamId":"team_2","price":25}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("double draft must 422, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPost, "/draft/picks", `{"playerId":"","teamId":"team_1","price":5}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing playerId must 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/draft/alerts?limit=5", "")
	var alerts struct {
		Alerts []struct {
			PlayerID string `json:"playerId"`
		} `json:"alerts"`
	}
	decodeBody(t, rec, &alerts)
	if len(alerts.Alerts) != 1 || alerts.Alerts[0].PlayerID != "h15640" {
		t.Fatalf("unexpected alerts: %+v", alerts)
	}
	if rec := f.do(t, http.MethodGet, "/draft/alerts?limit=junk", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad limit must 400, got %d", rec.Code)
	}

	if rec := f.do(t, http.MethodPost, "/draft/save", ""); rec.Code != http.StatusOK {
		t.Fatalf("save failed: %d %s", rec.Code, rec.Body)
	}

	rec = f.do(t, http.MethodDelete, "/draft/picks/"+pick.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("undo failed: %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(t, http.MethodDelete, "/draft/picks/"+pick.ID, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second undo must 404, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/draft/load", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("load failed: %d %s", rec.Code, rec.Body)
	}
	var loaded struct {
		Picks int `json:"picks"`
	}
	decodeBody(t, rec, &loaded)
	if loaded.Picks != 1 {
		t.Fatalf("saved ledger had one pick: %+v", loaded)
	}

	if rec := f.do(t, http.MethodPost, "/draft/reset", ""); rec.Code != http.StatusOK {
		t.Fatalf("reset failed: %d", rec.Code)
	}
	rec = f.do(t, http.MethodGet, "/draft/state", "")
	var state struct {
		IsActive bool `json:"isActive"`
	}
	decodeBody(t, rec, &state)
	if state.IsActive {
		t.Fatal("reset must end the draft")
	}
}

func TestRecommendationsRoute(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	rec := f.do(t, http.MethodGet, "/teams/team_1/recommendations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("recommendations failed: %d %s", rec.Code, rec.Body)
	}
	var recs struct {
		Recommendations []struct {
			PlayerName string `json:"playerName"`
			Slot       string `json:"slot"`
		} `json:"recommendations"`
	}
	decodeBody(t, rec, &recs)
	if len(recs.Recommendations) == 0 {
		t.Fatal("empty roster should yield recommendations")
	}

	rec = f.do(t, http.MethodGet, "/teams/team_1/needs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("needs failed: %d %s", rec.Code, rec.Body)
	}
	var needs struct {
		Needs []struct {
			Slot   string `json:"slot"`
			Filled bool   `json:"filled"`
		} `json:"needs"`
	}
	decodeBody(t, rec, &needs)
	if len(needs.Needs) != config.DefaultLeague().Roster.Total() {
		t.Fatalf("one entry per roster seat, got %d", len(needs.Needs))
	}
}

func TestProjectionFileRoutes(t *testing.T) {
	f := newFixture(t, nil)
	f.loadPool(t)

	rec := f.do(t, http.MethodGet, "/projections", "")
	var files struct {
		Files []struct {
			Filename string `json:"filename"`
		} `json:"files"`
	}
	decodeBody(t, rec, &files)
	if len(files.Files) != 2 {
		t.Fatalf("both uploads retained, got %+v", files)
	}

	rec = f.do(t, http.MethodDelete, "/projections/"+files.Files[0].Filename, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body)
	}
	if rec := f.do(t, http.MethodDelete, "/projections/"+files.Files[0].Filename, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete must 404, got %d", rec.Code)
	}
}

func TestUploadRejectsGarbage(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(t, http.MethodPost, "/projections/hitting", "this is not a csv header\n")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unusable header must 400, got %d %s", rec.Code, rec.Body)
	}
}

func TestUploadRejectsWrongSide(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodPost, "/projections/pitching", hittingCSV)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("hitting columns on the pitching endpoint must 400, got %d %s", rec.Code, rec.Body)
	}
	rec = f.do(t, http.MethodPost, "/projections/hitting", pitchingCSV)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("pitching columns on the hitting endpoint must 400, got %d %s", rec.Code, rec.Body)
	}
}

func TestExportPreDraft(t *testing.T) {
	f := newFixture(t, nil)

	if rec := f.do(t, http.MethodGet, "/export/pre-draft", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty pool must 422, got %d %s", rec.Code, rec.Body)
	}

	f.loadPool(t)
	rec := f.do(t, http.MethodGet, "/export/pre-draft", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("export failed: %d %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "pre_draft.csv") {
		t.Fatalf("expected an attachment disposition, got %q", cd)
	}

	rows, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable csv: %v", err)
	}
	// Header plus one row per pooled player (Soto is filtered as non-AL).
	if len(rows) != 1+6 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][4] != "Inflated Value" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	prev := math.Inf(1)
	for _, row := range rows[1:] {
		v, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			t.Fatalf("inflated value %q not numeric: %v", row[4], err)
		}
		if v > prev {
			t.Fatalf("rows must be sorted by inflated value descending: %v after %v", v, prev)
		}
		prev = v
	}

	if rec := f.do(t, http.MethodGet, "/export/pre-draft?format=xlsx", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("unsupported format must 400, got %d", rec.Code)
	}
}

func TestNewsRoute(t *testing.T) {
	stub := &stubNews{news: providers.PlayerNews{
		PlayerID: 592450,
		Status:   "IL-10",
		Transactions: []providers.Transaction{
			{Date: "2026-08-20", Type: "Status Change", Description: "placed on the 10-day injured list"},
		},
	}}
	f := newFixtureWithNews(t, nil, stub)

	rec := f.do(t, http.MethodGet, "/news/Aaron%20Judge", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("news lookup failed: %d %s", rec.Code, rec.Body)
	}
	if stub.last != "Aaron Judge" {
		t.Fatalf("path name not passed through, got %q", stub.last)
	}
	var got providers.PlayerNews
	decodeBody(t, rec, &got)
	if got.Status != "IL-10" || got.PlayerID != 592450 {
		t.Fatalf("unexpected payload: %+v", got)
	}

	if rec := f.do(t, http.MethodGet, "/news/", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("blank name must 404, got %d", rec.Code)
	}
	if rec := f.do(t, http.MethodPost, "/news/Aaron%20Judge", ""); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST must 405, got %d", rec.Code)
	}

	stub.err = errors.New("upstream down")
	if rec := f.do(t, http.MethodGet, "/news/Somebody%20Else", ""); rec.Code != http.StatusBadGateway {
		t.Fatalf("provider failure must 502, got %d", rec.Code)
	}

	disabled := newFixture(t, nil)
	if rec := disabled.do(t, http.MethodGet, "/news/Aaron%20Judge", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("nil provider must 503, got %d", rec.Code)
	}
}
