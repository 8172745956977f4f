package draft

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/roto-auction-service/internal/app/keepers"
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/snapshots"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
	"github.com/preston-bernstein/roto-auction-service/internal/valuation"
)

type fixedInflation struct {
	rate float64
}

func (f fixedInflation) Inflation() valuation.InflationResult {
	return valuation.InflationResult{Rate: f.rate}
}

func newTestService(t *testing.T) (*Service, *store.MemoryStore, *keepers.Service) {
	t.Helper()
	cfg := config.DefaultLeague()
	st := store.NewMemoryStore()
	st.Replace([]players.Valued{
		{
			Projection:    players.Projection{ID: "h1", Name: "Aaron Judge", Positions: []string{"OF"}, Type: players.TypeHitter},
			DollarValue:   40,
			InflatedValue: 44,
			Range: players.PriceRange{
				StealBelow: 35.2, ValueBelow: 39.6, FairLow: 39.6, FairHigh: 48.4,
				OverpayAbove: 48.4, BigOverpayAbove: 61.6,
			},
		},
		{
			Projection:    players.Projection{ID: "h2", Name: "Bo Bichette", Positions: []string{"SS"}, Type: players.TypeHitter},
			DollarValue:   20,
			InflatedValue: 22,
		},
		{
			Projection:    players.Projection{ID: "h3", Name: "Kept Player", Positions: []string{"1B"}, Type: players.TypeHitter},
			DollarValue:   15,
			InflatedValue: 16,
			IsKeeper:      true,
			KeeperTeamID:  "team_3",
		},
	})
	teams := keepers.NewService(cfg, st, nil)
	svc := NewService(st, teams, fixedInflation{rate: 1.08}, nil, nil, cfg, nil, nil)
	return svc, st, teams
}

func TestStartFreezesInflation(t *testing.T) {
	svc, _, _ := newTestService(t)

	if svc.Active() {
		t.Fatal("fresh service must not be active")
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if !svc.Active() {
		t.Fatal("service should be active after start")
	}
	if rate := svc.State().InflationRate; rate != 1.08 {
		t.Fatalf("start must freeze the current rate, got %v", rate)
	}
	if err := svc.Start(); err == nil {
		t.Fatal("second start must fail while active")
	}
}

func TestRecordValidations(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Record("h1", "team_1", 30); err == nil {
		t.Fatal("recording before start must fail")
	}
	if err := svc.Start(); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name     string
		playerID string
		teamID   string
		price    int
		wantErr  string
	}{
		{"zero price", "h1", "team_1", 0, "at least $1"},
		{"unknown player", "h99", "team_1", 10, "unknown player"},
		{"keeper", "h3", "team_1", 10, "keeper"},
		{"unknown team", "h1", "team_99", 10, "unknown team"},
		{"over budget", "h1", "team_1", 271, "remaining"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(tc.playerID, tc.teamID, tc.price)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("want error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRecordPick(t *testing.T) {
	svc, st, teams := newTestService(t)
	must(t, svc.Start())

	pick, err := svc.Record("h1", "team_1", 38)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if pick.ID == "" {
		t.Fatal("pick needs an ID")
	}
	if pick.ValueDiff != 6 {
		t.Fatalf("ValueDiff = inflated - price, got %v", pick.ValueDiff)
	}
	if pick.Classification != players.BandSteal {
		t.Fatalf("$38 against the fixture range should classify as a steal, got %v", pick.Classification)
	}

	player, _ := st.Get("h1")
	if !player.Drafted || player.DraftTeamID != "team_1" || player.DraftPrice != 38 {
		t.Fatalf("pool not marked: %+v", player)
	}
	team, _ := teams.Team("team_1")
	if team.BudgetSpent != 38 || len(team.DraftPicks) != 1 {
		t.Fatalf("team ledger not updated: %+v", team)
	}

	if _, err := svc.Record("h1", "team_2", 40); err == nil {
		t.Fatal("re-drafting a taken player must fail")
	}
}

func TestUndo(t *testing.T) {
	svc, st, teams := newTestService(t)
	must(t, svc.Start())
	pick, err := svc.Record("h1", "team_1", 38)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Undo("nope"); err == nil {
		t.Fatal("unknown pick must error")
	}
	if err := svc.Undo(pick.ID); err != nil {
		t.Fatalf("undo failed: %v", err)
	}

	player, _ := st.Get("h1")
	if player.Drafted {
		t.Fatal("undo must return the player to the pool")
	}
	team, _ := teams.Team("team_1")
	if team.BudgetSpent != 0 || len(team.DraftPicks) != 0 {
		t.Fatalf("team ledger not restored: %+v", team)
	}
	if svc.State().PickCount() != 0 {
		t.Fatal("ledger should be empty after undo")
	}
}

func TestAlertsNewestFirst(t *testing.T) {
	svc, _, _ := newTestService(t)
	must(t, svc.Start())
	if _, err := svc.Record("h1", "team_1", 30); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Record("h2", "team_2", 18); err != nil {
		t.Fatal(err)
	}

	alerts := svc.Alerts(1)
	if len(alerts) != 1 || alerts[0].PlayerID != "h2" {
		t.Fatalf("want the latest pick only, got %+v", alerts)
	}
	all := svc.Alerts(0)
	if len(all) != 2 || all[0].PlayerID != "h2" || all[1].PlayerID != "h1" {
		t.Fatalf("alerts must be newest first, got %+v", all)
	}
}

func TestReset(t *testing.T) {
	svc, st, teams := newTestService(t)
	must(t, svc.Start())
	if _, err := svc.Record("h1", "team_1", 30); err != nil {
		t.Fatal(err)
	}

	svc.Reset()
	if svc.Active() {
		t.Fatal("reset must end the draft")
	}
	player, _ := st.Get("h1")
	if player.Drafted {
		t.Fatal("reset must free drafted players")
	}
	team, _ := teams.Team("team_1")
	if team.BudgetSpent != 0 {
		t.Fatal("reset must clear auction spend")
	}
	keeper, _ := st.Get("h3")
	if !keeper.IsKeeper {
		t.Fatal("reset must leave keepers alone")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writer := snapshots.NewWriter(dir, 14)
	snaps := snapshots.NewFSStore(dir)

	svc, st, teams := newTestService(t)
	svc.writer = writer
	svc.snaps = snaps

	must(t, svc.Start())
	if _, err := svc.Record("h1", "team_1", 38); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Record("h2", "team_2", 18); err != nil {
		t.Fatal(err)
	}
	if err := svc.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "draft", "current.json")); err != nil {
		t.Fatalf("current ledger not written: %v", err)
	}

	// Simulate a restart: fresh services over the same pool and files.
	st.ResetDraft()
	for _, tm := range teams.Teams() {
		tm.BudgetSpent = 0
		tm.DraftPicks = nil
	}
	restored := NewService(st, teams, fixedInflation{rate: 1.0}, writer, snaps, config.DefaultLeague(), nil, nil)

	n, err := restored.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 replayed picks, got %d", n)
	}
	if !restored.Active() {
		t.Fatal("restored draft should be active")
	}
	if rate := restored.State().InflationRate; rate != 1.08 {
		t.Fatalf("saved inflation rate must survive the round trip, got %v", rate)
	}
	player, _ := st.Get("h1")
	if !player.Drafted || player.DraftTeamID != "team_1" {
		t.Fatalf("pool not replayed: %+v", player)
	}
	team, _ := teams.Team("team_1")
	if team.BudgetSpent != 38 {
		t.Fatalf("budget not rebuilt: %+v", team)
	}
}

func TestSaveWithoutWriter(t *testing.T) {
	svc, _, _ := newTestService(t)
	if err := svc.Save(); err == nil {
		t.Fatal("save must fail when persistence is disabled")
	}
	if _, err := svc.Load(); err == nil {
		t.Fatal("load must fail when persistence is disabled")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
