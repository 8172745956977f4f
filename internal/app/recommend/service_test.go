package recommend

import (
	"strings"
	"testing"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	domaindraft "github.com/preston-bernstein/roto-auction-service/internal/domain/draft"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
)

type teamMap map[string]*domaindraft.Team

func (m teamMap) Team(id string) (*domaindraft.Team, bool) {
	t, ok := m[id]
	return t, ok
}

// smallLeague keeps the roster tiny so fill states are easy to reason
// about: one SS seat, two OF seats, one P seat.
func smallLeague() config.League {
	cfg := config.DefaultLeague()
	cfg.Roster = config.RosterSlots{OF: 2, SS: 1, P: 1}
	return cfg
}

func valued(id, name string, pos []string, typ players.Type, inflated float64) players.Valued {
	return players.Valued{
		Projection:    players.Projection{ID: id, Name: name, Positions: pos, Type: typ},
		DollarValue:   inflated,
		InflatedValue: inflated,
		Range:         players.PriceRange{StealBelow: inflated * 0.8},
	}
}

func newFixture(t *testing.T) (*Service, *store.MemoryStore, *domaindraft.Team) {
	t.Helper()
	st := store.NewMemoryStore()
	st.Replace([]players.Valued{
		valued("h1", "Big Outfielder", []string{"OF"}, players.TypeHitter, 40),
		valued("h2", "Mid Outfielder", []string{"OF"}, players.TypeHitter, 25),
		valued("h3", "Small Outfielder", []string{"OF"}, players.TypeHitter, 10),
		valued("h4", "Lone Shortstop", []string{"SS"}, players.TypeHitter, 18),
		valued("p1", "Ace Starter", []string{"SP"}, players.TypePitcher, 30),
		valued("p2", "Mid Starter", []string{"SP"}, players.TypePitcher, 12),
	})
	team := &domaindraft.Team{ID: "team_1", Name: "Team 1", IsUser: true}
	svc := NewService(st, teamMap{"team_1": team}, smallLeague())
	return svc, st, team
}

func TestUnknownTeam(t *testing.T) {
	svc, _, _ := newFixture(t)
	if _, err := svc.Recommendations("team_99"); err == nil {
		t.Fatal("unknown team must error")
	}
	if _, err := svc.Needs("team_99"); err == nil {
		t.Fatal("unknown team must error")
	}
}

func TestRecommendationsOrderAndReasons(t *testing.T) {
	svc, _, _ := newFixture(t)

	recs, err := svc.Recommendations("team_1")
	if err != nil {
		t.Fatalf("recommendations failed: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations for an empty roster")
	}

	// Big Outfielder: urgency 15 (over Mid), score 15*0.4 + 40*0.6 = 30.
	// Ace Starter: urgency 18, score 18*0.4 + 30*0.6 = 25.2.
	if recs[0].PlayerID != "h1" {
		t.Fatalf("highest combined score should lead, got %+v", recs[0])
	}
	if recs[0].Slot != "OF" || !strings.HasPrefix(recs[0].Reason, "Top pick") {
		t.Fatalf("leading rec should be the top OF pick: %+v", recs[0])
	}
	if recs[0].UrgencyScore != 15 || recs[0].ValueOverNext != 15 {
		t.Fatalf("urgency should be the gap to the next OF: %+v", recs[0])
	}
	if recs[1].PlayerID != "p1" {
		t.Fatalf("ace should rank second, got %+v", recs[1])
	}

	for _, r := range recs {
		if r.PlayerID == "h2" && !strings.HasPrefix(r.Reason, "Top alternative") {
			t.Fatalf("non-leading options are alternatives: %+v", r)
		}
	}
}

func TestRecommendationsSkipFilledSlots(t *testing.T) {
	svc, st, team := newFixture(t)

	// Seat the shortstop via a draft pick; SS should stop being suggested.
	st.MarkDrafted("h4", "team_1", 15)
	team.BudgetSpent = 15
	team.DraftPicks = []string{"h4"}

	recs, err := svc.Recommendations("team_1")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		if r.Slot == "SS" {
			t.Fatalf("SS is filled and drafted players are off the board: %+v", r)
		}
		if r.PlayerID == "h4" {
			t.Fatalf("drafted player must not be recommended: %+v", r)
		}
	}
}

func TestBudgetFeasibility(t *testing.T) {
	svc, _, team := newFixture(t)
	team.BudgetSpent = 240 // $30 left, 4 open seats

	recs, err := svc.Recommendations("team_1")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		// Feasible needs inflated + $1 per other open seat <= 30.
		wantFeasible := r.InflatedValue+3 <= 30
		if r.BudgetFeasible != wantFeasible {
			t.Fatalf("feasibility wrong for %s (value %v): %+v", r.PlayerName, r.InflatedValue, r)
		}
	}
}

func TestNeedsSlotLabelsAndFill(t *testing.T) {
	svc, st, team := newFixture(t)
	st.MarkDrafted("h1", "team_1", 35)
	team.DraftPicks = []string{"h1"}
	team.BudgetSpent = 35

	needs, err := svc.Needs("team_1")
	if err != nil {
		t.Fatal(err)
	}
	byLabel := map[string]domaindraft.RosterNeed{}
	for _, n := range needs {
		byLabel[n.Slot] = n
	}

	if n := byLabel["SS"]; n.Filled {
		t.Fatalf("SS should be open: %+v", n)
	}
	of1, ok1 := byLabel["OF (1)"]
	of2, ok2 := byLabel["OF (2)"]
	if !ok1 || !ok2 {
		t.Fatalf("multi-count slots need numbered labels, got %v", needs)
	}
	if !of1.Filled || of1.PlayerName != "Big Outfielder" {
		t.Fatalf("first OF seat should hold the drafted player: %+v", of1)
	}
	if of2.Filled {
		t.Fatalf("second OF seat should be open: %+v", of2)
	}
	if len(of2.TopAvailable) == 0 || of2.TopAvailable[0].Name != "Mid Outfielder" {
		t.Fatalf("open seat lists the best remaining options: %+v", of2.TopAvailable)
	}

	ss := byLabel["SS"]
	if len(ss.TopAvailable) != 1 || ss.TopAvailable[0].Urgency != 18 {
		t.Fatalf("lone candidate's urgency is its own value: %+v", ss.TopAvailable)
	}
}

func TestTopTenCap(t *testing.T) {
	st := store.NewMemoryStore()
	var pool []players.Valued
	for i := 0; i < 8; i++ {
		id := string(rune('a' + i))
		pool = append(pool,
			valued("h"+id, "Hitter "+id, []string{"C", "2B", "SS", "OF"}, players.TypeHitter, float64(40-i)),
			valued("p"+id, "Pitcher "+id, []string{"SP"}, players.TypePitcher, float64(35-i)),
		)
	}
	st.Replace(pool)
	team := &domaindraft.Team{ID: "team_1", Name: "Team 1"}
	svc := NewService(st, teamMap{"team_1": team}, config.DefaultLeague())

	recs, err := svc.Recommendations("team_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 10 {
		t.Fatalf("recommendations are capped at ten, got %d", len(recs))
	}
}
