// Package recommend scores next-pick suggestions and roster fill status
// for a team mid-auction.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	domaindraft "github.com/preston-bernstein/roto-auction-service/internal/domain/draft"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
	"github.com/preston-bernstein/roto-auction-service/internal/positions"
	"github.com/preston-bernstein/roto-auction-service/internal/store"
)

// slotOrder fixes iteration order over roster slots so responses are
// deterministic.
var slotOrder = []string{"C", "1B", "2B", "3B", "SS", "MI", "CI", "OF", "U", "P"}

// TeamDirectory exposes the league's teams.
type TeamDirectory interface {
	Team(id string) (*domaindraft.Team, bool)
}

// Service answers recommendation and roster-need queries against the
// valued pool.
type Service struct {
	store *store.MemoryStore
	teams TeamDirectory
	cfg   config.League
}

// NewService constructs the recommendation service.
func NewService(st *store.MemoryStore, teams TeamDirectory, cfg config.League) *Service {
	return &Service{store: st, teams: teams, cfg: cfg}
}

// Recommendations returns up to ten scored suggestions for a team's
// unfilled slots, best combined score first.
func (s *Service) Recommendations(teamID string) ([]domaindraft.Recommendation, error) {
	team, ok := s.teams.Team(teamID)
	if !ok {
		return nil, fmt.Errorf("unknown team %q", teamID)
	}

	counts := s.cfg.Roster.Counts()
	filled := s.assignRoster(team, counts)
	available := s.available()

	totalFilled := 0
	for _, names := range filled {
		totalFilled += len(names)
	}
	remainingSlots := s.cfg.Roster.Total() - totalFilled
	remainingBudget := team.RemainingBudget(s.cfg.BudgetPerTeam)

	type scored struct {
		score float64
		rec   domaindraft.Recommendation
	}
	var all []scored

	for _, slot := range slotOrder {
		unfilled := counts[slot] - len(filled[slot])
		if unfilled <= 0 {
			continue
		}
		eligible := eligibleByValue(available, slot)
		if len(eligible) > 3 {
			eligible = eligible[:3]
		}
		if len(eligible) == 0 {
			continue
		}

		valueOverNext := eligible[0].InflatedValue
		if len(eligible) >= 2 {
			valueOverNext = eligible[0].InflatedValue - eligible[1].InflatedValue
		}

		for i, p := range eligible {
			// Feasible if the team can pay fair price here and still
			// put $1 on every remaining seat.
			feasible := float64(remainingBudget) >= p.InflatedValue+float64(remainingSlots-1)

			urgency := 0.0
			reason := fmt.Sprintf("Top alternative for %s slot", slot)
			if i == 0 {
				urgency = valueOverNext
				reason = fmt.Sprintf("Top pick for %s slot", slot)
			}

			all = append(all, scored{
				score: urgency*0.4 + p.InflatedValue*0.6,
				rec: domaindraft.Recommendation{
					PlayerID:       p.ID,
					PlayerName:     p.Name,
					Position:       strings.Join(p.Positions, "/"),
					Slot:           slot,
					InflatedValue:  round1(p.InflatedValue),
					FairPrice:      round1(p.InflatedValue),
					StealUnder:     round1(p.Range.StealBelow),
					UrgencyScore:   round2(urgency),
					ValueOverNext:  round2(valueOverNext),
					BudgetFeasible: feasible,
					Reason:         reason,
				},
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })
	if len(all) > 10 {
		all = all[:10]
	}
	out := make([]domaindraft.Recommendation, len(all))
	for i, sc := range all {
		out[i] = sc.rec
	}
	return out, nil
}

// Needs returns per-slot-instance fill status with top available
// candidates for each open seat.
func (s *Service) Needs(teamID string) ([]domaindraft.RosterNeed, error) {
	team, ok := s.teams.Team(teamID)
	if !ok {
		return nil, fmt.Errorf("unknown team %q", teamID)
	}

	counts := s.cfg.Roster.Counts()
	filled := s.assignRoster(team, counts)
	available := s.available()

	var needs []domaindraft.RosterNeed
	for _, slot := range slotOrder {
		count := counts[slot]
		names := filled[slot]
		for i := 0; i < count; i++ {
			need := domaindraft.RosterNeed{Slot: slot}
			if count > 1 {
				need.Slot = fmt.Sprintf("%s (%d)", slot, i+1)
			}
			if i < len(names) {
				need.Filled = true
				need.PlayerName = names[i]
			} else {
				eligible := eligibleByValue(available, slot)
				urgency := 0.0
				if len(eligible) >= 2 {
					urgency = eligible[0].InflatedValue - eligible[1].InflatedValue
				} else if len(eligible) == 1 {
					urgency = eligible[0].InflatedValue
				}
				top := eligible
				if len(top) > 3 {
					top = top[:3]
				}
				for _, p := range top {
					need.TopAvailable = append(need.TopAvailable, domaindraft.Candidate{
						PlayerID: p.ID,
						Name:     p.Name,
						Value:    round1(p.InflatedValue),
						Urgency:  round1(urgency),
					})
				}
			}
			needs = append(needs, need)
		}
	}
	return needs, nil
}

// assignRoster greedily seats a team's keepers and picks into roster
// slots, most constrained players first, and returns slot -> seated
// player names.
func (s *Service) assignRoster(team *domaindraft.Team, counts map[string]int) map[string][]string {
	filled := make(map[string][]string, len(counts))

	type seated struct {
		name  string
		slots []string
	}
	var roster []seated
	add := func(playerID string) {
		p, ok := s.store.Get(playerID)
		if !ok {
			return
		}
		seen := map[string]bool{}
		var slots []string
		for _, pos := range p.Positions {
			for _, slot := range positions.SlotsFor[pos] {
				if counts[slot] > 0 && !seen[slot] {
					seen[slot] = true
					slots = append(slots, slot)
				}
			}
		}
		sort.Strings(slots)
		roster = append(roster, seated{name: p.Name, slots: slots})
	}
	for _, k := range team.Keepers {
		if k.PlayerID != "" {
			add(k.PlayerID)
		}
	}
	for _, id := range team.DraftPicks {
		add(id)
	}

	sort.SliceStable(roster, func(i, j int) bool { return len(roster[i].slots) < len(roster[j].slots) })
	for _, r := range roster {
		for _, slot := range r.slots {
			if len(filled[slot]) < counts[slot] {
				filled[slot] = append(filled[slot], r.name)
				break
			}
		}
	}
	return filled
}

// available returns undrafted non-keepers from the pool.
func (s *Service) available() []players.Valued {
	var out []players.Valued
	for _, p := range s.store.List() {
		if !p.Drafted && !p.IsKeeper {
			out = append(out, p)
		}
	}
	return out
}

func eligibleByValue(available []players.Valued, slot string) []players.Valued {
	var out []players.Valued
	for _, p := range available {
		if positions.Eligible(p.Positions, slot) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].InflatedValue > out[j].InflatedValue })
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
