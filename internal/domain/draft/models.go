package draft

import (
	"time"

	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// Keeper is a kept player on a team's roster going into the auction.
// PlayerID is empty until the keeper has been linked to the loaded pool.
type Keeper struct {
	PlayerID   string   `json:"playerId"`
	PlayerName string   `json:"playerName"`
	Salary     int      `json:"salary"`
	Positions  []string `json:"positions,omitempty"`
}

// Team is one franchise in the league.
type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	IsUser      bool     `json:"isUser"`
	Keepers     []Keeper `json:"keepers"`
	DraftPicks  []string `json:"draftPicks"`
	BudgetSpent int      `json:"budgetSpent"`
}

// KeeperSalary sums the team's keeper salaries.
func (t *Team) KeeperSalary() int {
	total := 0
	for _, k := range t.Keepers {
		total += k.Salary
	}
	return total
}

// TotalSpent is keeper salaries plus auction spend.
func (t *Team) TotalSpent() int {
	return t.KeeperSalary() + t.BudgetSpent
}

// RemainingBudget is what the team can still bid given the per-team budget.
func (t *Team) RemainingBudget(budgetPerTeam int) int {
	return budgetPerTeam - t.TotalSpent()
}

// League is the set of teams.
type League struct {
	Teams []*Team `json:"teams"`
}

// Team finds a team by ID.
func (l *League) Team(id string) *Team {
	for _, t := range l.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AllKeepers flattens every team's keeper list.
func (l *League) AllKeepers() []Keeper {
	var all []Keeper
	for _, t := range l.Teams {
		all = append(all, t.Keepers...)
	}
	return all
}

// TotalKeeperSalary sums keeper salaries across the league.
func (l *League) TotalKeeperSalary() int {
	total := 0
	for _, t := range l.Teams {
		total += t.KeeperSalary()
	}
	return total
}

// TotalKeeperCount counts keepers across the league.
func (l *League) TotalKeeperCount() int {
	count := 0
	for _, t := range l.Teams {
		count += len(t.Keepers)
	}
	return count
}

// Pick is one recorded auction purchase.
type Pick struct {
	ID             string       `json:"id"`
	PlayerID       string       `json:"playerId"`
	PlayerName     string       `json:"playerName"`
	TeamID         string       `json:"teamId"`
	Price          int          `json:"price"`
	Positions      []string     `json:"positions,omitempty"`
	DollarValue    float64      `json:"dollarValue"`
	InflatedValue  float64      `json:"inflatedValue"`
	ValueDiff      float64      `json:"valueDiff"`
	Classification players.Band `json:"classification"`
	Timestamp      time.Time    `json:"timestamp"`
}

// State is the auction ledger.
type State struct {
	IsActive      bool    `json:"isActive"`
	Picks         []Pick  `json:"picks"`
	InflationRate float64 `json:"inflationRate"`
}

// PickCount returns the number of recorded picks.
func (s State) PickCount() int {
	return len(s.Picks)
}

// TeamPicks returns the picks made by one team, in pick order.
func (s State) TeamPicks(teamID string) []Pick {
	var picks []Pick
	for _, p := range s.Picks {
		if p.TeamID == teamID {
			picks = append(picks, p)
		}
	}
	return picks
}

// TeamSpent sums what a team has paid at the table.
func (s State) TeamSpent(teamID string) int {
	total := 0
	for _, p := range s.Picks {
		if p.TeamID == teamID {
			total += p.Price
		}
	}
	return total
}

// Candidate is an available player suggested for a roster slot.
type Candidate struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Urgency  float64 `json:"urgency"`
}

// Recommendation is a scored next-pick suggestion for a team.
type Recommendation struct {
	PlayerID       string  `json:"playerId"`
	PlayerName     string  `json:"playerName"`
	Position       string  `json:"position"`
	Slot           string  `json:"slot"`
	InflatedValue  float64 `json:"inflatedValue"`
	FairPrice      float64 `json:"fairPrice"`
	StealUnder     float64 `json:"stealUnder"`
	UrgencyScore   float64 `json:"urgencyScore"`
	ValueOverNext  float64 `json:"valueOverNext"`
	BudgetFeasible bool    `json:"budgetFeasible"`
	Reason         string  `json:"reason"`
}

// RosterNeed reports fill status for one roster slot instance.
type RosterNeed struct {
	Slot         string      `json:"slot"`
	Filled       bool        `json:"filled"`
	PlayerName   string      `json:"playerName,omitempty"`
	TopAvailable []Candidate `json:"topAvailable,omitempty"`
}
