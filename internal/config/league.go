package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RosterSlots is the per-team roster shape.
type RosterSlots struct {
	C  int `yaml:"c" json:"c"`
	B1 int `yaml:"1b" json:"1b"`
	B2 int `yaml:"2b" json:"2b"`
	B3 int `yaml:"3b" json:"3b"`
	SS int `yaml:"ss" json:"ss"`
	MI int `yaml:"mi" json:"mi"` // 2B/SS
	CI int `yaml:"ci" json:"ci"` // 1B/3B
	OF int `yaml:"of" json:"of"`
	U  int `yaml:"u" json:"u"`
	P  int `yaml:"p" json:"p"`
}

// Hitters returns hitting slots per team.
func (r RosterSlots) Hitters() int {
	return r.C + r.B1 + r.B2 + r.B3 + r.SS + r.MI + r.CI + r.OF + r.U
}

// Pitchers returns pitching slots per team.
func (r RosterSlots) Pitchers() int {
	return r.P
}

// Total returns all roster slots per team.
func (r RosterSlots) Total() int {
	return r.Hitters() + r.Pitchers()
}

// Counts returns slot name -> per-team count, for roster bookkeeping.
func (r RosterSlots) Counts() map[string]int {
	return map[string]int{
		"C": r.C, "1B": r.B1, "2B": r.B2, "3B": r.B3, "SS": r.SS,
		"MI": r.MI, "CI": r.CI, "OF": r.OF, "U": r.U, "P": r.P,
	}
}

// Denominators are the raw stat units equivalent to one standings gain point
// in each category. All must be strictly positive.
type Denominators struct {
	R    float64 `yaml:"r" json:"r"`
	HR   float64 `yaml:"hr" json:"hr"`
	RBI  float64 `yaml:"rbi" json:"rbi"`
	SB   float64 `yaml:"sb" json:"sb"`
	BA   float64 `yaml:"ba" json:"ba"`
	W    float64 `yaml:"w" json:"w"`
	SV   float64 `yaml:"sv" json:"sv"`
	K    float64 `yaml:"k" json:"k"`
	ERA  float64 `yaml:"era" json:"era"`
	WHIP float64 `yaml:"whip" json:"whip"`
}

// Thresholds are the pre-bid range multipliers applied to inflated value.
type Thresholds struct {
	Steal      float64 `yaml:"steal" json:"steal"`
	Value      float64 `yaml:"value" json:"value"`
	FairLow    float64 `yaml:"fairLow" json:"fairLow"`
	FairHigh   float64 `yaml:"fairHigh" json:"fairHigh"`
	Overpay    float64 `yaml:"overpay" json:"overpay"`
	BigOverpay float64 `yaml:"bigOverpay" json:"bigOverpay"`
}

// Baselines are the fallback league rates used for ratio-stat SGP when the
// loaded pool carries no playing time to aggregate over.
type Baselines struct {
	BA   float64 `yaml:"ba" json:"ba"`
	ERA  float64 `yaml:"era" json:"era"`
	WHIP float64 `yaml:"whip" json:"whip"`
}

// League is the immutable-per-run league configuration.
type League struct {
	Name          string       `yaml:"name" json:"name"`
	Type          string       `yaml:"type" json:"type"` // e.g. "AL-only"
	Teams         int          `yaml:"teams" json:"teams"`
	BudgetPerTeam int          `yaml:"budgetPerTeam" json:"budgetPerTeam"`
	Roster        RosterSlots  `yaml:"roster" json:"roster"`
	Denominators  Denominators `yaml:"denominators" json:"denominators"`
	Thresholds    Thresholds   `yaml:"thresholds" json:"thresholds"`
	Baselines     Baselines    `yaml:"baselines" json:"baselines"`

	// HitterSplit is the fraction of the allocatable budget spent on hitters;
	// pitchers get the remainder.
	HitterSplit float64 `yaml:"hitterSplit" json:"hitterSplit"`

	// MinTeamIP / MinTeamAB floor the average-team playing time used to
	// weight ratio-stat contributions.
	MinTeamIP float64 `yaml:"minTeamIP" json:"minTeamIP"`
	MinTeamAB float64 `yaml:"minTeamAB" json:"minTeamAB"`

	// MinRankAB / MinRankIP gate replacement-level ranking eligibility.
	// Players underneath are still valued, just never set the baseline.
	MinRankAB int     `yaml:"minRankAB" json:"minRankAB"`
	MinRankIP float64 `yaml:"minRankIP" json:"minRankIP"`

	MinKeepers int `yaml:"minKeepers" json:"minKeepers"`
	MaxKeepers int `yaml:"maxKeepers" json:"maxKeepers"`
}

// DefaultLeague returns the 11-team AL-only configuration the service ships
// with, calibrated for 5x5 roto.
func DefaultLeague() League {
	return League{
		Name:          "Potomac Valley Rotisserie League",
		Type:          "AL-only",
		Teams:         11,
		BudgetPerTeam: 270,
		Roster: RosterSlots{
			C: 2, B1: 1, B2: 1, B3: 1, SS: 1, MI: 1, CI: 1, OF: 5, U: 1, P: 10,
		},
		Denominators: Denominators{
			R: 22.0, HR: 8.0, RBI: 22.0, SB: 8.0, BA: 0.0035,
			W: 3.0, SV: 7.0, K: 30.0, ERA: 0.18, WHIP: 0.017,
		},
		Thresholds: Thresholds{
			Steal: 0.70, Value: 0.90, FairLow: 0.90, FairHigh: 1.10,
			Overpay: 1.10, BigOverpay: 1.40,
		},
		Baselines:   Baselines{BA: 0.260, ERA: 4.00, WHIP: 1.30},
		HitterSplit: 0.65,
		MinTeamIP:   900,
		MinTeamAB:   550 * 14,
		MinRankAB:   50,
		MinRankIP:   20,
		MinKeepers:  4,
		MaxKeepers:  10,
	}
}

// LoadLeague overlays a YAML file onto the defaults. An empty path returns
// the defaults unchanged.
func LoadLeague(path string) (League, error) {
	league := DefaultLeague()
	if path == "" {
		return league, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return league, fmt.Errorf("read league config: %w", err)
	}
	if err := yaml.Unmarshal(data, &league); err != nil {
		return league, fmt.Errorf("parse league config %s: %w", path, err)
	}
	return league, nil
}

// TotalBudget is the league-wide auction budget.
func (l League) TotalBudget() int {
	return l.Teams * l.BudgetPerTeam
}

// DraftableHitters is the number of hitters the league will roster.
func (l League) DraftableHitters() int {
	return l.Teams * l.Roster.Hitters()
}

// DraftablePitchers is the number of pitchers the league will roster.
func (l League) DraftablePitchers() int {
	return l.Teams * l.Roster.Pitchers()
}

// DraftableTotal is every roster slot in the league.
func (l League) DraftableTotal() int {
	return l.DraftableHitters() + l.DraftablePitchers()
}

// ALOnly reports whether the pool should be filtered to American League
// clubs on load.
func (l League) ALOnly() bool {
	return l.Type == "AL-only"
}
