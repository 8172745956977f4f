package valuation

import (
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// Result is one valuation run's output: every input projection valued, plus
// the inflation breakdown and any warnings raised along the way. Players are
// returned in input order.
type Result struct {
	Players   []players.Valued
	Inflation InflationResult
	Warnings  []Warning
}

// Run executes the full pipeline as a staged batch: pool aggregates, SGP,
// replacement levels, base dollar values, keeper inflation, inflated values
// and pre-bid ranges. It is pure: the same inputs always produce the same
// output, and nothing is retained between runs. Callers serialize runs; the
// pool must not be mutated while one is in progress.
func Run(pool []players.Projection, keepers []players.KeeperAssignment, cfg config.League) (*Result, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	hitters, pitchers := 0, 0
	for _, p := range pool {
		switch p.Type {
		case players.TypeHitter:
			hitters++
		case players.TypePitcher:
			pitchers++
		}
	}
	if hitters == 0 {
		return nil, &InsufficientDataError{Side: "hitting", Count: 0}
	}
	if pitchers == 0 {
		return nil, &InsufficientDataError{Side: "pitching", Count: 0}
	}

	// Stage 1: pool-wide aggregates, then per-player SGP against them.
	agg := Aggregate(pool, cfg)
	sgp := make([]players.SGPResult, len(pool))
	for i, p := range pool {
		sgp[i] = ComputeSGP(p, agg, cfg)
	}

	// Stage 2: replacement levels from the ranked pool, then base dollars.
	levels := ReplacementLevels(pool, sgp, cfg)
	rates := computeDollarRates(pool, sgp, levels, cfg)

	base := make([]float64, len(pool))
	baseByID := make(map[string]float64, len(pool))
	for i, p := range pool {
		base[i] = rates.baseValue(p.Type, sgp[i].Total)
		baseByID[p.ID] = base[i]
	}

	// Stage 3: keeper inflation from base values.
	inflation, warnings := computeInflation(baseByID, keepers, cfg)

	keeperByID := make(map[string]players.KeeperAssignment, len(keepers))
	for _, k := range keepers {
		if _, inPool := baseByID[k.PlayerID]; inPool {
			keeperByID[k.PlayerID] = k
		}
	}

	// Stage 4: final values and pre-bid ranges. Keepers are not re-priced by
	// inflation; their price is fixed at their salary for draft tracking.
	valued := make([]players.Valued, len(pool))
	for i, p := range pool {
		v := players.Valued{
			Projection:  p,
			SGP:         sgp[i],
			DollarValue: base[i],
		}
		if k, ok := keeperByID[p.ID]; ok {
			v.IsKeeper = true
			v.KeeperTeamID = k.TeamID
			v.KeeperSalary = k.Salary
			v.InflatedValue = base[i]
		} else {
			v.InflatedValue = round1(base[i] * inflation.Rate)
		}
		v.Range = NewPriceRange(v.InflatedValue, cfg.Thresholds)
		valued[i] = v
	}

	return &Result{
		Players:   valued,
		Inflation: inflation,
		Warnings:  warnings,
	}, nil
}

// ValidateConfig refuses configurations that would yield zero or NaN dollar
// values rather than computing anything misleading.
func ValidateConfig(cfg config.League) error {
	if cfg.Teams <= 0 {
		return &ConfigError{Field: "teams", Reason: "must be positive"}
	}
	if cfg.BudgetPerTeam <= 0 {
		return &ConfigError{Field: "budgetPerTeam", Reason: "must be positive"}
	}
	if cfg.Roster.Hitters() <= 0 {
		return &ConfigError{Field: "roster", Reason: "needs at least one hitting slot"}
	}
	if cfg.Roster.Pitchers() <= 0 {
		return &ConfigError{Field: "roster", Reason: "needs at least one pitching slot"}
	}
	if cfg.HitterSplit <= 0 || cfg.HitterSplit >= 1 {
		return &ConfigError{Field: "hitterSplit", Reason: "must be between 0 and 1 exclusive"}
	}

	d := cfg.Denominators
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"denominators.r", d.R}, {"denominators.hr", d.HR},
		{"denominators.rbi", d.RBI}, {"denominators.sb", d.SB},
		{"denominators.ba", d.BA}, {"denominators.w", d.W},
		{"denominators.sv", d.SV}, {"denominators.k", d.K},
		{"denominators.era", d.ERA}, {"denominators.whip", d.WHIP},
	} {
		if check.value <= 0 {
			return &ConfigError{Field: check.name, Reason: "must be positive"}
		}
	}

	th := cfg.Thresholds
	if th.Steal <= 0 || th.Value < th.Steal || th.FairHigh < th.FairLow || th.BigOverpay < th.Overpay {
		return &ConfigError{Field: "thresholds", Reason: "must be positive and ordered"}
	}

	return nil
}
