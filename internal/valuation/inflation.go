package valuation

import (
	"fmt"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// InflationResult is the keeper inflation rate plus the arithmetic behind
// it, exposed so callers can display the breakdown.
type InflationResult struct {
	Rate            float64 `json:"inflationRate"`
	TotalBudget     int     `json:"totalBudget"`
	KeeperSalaries  int     `json:"totalKeeperSalary"`
	KeeperValue     float64 `json:"keeperProjectedValue"`
	RemainingBudget float64 `json:"remainingBudget"`
	RemainingValue  float64 `json:"remainingValue"`
	KeeperCount     int     `json:"keeperCount"`
}

// computeInflation derives the single scalar inflation rate from the gap
// between keeper salaries and keeper base values. Assignments referencing a
// player absent from the pool are skipped with a warning; a non-positive
// remaining value clamps the rate to 1.0 rather than producing a negative or
// undefined multiplier.
func computeInflation(baseValues map[string]float64, keepers []players.KeeperAssignment, cfg config.League) (InflationResult, []Warning) {
	var warnings []Warning

	res := InflationResult{
		Rate:        1.0,
		TotalBudget: cfg.TotalBudget(),
	}

	for _, k := range keepers {
		base, ok := baseValues[k.PlayerID]
		if !ok {
			warnings = append(warnings, Warning{
				Code:     WarnUnmatchedKeeper,
				Message:  fmt.Sprintf("keeper %q not in player pool; excluded from inflation", k.PlayerID),
				PlayerID: k.PlayerID,
				TeamID:   k.TeamID,
			})
			continue
		}
		res.KeeperCount++
		res.KeeperSalaries += k.Salary
		res.KeeperValue += base
	}

	budget := float64(res.TotalBudget)
	res.KeeperValue = round1(res.KeeperValue)
	res.RemainingBudget = budget - float64(res.KeeperSalaries)
	res.RemainingValue = round1(budget - res.KeeperValue)

	if res.RemainingValue <= 0 {
		warnings = append(warnings, Warning{
			Code:    WarnDegenerateInflation,
			Message: "keeper value consumes the full budget; inflation clamped to 1.0",
		})
		return res, warnings
	}

	res.Rate = round4(res.RemainingBudget / res.RemainingValue)
	return res, warnings
}
