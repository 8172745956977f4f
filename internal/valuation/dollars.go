package valuation

import (
	"math"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// dollarRates converts the pool's SGP-above-replacement into dollars-per-SGP
// for each side. The allocatable budget reserves $1 per roster slot so every
// rostered player can be bought for at least the floor, then splits the rest
// between hitters and pitchers.
type dollarRates struct {
	levels        Levels
	hitterPerSGP  float64
	pitcherPerSGP float64
}

func computeDollarRates(pool []players.Projection, sgp []players.SGPResult, levels Levels, cfg config.League) dollarRates {
	allocatable := float64(cfg.TotalBudget() - cfg.DraftableTotal())
	hitterBudget := allocatable * cfg.HitterSplit
	pitcherBudget := allocatable * (1 - cfg.HitterSplit)

	var hitterSGPAR, pitcherSGPAR float64
	for i, p := range pool {
		switch p.Type {
		case players.TypeHitter:
			hitterSGPAR += sgpAbove(sgp[i].Total, levels.Hitter)
		case players.TypePitcher:
			pitcherSGPAR += sgpAbove(sgp[i].Total, levels.Pitcher)
		}
	}

	rates := dollarRates{levels: levels}
	if hitterSGPAR > 0 {
		rates.hitterPerSGP = hitterBudget / hitterSGPAR
	}
	if pitcherSGPAR > 0 {
		rates.pitcherPerSGP = pitcherBudget / pitcherSGPAR
	}
	return rates
}

// baseValue prices one player: SGPAR times the side's dollars-per-SGP, plus
// the $1 floor. Rounded to a tenth of a dollar.
func (r dollarRates) baseValue(typ players.Type, totalSGP float64) float64 {
	var above, perSGP float64
	switch typ {
	case players.TypeHitter:
		above = sgpAbove(totalSGP, r.levels.Hitter)
		perSGP = r.hitterPerSGP
	case players.TypePitcher:
		above = sgpAbove(totalSGP, r.levels.Pitcher)
		perSGP = r.pitcherPerSGP
	}
	return round1(above*perSGP + 1)
}

// sgpAbove clamps at zero: below-replacement players keep the $1 floor only.
func sgpAbove(total, replacement float64) float64 {
	return math.Max(0, total-replacement)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
