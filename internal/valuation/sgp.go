package valuation

import (
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// ComputeSGP produces a player's per-category standings gain points.
// Counting categories are stat/denominator. Ratio categories are the
// player's marginal contribution to the league rate, weighted by their share
// of an average team's playing time, with the sign inverted for ERA and WHIP
// where lower is better.
func ComputeSGP(p players.Projection, agg Aggregates, cfg config.League) players.SGPResult {
	switch p.Type {
	case players.TypeHitter:
		return hittingSGP(p.Hitting, agg, cfg)
	case players.TypePitcher:
		return pitchingSGP(p.Pitching, agg, cfg)
	}
	return players.SGPResult{Categories: map[string]float64{}}
}

func hittingSGP(h *players.HittingLine, agg Aggregates, cfg config.League) players.SGPResult {
	cats := make(map[string]float64, 5)
	if h == nil {
		return players.SGPResult{Categories: cats}
	}

	d := cfg.Denominators
	cats[players.CatRuns] = float64(h.R) / d.R
	cats[players.CatHomers] = float64(h.HR) / d.HR
	cats[players.CatRBI] = float64(h.RBI) / d.RBI
	cats[players.CatSteals] = float64(h.SB) / d.SB

	cats[players.CatAverage] = 0
	if h.AB > 0 && agg.TeamAB > 0 {
		rate := h.BA
		if rate == 0 && h.H > 0 {
			rate = float64(h.H) / float64(h.AB)
		}
		marginal := (rate - agg.LeagueBA) * (float64(h.AB) / agg.TeamAB)
		cats[players.CatAverage] = marginal / d.BA
	}

	return total(cats, hittingCats)
}

func pitchingSGP(p *players.PitchingLine, agg Aggregates, cfg config.League) players.SGPResult {
	cats := make(map[string]float64, 5)
	if p == nil {
		return players.SGPResult{Categories: cats}
	}

	d := cfg.Denominators
	cats[players.CatWins] = float64(p.W) / d.W
	cats[players.CatSaves] = float64(p.SV) / d.SV
	cats[players.CatStrikeouts] = float64(p.K) / d.K

	cats[players.CatERA] = 0
	cats[players.CatWHIP] = 0
	if p.IP > 0 && agg.TeamIP > 0 {
		share := p.IP / agg.TeamIP
		// Negative gap (better than league) becomes positive SGP.
		cats[players.CatERA] = -(p.ERA - agg.LeagueERA) * share / d.ERA
		cats[players.CatWHIP] = -(p.WHIP - agg.LeagueWHIP) * share / d.WHIP
	}

	return total(cats, pitchingCats)
}

// Category summation order is fixed: float addition is not associative,
// so ranging over the map would make Total vary between identical runs.
var (
	hittingCats  = []string{players.CatRuns, players.CatHomers, players.CatRBI, players.CatSteals, players.CatAverage}
	pitchingCats = []string{players.CatWins, players.CatSaves, players.CatStrikeouts, players.CatERA, players.CatWHIP}
)

func total(cats map[string]float64, order []string) players.SGPResult {
	sum := 0.0
	for _, name := range order {
		sum += cats[name]
	}
	return players.SGPResult{Categories: cats, Total: sum}
}
