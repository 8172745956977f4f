package valuation

import (
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// Aggregates holds the pool-wide playing-time-weighted rates that ratio-stat
// SGP is measured against, plus the average team playing time used to scale
// each player's marginal contribution. They must be computed over the full
// pool before any individual ratio SGP can be finalized.
type Aggregates struct {
	LeagueBA   float64
	LeagueERA  float64
	LeagueWHIP float64
	TeamAB     float64
	TeamIP     float64
}

// Aggregate walks the pool once and produces the weighted league rates.
// Sides with zero playing time fall back to the configured baselines.
func Aggregate(pool []players.Projection, cfg config.League) Aggregates {
	var (
		sumAB, sumH          float64
		sumIP                float64
		sumERAxIP, sumWHIPxIP float64
	)

	for _, p := range pool {
		switch p.Type {
		case players.TypeHitter:
			if p.Hitting == nil {
				continue
			}
			ab := float64(p.Hitting.AB)
			sumAB += ab
			if p.Hitting.H > 0 {
				sumH += float64(p.Hitting.H)
			} else {
				sumH += p.Hitting.BA * ab
			}
		case players.TypePitcher:
			if p.Pitching == nil {
				continue
			}
			sumIP += p.Pitching.IP
			sumERAxIP += p.Pitching.ERA * p.Pitching.IP
			sumWHIPxIP += p.Pitching.WHIP * p.Pitching.IP
		}
	}

	agg := Aggregates{
		LeagueBA:   cfg.Baselines.BA,
		LeagueERA:  cfg.Baselines.ERA,
		LeagueWHIP: cfg.Baselines.WHIP,
		TeamAB:     cfg.MinTeamAB,
		TeamIP:     cfg.MinTeamIP,
	}

	if sumAB > 0 {
		agg.LeagueBA = sumH / sumAB
		if teams := float64(cfg.Teams); teams > 0 && sumAB/teams > agg.TeamAB {
			agg.TeamAB = sumAB / teams
		}
	}
	if sumIP > 0 {
		agg.LeagueERA = sumERAxIP / sumIP
		agg.LeagueWHIP = sumWHIPxIP / sumIP
		if teams := float64(cfg.Teams); teams > 0 && sumIP/teams > agg.TeamIP {
			agg.TeamIP = sumIP / teams
		}
	}

	return agg
}
