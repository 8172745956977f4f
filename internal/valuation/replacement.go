package valuation

import (
	"sort"

	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// Levels holds the replacement-level SGP for each player type: the total SGP
// of the last player presumed to be drafted.
type Levels struct {
	Hitter  float64
	Pitcher float64
}

// ReplacementLevels ranks each side of the pool by total SGP and reads the
// threshold at the league's draftable count. Players below the minimum
// playing time still carry values but never set the baseline.
func ReplacementLevels(pool []players.Projection, sgp []players.SGPResult, cfg config.League) Levels {
	var hitters, pitchers []float64
	for i, p := range pool {
		if !rankEligible(p, cfg) {
			continue
		}
		switch p.Type {
		case players.TypeHitter:
			hitters = append(hitters, sgp[i].Total)
		case players.TypePitcher:
			pitchers = append(pitchers, sgp[i].Total)
		}
	}

	return Levels{
		Hitter:  replacementAt(hitters, cfg.DraftableHitters()),
		Pitcher: replacementAt(pitchers, cfg.DraftablePitchers()),
	}
}

func rankEligible(p players.Projection, cfg config.League) bool {
	switch p.Type {
	case players.TypeHitter:
		return p.Hitting != nil && p.Hitting.AB >= cfg.MinRankAB
	case players.TypePitcher:
		return p.Pitching != nil && p.Pitching.IP >= cfg.MinRankIP
	}
	return false
}

// replacementAt returns the SGP at the draftable rank (1-indexed). Short
// pools fall back to the pool minimum; no extrapolation. The stable sort
// keeps input order as the tie-break so a re-run never reshuffles the
// boundary.
func replacementAt(totals []float64, draftable int) float64 {
	if len(totals) == 0 {
		return 0
	}
	ranked := append([]float64(nil), totals...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i] > ranked[j] })
	if len(ranked) < draftable {
		return ranked[len(ranked)-1]
	}
	return ranked[draftable-1]
}
