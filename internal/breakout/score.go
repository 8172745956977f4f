// Package breakout annotates valued players with an upside/decline profile
// derived from prior-season Statcast metrics. It reads a disjoint input set
// and never touches dollar values.
package breakout

import (
	"fmt"
	"math"

	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

const (
	labelHighUpside     = "High Upside"
	labelModerateUpside = "Moderate Upside"
	labelStable         = "Stable"
	labelDeclineRisk    = "Decline Risk"

	// Assumed when the upload carried no age column.
	defaultAge = 28
)

// Score computes a player's breakout profile on a -1..+1 scale.
func Score(p players.Projection) players.BreakoutProfile {
	score := 0.0
	var factors []string

	add := func(delta float64, factor string) {
		score += delta
		factors = append(factors, factor)
	}

	age := p.Statcast.Age
	if age == 0 {
		age = defaultAge
	}

	if p.Type == players.TypeHitter {
		switch {
		case age >= 22 && age <= 26:
			add(0.20, fmt.Sprintf("Age %d (prime breakout window)", age))
		case age <= 21:
			add(0.15, fmt.Sprintf("Age %d (young upside)", age))
		case age >= 33:
			add(-0.20, fmt.Sprintf("Age %d (decline risk)", age))
		case age >= 30:
			add(-0.10, fmt.Sprintf("Age %d (aging)", age))
		}

		if xba := p.Statcast.XBA; xba != nil && p.Hitting != nil && p.Hitting.BA > 0 {
			// Positive gap means the hitter was unlucky and due to improve.
			gap := *xba - p.Hitting.BA
			if gap > 0.020 {
				add(0.20, fmt.Sprintf("xBA gap +%.3f (unlucky)", gap))
			} else if gap < -0.020 {
				add(-0.15, fmt.Sprintf("xBA gap %.3f (overperforming)", gap))
			}
		}

		if xslg := p.Statcast.XSLG; xslg != nil {
			switch {
			case *xslg > 0.500:
				add(0.15, fmt.Sprintf("xSLG %.3f (elite power)", *xslg))
			case *xslg > 0.430:
				add(0.05, fmt.Sprintf("xSLG %.3f (above avg power)", *xslg))
			case *xslg < 0.340:
				add(-0.10, fmt.Sprintf("xSLG %.3f (weak power)", *xslg))
			}
		}

		if xwoba := p.Statcast.XWOBA; xwoba != nil {
			switch {
			case *xwoba > 0.370:
				add(0.15, fmt.Sprintf("xwOBA %.3f (elite)", *xwoba))
			case *xwoba > 0.330:
				add(0.05, fmt.Sprintf("xwOBA %.3f (above avg)", *xwoba))
			case *xwoba < 0.280:
				add(-0.10, fmt.Sprintf("xwOBA %.3f (poor)", *xwoba))
			}
		}

		if barrel := p.Statcast.BarrelPct; barrel != nil {
			switch {
			case *barrel > 12:
				add(0.15, fmt.Sprintf("Barrel %.1f%% (elite)", *barrel))
			case *barrel > 8:
				add(0.08, fmt.Sprintf("Barrel %.1f%% (above avg)", *barrel))
			case *barrel < 4:
				add(-0.10, fmt.Sprintf("Barrel %.1f%% (poor)", *barrel))
			}
		}

		if hard := p.Statcast.HardHitPct; hard != nil {
			switch {
			case *hard > 45:
				add(0.12, fmt.Sprintf("Hard hit %.1f%% (elite)", *hard))
			case *hard > 40:
				add(0.05, fmt.Sprintf("Hard hit %.1f%% (above avg)", *hard))
			case *hard < 30:
				add(-0.10, fmt.Sprintf("Hard hit %.1f%% (poor)", *hard))
			}
		}

		if spd := p.Statcast.Spd; spd != nil {
			switch {
			case *spd > 6.0:
				add(0.12, fmt.Sprintf("Spd %.1f (elite speed)", *spd))
			case *spd > 4.5:
				add(0.05, fmt.Sprintf("Spd %.1f (above avg speed)", *spd))
			case *spd < 2.5:
				add(-0.05, fmt.Sprintf("Spd %.1f (slow)", *spd))
			}
		}
	} else {
		switch {
		case age >= 23 && age <= 27:
			add(0.20, fmt.Sprintf("Age %d (prime breakout window)", age))
		case age >= 34:
			add(-0.25, fmt.Sprintf("Age %d (decline risk)", age))
		case age >= 31:
			add(-0.10, fmt.Sprintf("Age %d (aging)", age))
		}

		if stuff := p.Statcast.StuffPlus; stuff != nil {
			switch {
			case *stuff > 120:
				add(0.25, fmt.Sprintf("Stuff+ %.0f (elite)", *stuff))
			case *stuff > 110:
				add(0.12, fmt.Sprintf("Stuff+ %.0f (above avg)", *stuff))
			case *stuff < 90:
				add(-0.15, fmt.Sprintf("Stuff+ %.0f (below avg)", *stuff))
			}
		}

		if k := p.Statcast.KPct; k != nil {
			switch {
			case *k > 28:
				add(0.15, fmt.Sprintf("K%% %.1f%% (elite)", *k))
			case *k > 23:
				add(0.05, fmt.Sprintf("K%% %.1f%% (above avg)", *k))
			case *k < 16:
				add(-0.10, fmt.Sprintf("K%% %.1f%% (low)", *k))
			}
		}

		if csw := p.Statcast.CSWPct; csw != nil {
			switch {
			case *csw > 32:
				add(0.12, fmt.Sprintf("CSW%% %.1f%% (elite command)", *csw))
			case *csw > 29:
				add(0.05, fmt.Sprintf("CSW%% %.1f%% (above avg command)", *csw))
			case *csw < 25:
				add(-0.10, fmt.Sprintf("CSW%% %.1f%% (poor command)", *csw))
			}
		}

		if xera := p.Statcast.XERA; xera != nil {
			switch {
			case *xera < 3.20:
				add(0.15, fmt.Sprintf("xERA %.2f (elite)", *xera))
			case *xera < 3.80:
				add(0.05, fmt.Sprintf("xERA %.2f (above avg)", *xera))
			case *xera > 5.00:
				add(-0.10, fmt.Sprintf("xERA %.2f (poor)", *xera))
			}
		}

		if loc := p.Statcast.LocationPlus; loc != nil {
			switch {
			case *loc > 110:
				add(0.10, fmt.Sprintf("Location+ %.0f (elite command)", *loc))
			case *loc > 100:
				add(0.03, fmt.Sprintf("Location+ %.0f (above avg)", *loc))
			case *loc < 85:
				add(-0.08, fmt.Sprintf("Location+ %.0f (poor command)", *loc))
			}
		}

		if swstr := p.Statcast.SwStrPct; swstr != nil {
			switch {
			case *swstr > 13:
				add(0.10, fmt.Sprintf("SwStr%% %.1f%% (elite)", *swstr))
			case *swstr > 11:
				add(0.03, fmt.Sprintf("SwStr%% %.1f%% (above avg)", *swstr))
			case *swstr < 8:
				add(-0.08, fmt.Sprintf("SwStr%% %.1f%% (low)", *swstr))
			}
		}
	}

	score = math.Max(-1.0, math.Min(1.0, score))

	label := labelStable
	switch {
	case score >= 0.4:
		label = labelHighUpside
	case score >= 0.15:
		label = labelModerateUpside
	case score <= -0.3:
		label = labelDeclineRisk
	}

	return players.BreakoutProfile{
		Score:   math.Round(score*100) / 100,
		Label:   label,
		Factors: factors,
	}
}

// Annotate attaches a profile to every valued player in place.
func Annotate(pool []players.Valued) {
	for i := range pool {
		profile := Score(pool[i].Projection)
		pool[i].Breakout = &profile
	}
}
