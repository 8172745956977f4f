package valuation

import (
	"github.com/preston-bernstein/roto-auction-service/internal/config"
	"github.com/preston-bernstein/roto-auction-service/internal/domain/players"
)

// NewPriceRange derives the pre-bid thresholds from a player's final
// inflated value. Thresholds are monotonically non-decreasing for any
// non-negative value.
func NewPriceRange(inflated float64, th config.Thresholds) players.PriceRange {
	return players.PriceRange{
		StealBelow:      round1(inflated * th.Steal),
		ValueBelow:      round1(inflated * th.Value),
		FairLow:         round1(inflated * th.FairLow),
		FairHigh:        round1(inflated * th.FairHigh),
		OverpayAbove:    round1(inflated * th.Overpay),
		BigOverpayAbove: round1(inflated * th.BigOverpay),
	}
}
