package players

// Band labels a bid price relative to a player's pre-bid range.
type Band string

const (
	BandBigSteal   Band = "Big Steal"
	BandSteal      Band = "Steal"
	BandFair       Band = "Fair"
	BandOverpay    Band = "Overpay"
	BandBigOverpay Band = "Big Overpay"
)

// PriceRange holds the steal/fair/overpay thresholds derived from a player's
// inflated value. ValueBelow coincides with FairLow and FairHigh with
// OverpayAbove, so the bands tile the price axis with no gaps.
type PriceRange struct {
	StealBelow      float64 `json:"stealBelow"`
	ValueBelow      float64 `json:"valueBelow"`
	FairLow         float64 `json:"fairLow"`
	FairHigh        float64 `json:"fairHigh"`
	OverpayAbove    float64 `json:"overpayAbove"`
	BigOverpayAbove float64 `json:"bigOverpayAbove"`
}

// Classify assigns the band for a bid price.
func (r PriceRange) Classify(price float64) Band {
	switch {
	case price <= r.StealBelow:
		return BandBigSteal
	case price <= r.ValueBelow:
		return BandSteal
	case price <= r.FairHigh:
		return BandFair
	case price < r.BigOverpayAbove:
		return BandOverpay
	default:
		return BandBigOverpay
	}
}
