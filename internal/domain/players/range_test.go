package players

import "testing"

func TestClassifyBands(t *testing.T) {
	// Ranges for a $20 player under the stock thresholds.
	r := PriceRange{
		StealBelow:      14,
		ValueBelow:      18,
		FairLow:         18,
		FairHigh:        22,
		OverpayAbove:    22,
		BigOverpayAbove: 28,
	}

	cases := []struct {
		price float64
		want  Band
	}{
		{1, BandBigSteal},
		{14, BandBigSteal},
		{14.5, BandSteal},
		{18, BandSteal},
		{18.5, BandFair},
		{20, BandFair},
		{22, BandFair},
		{22.5, BandOverpay},
		{27.5, BandOverpay},
		{28, BandBigOverpay},
		{40, BandBigOverpay},
	}
	for _, tc := range cases {
		if got := r.Classify(tc.price); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.price, got, tc.want)
		}
	}
}

func TestClassifyCoversEveryPrice(t *testing.T) {
	r := PriceRange{StealBelow: 7, ValueBelow: 9, FairLow: 9, FairHigh: 11, OverpayAbove: 11, BigOverpayAbove: 14}
	for price := 0.0; price <= 20; price += 0.5 {
		if r.Classify(price) == "" {
			t.Fatalf("price %v fell through every band", price)
		}
	}
}
