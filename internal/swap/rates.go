package swap

import "github.com/shopspring/decimal"

// Rates is the flat conversion table used for display estimates. Symbols
// without an anchor use the fallback rate.
type Rates struct {
	anchors  map[string]decimal.Decimal
	fallback decimal.Decimal
}

func NewRates(anchors map[string]decimal.Decimal, fallback decimal.Decimal) Rates {
	owned := make(map[string]decimal.Decimal, len(anchors))
	for symbol, rate := range anchors {
		owned[symbol] = rate
	}
	return Rates{anchors: owned, fallback: fallback}
}

// DefaultRates prices ETH at 2500 and everything else at 0.0004.
func DefaultRates() Rates {
	return NewRates(
		map[string]decimal.Decimal{"ETH": decimal.NewFromInt(2500)},
		decimal.RequireFromString("0.0004"),
	)
}

// For matches symbol exactly.
func (r Rates) For(symbol string) decimal.Decimal {
	if rate, ok := r.anchors[symbol]; ok {
		return rate
	}
	return r.fallback
}

func (r Rates) Fallback() decimal.Decimal {
	return r.fallback
}
