package swap

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/csheth/swapscreen/internal/catalog"
)

const (
	amountPlaces = 6
	pricePlaces  = 2
)

// PriceSteps are the percentage nudges offered next to the limit price.
var PriceSteps = []int{1, 5, 10}

var hundred = decimal.NewFromInt(100)

// ParseAmount reads free-form text the way a browser number field would:
// surrounding whitespace is ignored and blank text counts as zero. Empty text
// and anything that is not a plain decimal (optionally with exponent) fails.
// Magnitudes past float64 range fail too; magnitudes below it read as zero.
func ParseAmount(text string) (decimal.Decimal, bool) {
	if text == "" {
		return decimal.Zero, false
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, true
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	// Formatting expands the exponent digit by digit, so it must stay bounded.
	f, err := strconv.ParseFloat(trimmed, 64)
	switch {
	case math.IsInf(f, 0):
		return decimal.Zero, false
	case err != nil && !errors.Is(err, strconv.ErrRange):
		return decimal.Zero, false
	case f == 0:
		return decimal.Zero, true
	}
	return value, true
}

// Convert derives the "to" amount for a raw "from" text. It returns "" when
// the text is not numeric or no "to" token is bound.
func Convert(text string, from catalog.Token, to *catalog.Token, rates Rates) string {
	if to == nil {
		return ""
	}
	amount, ok := ParseAmount(text)
	if !ok {
		return ""
	}
	return amount.Mul(rates.For(from.Symbol)).StringFixed(amountPlaces)
}

// AdjustPrice scales a limit price by (1 + percent/100) and keeps two decimals.
// The second result is false when text does not parse, in which case text is
// returned unchanged.
func AdjustPrice(text string, percent int) (string, bool) {
	price, ok := ParseAmount(text)
	if !ok {
		return text, false
	}
	factor := decimal.NewFromInt(1).Add(decimal.NewFromInt(int64(percent)).Div(hundred))
	return price.Mul(factor).StringFixed(pricePlaces), true
}
