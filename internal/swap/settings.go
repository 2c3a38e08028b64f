package swap

import (
	"errors"
	"fmt"

	"github.com/csheth/swapscreen/internal/catalog"
)

// MarketPrice is the literal restored by the "Market" chip.
const MarketPrice = "4471.36"

// Figures are the illustrative display strings. None of them track the
// entered amounts.
type Figures struct {
	SellUSD           string `mapstructure:"sell_usd"`
	BuyUSD            string `mapstructure:"buy_usd"`
	ReviewFromUSD     string `mapstructure:"review_from_usd"`
	ReviewToUSD       string `mapstructure:"review_to_usd"`
	RateLine          string `mapstructure:"rate_line"`
	FeeLabel          string `mapstructure:"fee_label"`
	Fee               string `mapstructure:"fee"`
	ReviewNetworkCost string `mapstructure:"review_network_cost"`
	InlineNetworkCost string `mapstructure:"inline_network_cost"`
	Routing           string `mapstructure:"routing"`
	PriceImpact       string `mapstructure:"price_impact"`
	MaxSlippage       string `mapstructure:"max_slippage"`
}

func DefaultFigures() Figures {
	return Figures{
		SellUSD:           "$4.45",
		BuyUSD:            "$4.44",
		ReviewFromUSD:     "$4.47",
		ReviewToUSD:       "$4.45",
		RateLine:          "1 USDT = 0.000224472 ETH ($1.00)",
		FeeLabel:          "Fee (0.25%)",
		Fee:               "$0.01",
		ReviewNetworkCost: "$0.52",
		InlineNetworkCost: "$0.28",
		Routing:           "Uniswap API",
		PriceImpact:       "-0.05%",
		MaxSlippage:       "Auto 5.5%",
	}
}

// Defaults seed a freshly mounted screen. An empty ToSymbol leaves the buy
// side unbound so the selector prompts for a token.
type Defaults struct {
	Mode       Mode
	ToSymbol   string
	FromAmount string
	ToAmount   string
	LimitPrice string
	Expiry     Expiry
}

func DefaultDefaults() Defaults {
	return Defaults{
		Mode:       ModeSwap,
		ToSymbol:   "USDC",
		FromAmount: "0.001",
		ToAmount:   "4.45489",
		LimitPrice: MarketPrice,
		Expiry:     ExpiryWeek,
	}
}

// Settings is the static configuration injected into a Machine.
type Settings struct {
	Catalog     catalog.Catalog
	Rates       Rates
	MarketPrice string
	Figures     Figures
	Defaults    Defaults
}

func DefaultSettings() Settings {
	return Settings{
		Catalog:     catalog.Default(),
		Rates:       DefaultRates(),
		MarketPrice: MarketPrice,
		Figures:     DefaultFigures(),
		Defaults:    DefaultDefaults(),
	}
}

var ErrUnknownToken = errors.New("unknown token symbol")

func (s Settings) Validate() error {
	if s.Catalog.Len() == 0 {
		return catalog.ErrEmptyCatalog
	}
	if s.Defaults.ToSymbol != "" && s.Catalog.IndexOf(s.Defaults.ToSymbol) < 0 {
		return fmt.Errorf("default to token %q: %w", s.Defaults.ToSymbol, ErrUnknownToken)
	}
	if !s.Defaults.Expiry.Valid() {
		return fmt.Errorf("default expiry %d out of range", int(s.Defaults.Expiry))
	}
	return nil
}
