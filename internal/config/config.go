package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/csheth/swapscreen/internal/catalog"
	"github.com/csheth/swapscreen/internal/swap"
)

const (
	configName = ".swapscreen"
	envPrefix  = "SWAPSCREEN"
)

// Config holds everything read from the config file and environment.
type Config struct {
	LogFile  string
	LogLevel string
	Settings swap.Settings
}

type rateEntry struct {
	Symbol string `mapstructure:"symbol"`
	Rate   string `mapstructure:"rate"`
}

// LoadEnv reads a .env file from the working directory when one exists.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load reads configuration from an explicit file, or from .swapscreen.yaml in
// $HOME or the working directory when path is empty. A missing default file
// is not an error; the built-in catalog and figures apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	settings, err := buildSettings(v)
	if err != nil {
		return nil, err
	}
	return &Config{
		LogFile:  v.GetString("log_file"),
		LogLevel: v.GetString("log_level"),
		Settings: settings,
	}, nil
}

func setDefaults(v *viper.Viper) {
	d := swap.DefaultDefaults()
	f := swap.DefaultFigures()

	v.SetDefault("log_level", "info")
	v.SetDefault("market_price", swap.MarketPrice)
	v.SetDefault("rates.fallback", swap.DefaultRates().Fallback().String())

	v.SetDefault("defaults.mode", d.Mode.String())
	v.SetDefault("defaults.to_symbol", d.ToSymbol)
	v.SetDefault("defaults.from_amount", d.FromAmount)
	v.SetDefault("defaults.to_amount", d.ToAmount)
	v.SetDefault("defaults.limit_price", d.LimitPrice)
	v.SetDefault("defaults.expiry", d.Expiry.String())

	v.SetDefault("figures.sell_usd", f.SellUSD)
	v.SetDefault("figures.buy_usd", f.BuyUSD)
	v.SetDefault("figures.review_from_usd", f.ReviewFromUSD)
	v.SetDefault("figures.review_to_usd", f.ReviewToUSD)
	v.SetDefault("figures.rate_line", f.RateLine)
	v.SetDefault("figures.fee_label", f.FeeLabel)
	v.SetDefault("figures.fee", f.Fee)
	v.SetDefault("figures.review_network_cost", f.ReviewNetworkCost)
	v.SetDefault("figures.inline_network_cost", f.InlineNetworkCost)
	v.SetDefault("figures.routing", f.Routing)
	v.SetDefault("figures.price_impact", f.PriceImpact)
	v.SetDefault("figures.max_slippage", f.MaxSlippage)
}

func buildSettings(v *viper.Viper) (swap.Settings, error) {
	cat := catalog.Default()
	if v.IsSet("tokens") {
		var tokens []catalog.Token
		if err := v.UnmarshalKey("tokens", &tokens); err != nil {
			return swap.Settings{}, fmt.Errorf("decode tokens: %w", err)
		}
		var err error
		cat, err = catalog.New(tokens)
		if err != nil {
			return swap.Settings{}, err
		}
	}

	rates, err := buildRates(v)
	if err != nil {
		return swap.Settings{}, err
	}

	mode, err := swap.ParseMode(v.GetString("defaults.mode"))
	if err != nil {
		return swap.Settings{}, fmt.Errorf("defaults.mode: %w", err)
	}
	expiry, err := swap.ParseExpiry(v.GetString("defaults.expiry"))
	if err != nil {
		return swap.Settings{}, fmt.Errorf("defaults.expiry: %w", err)
	}

	settings := swap.Settings{
		Catalog:     cat,
		Rates:       rates,
		MarketPrice: v.GetString("market_price"),
		Figures: swap.Figures{
			SellUSD:           v.GetString("figures.sell_usd"),
			BuyUSD:            v.GetString("figures.buy_usd"),
			ReviewFromUSD:     v.GetString("figures.review_from_usd"),
			ReviewToUSD:       v.GetString("figures.review_to_usd"),
			RateLine:          v.GetString("figures.rate_line"),
			FeeLabel:          v.GetString("figures.fee_label"),
			Fee:               v.GetString("figures.fee"),
			ReviewNetworkCost: v.GetString("figures.review_network_cost"),
			InlineNetworkCost: v.GetString("figures.inline_network_cost"),
			Routing:           v.GetString("figures.routing"),
			PriceImpact:       v.GetString("figures.price_impact"),
			MaxSlippage:       v.GetString("figures.max_slippage"),
		},
		Defaults: swap.Defaults{
			Mode:       mode,
			ToSymbol:   v.GetString("defaults.to_symbol"),
			FromAmount: v.GetString("defaults.from_amount"),
			ToAmount:   v.GetString("defaults.to_amount"),
			LimitPrice: v.GetString("defaults.limit_price"),
			Expiry:     expiry,
		},
	}
	if err := settings.Validate(); err != nil {
		return swap.Settings{}, err
	}
	return settings, nil
}

func buildRates(v *viper.Viper) (swap.Rates, error) {
	fallback, err := decimal.NewFromString(strings.TrimSpace(v.GetString("rates.fallback")))
	if err != nil {
		return swap.Rates{}, fmt.Errorf("rates.fallback: %w", err)
	}

	var entries []rateEntry
	if v.IsSet("rates.anchors") {
		if err := v.UnmarshalKey("rates.anchors", &entries); err != nil {
			return swap.Rates{}, fmt.Errorf("decode rates.anchors: %w", err)
		}
	} else {
		entries = []rateEntry{{Symbol: "ETH", Rate: "2500"}}
	}

	anchors := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range entries {
		symbol := strings.TrimSpace(entry.Symbol)
		if symbol == "" {
			return swap.Rates{}, fmt.Errorf("rates.anchors: %w", catalog.ErrMissingSymbol)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(entry.Rate))
		if err != nil {
			return swap.Rates{}, fmt.Errorf("rates.anchors[%s]: %w", symbol, err)
		}
		anchors[symbol] = rate
	}
	return swap.NewRates(anchors, fallback), nil
}
