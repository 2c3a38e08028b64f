package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCatalog    = errors.New("catalog: at least one token is required")
	ErrMissingSymbol   = errors.New("catalog: token symbol is empty")
	ErrDuplicateSymbol = errors.New("catalog: duplicate token symbol")
)

// Token is a tradable asset entry shown by the token selectors.
type Token struct {
	Symbol  string `json:"symbol" mapstructure:"symbol"`
	Name    string `json:"name" mapstructure:"name"`
	Balance string `json:"balance" mapstructure:"balance"`
	Icon    string `json:"icon" mapstructure:"icon"`
	Color   string `json:"color" mapstructure:"color"`
}

// Label renders the trigger text for a bound token.
func (t Token) Label() string {
	if t.Icon == "" {
		return t.Symbol
	}
	return t.Icon + " " + t.Symbol
}

// Catalog is an ordered, read-only token list. The zero value is empty.
type Catalog struct {
	tokens []Token
}

// New validates entries and returns a catalog owning a private copy of them.
func New(tokens []Token) (Catalog, error) {
	if len(tokens) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(tokens))
	owned := make([]Token, 0, len(tokens))
	for idx, token := range tokens {
		token.Symbol = strings.TrimSpace(token.Symbol)
		if token.Symbol == "" {
			return Catalog{}, fmt.Errorf("entry %d: %w", idx, ErrMissingSymbol)
		}
		if _, ok := seen[token.Symbol]; ok {
			return Catalog{}, fmt.Errorf("%q: %w", token.Symbol, ErrDuplicateSymbol)
		}
		seen[token.Symbol] = struct{}{}
		owned = append(owned, token)
	}
	return Catalog{tokens: owned}, nil
}

// Default returns the built-in five token catalog.
func Default() Catalog {
	return Catalog{tokens: []Token{
		{Symbol: "ETH", Name: "Ethereum", Balance: "0.018", Icon: "⟠", Color: "#3B82F6"},
		{Symbol: "POL", Name: "Polygon", Balance: "0", Icon: "⬟", Color: "#A855F7"},
		{Symbol: "USDC", Name: "USD Coin", Balance: "1,250.00", Icon: "$", Color: "#2563EB"},
		{Symbol: "USDT", Name: "Tether", Balance: "890.50", Icon: "₮", Color: "#22C55E"},
		{Symbol: "DAI", Name: "Dai Stablecoin", Balance: "456.78", Icon: "◈", Color: "#EAB308"},
	}}
}

func (c Catalog) Len() int {
	return len(c.tokens)
}

// Tokens returns a copy of the entries in display order.
func (c Catalog) Tokens() []Token {
	return append([]Token(nil), c.tokens...)
}

// At returns the entry at index i.
func (c Catalog) At(i int) (Token, bool) {
	if i < 0 || i >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[i], true
}

// First returns the entry that seeds the "from" side.
func (c Catalog) First() Token {
	token, _ := c.At(0)
	return token
}

// IndexOf reports the position of symbol, or -1.
func (c Catalog) IndexOf(symbol string) int {
	for idx, token := range c.tokens {
		if token.Symbol == symbol {
			return idx
		}
	}
	return -1
}

// Lookup finds a token by exact symbol.
func (c Catalog) Lookup(symbol string) (Token, bool) {
	return c.At(c.IndexOf(symbol))
}
