package catalog

import (
	"errors"
	"testing"
)

func TestDefaultCatalogOrder(t *testing.T) {
	t.Parallel()

	c := Default()
	want := []string{"ETH", "POL", "USDC", "USDT", "DAI"}
	if c.Len() != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), c.Len())
	}
	for idx, symbol := range want {
		token, ok := c.At(idx)
		if !ok || token.Symbol != symbol {
			t.Fatalf("entry %d: got %+v want %s", idx, token, symbol)
		}
	}
	if c.First().Symbol != "ETH" {
		t.Fatalf("first entry should be ETH, got %s", c.First().Symbol)
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		tokens []Token
		want   error
	}{
		{name: "empty", tokens: nil, want: ErrEmptyCatalog},
		{name: "missing symbol", tokens: []Token{{Symbol: "  "}}, want: ErrMissingSymbol},
		{name: "duplicate", tokens: []Token{{Symbol: "ETH"}, {Symbol: "ETH"}}, want: ErrDuplicateSymbol},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := New(tc.tokens); !errors.Is(err, tc.want) {
				t.Fatalf("New() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestTokensReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	tokens := c.Tokens()
	tokens[0].Symbol = "XXX"
	if c.First().Symbol != "ETH" {
		t.Fatal("mutating Tokens() result changed the catalog")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c := Default()
	token, ok := c.Lookup("USDT")
	if !ok || token.Name != "Tether" {
		t.Fatalf("lookup USDT: got %+v ok=%v", token, ok)
	}
	if _, ok := c.Lookup("usdt"); ok {
		t.Fatal("lookup should be case sensitive")
	}
	if idx := c.IndexOf("BTC"); idx != -1 {
		t.Fatalf("unknown symbol index = %d, want -1", idx)
	}
	if label := token.Label(); label != "₮ USDT" {
		t.Fatalf("label = %q", label)
	}
}
