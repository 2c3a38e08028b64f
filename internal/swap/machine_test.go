package swap

import (
	"errors"
	"reflect"
	"testing"

	"github.com/csheth/swapscreen/internal/catalog"
)

func newTestMachine(t *testing.T) Machine {
	t.Helper()
	m, err := NewMachine(DefaultSettings())
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}
	return m
}

func mustToken(t *testing.T, symbol string) catalog.Token {
	t.Helper()
	token, ok := catalog.Default().Lookup(symbol)
	if !ok {
		t.Fatalf("token %s missing from default catalog", symbol)
	}
	return token
}

func TestInitialState(t *testing.T) {
	t.Parallel()

	s := newTestMachine(t).Initial()
	if s.Mode != ModeSwap {
		t.Fatalf("mode = %v, want swap", s.Mode)
	}
	if s.From.Symbol != "ETH" {
		t.Fatalf("from = %s, want ETH", s.From.Symbol)
	}
	if s.To == nil || s.To.Symbol != "USDC" {
		t.Fatalf("to = %+v, want USDC", s.To)
	}
	if s.FromAmount != "0.001" || s.ToAmount != "4.45489" {
		t.Fatalf("amounts = %q/%q", s.FromAmount, s.ToAmount)
	}
	if s.LimitPrice != "4471.36" || s.Expiry != ExpiryWeek {
		t.Fatalf("limit = %q expiry = %v", s.LimitPrice, s.Expiry)
	}
	if open := s.OpenPanels(); len(open) != 0 {
		t.Fatalf("panels should start closed, got %v", open)
	}
}

func TestInitialStateWithoutToToken(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.Defaults.ToSymbol = ""
	m, err := NewMachine(settings)
	if err != nil {
		t.Fatalf("NewMachine() error = %v", err)
	}
	if s := m.Initial(); s.To != nil {
		t.Fatalf("to should be unbound, got %+v", s.To)
	}
}

func TestNewMachineRejectsUnknownDefault(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.Defaults.ToSymbol = "BTC"
	if _, err := NewMachine(settings); !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("NewMachine() error = %v, want ErrUnknownToken", err)
	}
}

func TestTypingIntoFromField(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.Initial()

	s = m.SetFromAmount(s, "2")
	if s.FromAmount != "2" || s.ToAmount != "5000.000000" {
		t.Fatalf("after typing 2: from=%q to=%q", s.FromAmount, s.ToAmount)
	}

	s = m.SetFromAmount(s, "")
	if s.FromAmount != "" || s.ToAmount != "" {
		t.Fatalf("after clearing: from=%q to=%q", s.FromAmount, s.ToAmount)
	}

	s = m.SetFromAmount(s, "2x")
	if s.FromAmount != "2x" || s.ToAmount != "" {
		t.Fatalf("non numeric text should be stored verbatim: from=%q to=%q", s.FromAmount, s.ToAmount)
	}
}

func TestSetFromAmountWithoutToToken(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.Defaults.ToSymbol = ""
	m, _ := NewMachine(settings)
	s := m.SetFromAmount(m.Initial(), "3")
	if s.ToAmount != "" {
		t.Fatalf("to amount should be empty without a to token, got %q", s.ToAmount)
	}
}

func TestSwapDirection(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.SetFromAmount(m.Initial(), "2")

	swapped := m.SwapDirection(s)
	if swapped.From.Symbol != "USDC" || swapped.To == nil || swapped.To.Symbol != "ETH" {
		t.Fatalf("tokens not exchanged: from=%s to=%+v", swapped.From.Symbol, swapped.To)
	}
	if swapped.FromAmount != "5000.000000" || swapped.ToAmount != "2" {
		t.Fatalf("amounts not exchanged: from=%q to=%q", swapped.FromAmount, swapped.ToAmount)
	}
	if s.From.Symbol != "ETH" || s.To.Symbol != "USDC" {
		t.Fatal("swap mutated its input state")
	}

	back := m.SwapDirection(swapped)
	if !reflect.DeepEqual(back, s) {
		t.Fatalf("double swap should restore the original state:\n got %+v\nwant %+v", back, s)
	}
}

func TestSwapDirectionWithoutToTokenIsNoop(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.Defaults.ToSymbol = ""
	m, _ := NewMachine(settings)
	s := m.SetFromAmount(m.Initial(), "2")
	if got := m.SwapDirection(s); !reflect.DeepEqual(got, s) {
		t.Fatalf("swap without to token changed state:\n got %+v\nwant %+v", got, s)
	}
}

func TestSwapDirectionKeepsStaleAmounts(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.Initial()
	swapped := m.SwapDirection(s)
	if swapped.FromAmount != "4.45489" || swapped.ToAmount != "0.001" {
		t.Fatalf("amounts should be transposed as-is, got %q/%q", swapped.FromAmount, swapped.ToAmount)
	}
}

func TestSelectTokenClosesPicker(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	for _, side := range []Side{SideFrom, SideTo} {
		for _, token := range catalog.Default().Tokens() {
			s := m.TogglePicker(m.Initial(), side)
			if !s.IsOpen(side.Picker()) {
				t.Fatalf("%s picker should open", side)
			}
			s = m.SelectToken(s, side, token)
			if s.IsOpen(side.Picker()) {
				t.Fatalf("%s picker should close after selecting %s", side, token.Symbol)
			}
			bound, ok := s.Token(side)
			if !ok || bound != token {
				t.Fatalf("%s side bound %+v, want %+v", side, bound, token)
			}
		}
	}
}

func TestSelectSameTokenOnBothSides(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	eth := mustToken(t, "ETH")
	s := m.SelectToken(m.Initial(), SideTo, eth)
	if s.From.Symbol != "ETH" || s.To.Symbol != "ETH" {
		t.Fatalf("expected ETH on both sides, got %s/%s", s.From.Symbol, s.To.Symbol)
	}
}

func TestPickersAreExclusive(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.TogglePicker(m.Initial(), SideFrom)
	s = m.TogglePicker(s, SideTo)
	if s.IsOpen(PanelFromPicker) {
		t.Fatal("opening the to picker should close the from picker")
	}
	if !s.IsOpen(PanelToPicker) {
		t.Fatal("to picker should be open")
	}
	s = m.TogglePicker(s, SideTo)
	if s.IsOpen(PanelToPicker) || s.IsOpen(PanelFromPicker) {
		t.Fatalf("toggling an open picker should close it, open=%v", s.OpenPanels())
	}
}

func TestLimitPriceTransitions(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.SetMode(m.Initial(), ModeLimit)

	s = m.AdjustLimitPrice(s, 10)
	if s.LimitPrice != "4918.50" {
		t.Fatalf("limit price after +10%% = %q", s.LimitPrice)
	}
	s = m.SetLimitPrice(s, "abc")
	s = m.AdjustLimitPrice(s, 5)
	if s.LimitPrice != "abc" {
		t.Fatalf("unparsable limit price should be kept, got %q", s.LimitPrice)
	}
	s = m.ResetLimitPrice(s)
	if s.LimitPrice != MarketPrice {
		t.Fatalf("market reset = %q", s.LimitPrice)
	}
}

func TestMarketResetUsesInjectedLiteral(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.MarketPrice = "1.23"
	m, _ := NewMachine(settings)
	if s := m.ResetLimitPrice(m.Initial()); s.LimitPrice != "1.23" {
		t.Fatalf("market reset = %q, want 1.23", s.LimitPrice)
	}
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.SetExpiry(m.Initial(), ExpiryYear)
	if s.Expiry != ExpiryYear {
		t.Fatalf("expiry = %v", s.Expiry)
	}
	s = m.SetExpiry(s, Expiry(42))
	if s.Expiry != ExpiryYear {
		t.Fatal("invalid expiry should be ignored")
	}
	s = m.CycleExpiry(s, 1)
	if s.Expiry != ExpiryDay {
		t.Fatalf("cycle should wrap forward, got %v", s.Expiry)
	}
	s = m.CycleExpiry(s, -1)
	if s.Expiry != ExpiryYear {
		t.Fatalf("cycle should wrap backward, got %v", s.Expiry)
	}
}

func TestReviewDialog(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.Initial()

	s = m.ToggleReview(s)
	if !s.IsOpen(PanelReview) {
		t.Fatal("review should open in swap mode")
	}
	s = m.ToggleReviewDetails(s)
	s = m.CloseReview(s)
	if s.IsOpen(PanelReview) {
		t.Fatal("review should close")
	}
	s = m.OpenReview(s)
	if !s.IsOpen(PanelReviewDetails) {
		t.Fatal("review details flag should persist across reopen")
	}

	limit := m.SetMode(m.CloseReview(s), ModeLimit)
	if m.OpenReview(limit).IsOpen(PanelReview) {
		t.Fatal("review is only reachable from the swap layout")
	}
}

func TestInlineDetailsToggle(t *testing.T) {
	t.Parallel()

	m := newTestMachine(t)
	s := m.ToggleInlineDetails(m.Initial())
	if !s.IsOpen(PanelInlineDetails) {
		t.Fatal("inline details should open")
	}
	if m.ToggleInlineDetails(s).IsOpen(PanelInlineDetails) {
		t.Fatal("inline details should close on second toggle")
	}
}

func TestParseHelpers(t *testing.T) {
	t.Parallel()

	if mode, err := ParseMode("Limit"); err != nil || mode != ModeLimit {
		t.Fatalf("ParseMode(Limit) = %v, %v", mode, err)
	}
	if _, err := ParseMode("market"); err == nil {
		t.Fatal("ParseMode(market) should fail")
	}
	if e, err := ParseExpiry(" 1   Month "); err != nil || e != ExpiryMonth {
		t.Fatalf("ParseExpiry = %v, %v", e, err)
	}
	if _, err := ParseExpiry("2 days"); err == nil {
		t.Fatal("ParseExpiry(2 days) should fail")
	}
	for _, e := range Expiries() {
		if parsed, err := ParseExpiry(e.String()); err != nil || parsed != e {
			t.Fatalf("expiry %v does not parse back: %v %v", e, parsed, err)
		}
	}
}
