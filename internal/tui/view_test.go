package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func assertContains(t *testing.T, view string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func assertMissing(t *testing.T, view string, unwanted ...string) {
	t.Helper()
	for _, text := range unwanted {
		if strings.Contains(view, text) {
			t.Fatalf("view should not contain %q:\n%s", text, view)
		}
	}
}

func TestSwapView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assertContains(t, view, "Swap", "Limit", "Sell", "Buy", "4.45489", "$4.45", "$4.44", "Review", "1 USDT = 0.000224472 ETH ($1.00)")
	assertMissing(t, view, "Order routing", "Confirm", pickerTitle)
}

func TestSwapViewInlineDetails(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("d"))
	assertContains(t, m.View(), "Fee (0.25%)", "Network cost", "$0.28", "Uniswap API", "-0.05%", "Auto 5.5%")
}

func TestSwapViewWithoutBuyToken(t *testing.T) {
	m := newTestModel(t)
	m.state.To = nil
	m.state.ToAmount = ""
	assertContains(t, m.View(), selectTokenLabel)
}

func TestPickerView(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("t"))
	assertContains(t, m.View(), pickerTitle, "Ethereum", "Polygon", "USD Coin", "Tether", "Dai", "▸")
}

func TestLimitView(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("l"))
	view := m.View()
	assertContains(t, view, "ETH is worth", "Market", "+1%", "+5%", "+10%", "Balance:", "Max", "1 day", "1 week", "1 month", "1 year", "Expiry", "Confirm")
	assertMissing(t, view, "Review", "$4.44")
}

func TestReviewView(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("r"))
	view := m.View()
	assertContains(t, view, reviewTitle, "0.001 ETH", "4.45489 USDC", "$4.47", "Show more", "Swap")
	assertMissing(t, view, "$0.52")

	press(t, m, runes("d"))
	assertContains(t, m.View(), "Show less", "Network cost", "$0.52")
}

func TestReviewViewCentersInWindow(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	press(t, m, runes("r"))
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Fatalf("placed review should fill the window height, got %d lines", len(lines))
	}
}

func TestFooterHelp(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assertContains(t, view, "SWAP", "NORMAL", "ETH → USDC", initialInfoMessage, "quit")

	press(t, m, runes("?"))
	assertContains(t, m.View(), "Keys", "flip direction", "details")

	press(t, m, runes("i"))
	assertContains(t, m.View(), "INSERT", "done")
}

func TestStatusBarShowsLimitOrder(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runes("l"))
	assertContains(t, m.statusBarView(), "LIMIT", "@ 4471.36", "1 week")
}
