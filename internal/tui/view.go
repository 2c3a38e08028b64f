package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/swapscreen/internal/catalog"
	"github.com/csheth/swapscreen/internal/swap"
)

func (m *model) View() string {
	if m.state.IsOpen(swap.PanelReview) {
		return m.layout.place(joinNonEmpty([]string{m.reviewView(), m.footerView()}))
	}
	body := m.swapView()
	if m.state.Mode == swap.ModeLimit {
		body = m.limitView()
	}
	return joinNonEmpty([]string{m.heroView(), m.tabsView(), body, m.footerView()})
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderWordmark(),
		taglineStyle.Render(wordwrap.String(heroTagline, m.layout.cardWidth)),
	)
}

func (m *model) tabsView() string {
	tabs := []struct {
		label  string
		active bool
	}{
		{"Swap", m.state.Mode == swap.ModeSwap},
		{"Limit", m.state.Mode == swap.ModeLimit},
		{"Buy", false},
		{"Sell", false},
	}
	cells := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.active {
			cells = append(cells, activeTabStyle.Render(tab.label))
			continue
		}
		cells = append(cells, tabStyle.Render(tab.label))
	}
	return spread(lipgloss.JoinHorizontal(lipgloss.Top, cells...), helperStyle.Render("⚙"), m.layout.cardWidth)
}

func (m *model) swapView() string {
	return joinNonEmpty([]string{
		m.sellCard(),
		m.pickerView(swap.SideFrom),
		m.directionView(),
		m.buyCard(),
		m.pickerView(swap.SideTo),
		m.buttonView("Review", true),
		m.inlineDetailsView(),
	})
}

func (m *model) limitView() string {
	return joinNonEmpty([]string{
		m.limitPriceCard(),
		m.sellCard(),
		m.pickerView(swap.SideFrom),
		m.directionView(),
		m.buyCard(),
		m.pickerView(swap.SideTo),
		m.expiryView(),
		m.buttonView("Confirm", false),
	})
}

func (m *model) cardFor(f field) lipgloss.Style {
	if m.mode == modeInsert && m.focus == f {
		return focusCardStyle.Copy().Width(m.layout.cardWidth - 2)
	}
	return cardStyle.Copy().Width(m.layout.cardWidth - 2)
}

func (m *model) sellCard() string {
	w := m.layout.innerWidth
	from := m.state.From
	var header string
	if m.state.Mode == swap.ModeLimit {
		balance := helperStyle.Render("Balance: "+from.Balance) + " " + chipStyle.Render("Max")
		header = spread(labelStyle.Render("Sell"), balance, w)
	} else {
		header = spread(labelStyle.Render("Sell"), helperStyle.Render(from.Balance+" "+from.Symbol), w)
	}
	lines := []string{
		header,
		spread(m.amountInput.View(), m.selectorButton(swap.SideFrom), w),
	}
	if m.state.Mode == swap.ModeSwap {
		lines = append(lines, helperStyle.Render(m.figures().SellUSD))
	}
	return m.cardFor(fieldAmount).Render(strings.Join(lines, "\n"))
}

func (m *model) buyCard() string {
	w := m.layout.innerWidth
	header := labelStyle.Render("Buy")
	if m.state.To != nil {
		header = spread(header, helperStyle.Render(m.state.To.Balance+" "+m.state.To.Symbol), w)
	}
	amount := placeholderStyle.Render(amountPlaceholder)
	if m.state.ToAmount != "" {
		amount = amountStyle.Render(m.state.ToAmount)
	}
	lines := []string{header, spread(amount, m.selectorButton(swap.SideTo), w)}
	if m.state.Mode == swap.ModeSwap && m.state.To != nil {
		lines = append(lines, helperStyle.Render(m.figures().BuyUSD))
	}
	return buyCardStyle.Copy().Width(m.layout.cardWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m *model) limitPriceCard() string {
	w := m.layout.innerWidth
	from := m.state.From
	prompt := lipgloss.JoinHorizontal(lipgloss.Top,
		helperStyle.Render("When 1 "),
		tokenBadge(from),
		helperStyle.Render(" "+from.Symbol+" is worth"),
	)
	quote := ""
	if m.state.To != nil {
		quote = lipgloss.JoinHorizontal(lipgloss.Top, tokenBadge(*m.state.To), " ", amountStyle.Render(m.state.To.Symbol))
	}
	chips := []string{activeChipStyle.Render("Market")}
	for _, percent := range swap.PriceSteps {
		chips = append(chips, chipStyle.Render(fmt.Sprintf("+%d%%", percent)))
	}
	lines := []string{
		spread(prompt, helperStyle.Render(directionGlyph), w),
		spread(m.priceInput.View(), quote, w),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	}
	return m.cardFor(fieldLimitPrice).Render(strings.Join(lines, "\n"))
}

func (m *model) expiryView() string {
	chips := []string{labelStyle.Render("Expiry ")}
	for _, expiry := range swap.Expiries() {
		if expiry == m.state.Expiry {
			chips = append(chips, activeChipStyle.Render(expiry.String()))
			continue
		}
		chips = append(chips, chipStyle.Render(expiry.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *model) selectorButton(side swap.Side) string {
	chevron := chevronDown
	if m.state.IsOpen(side.Picker()) {
		chevron = chevronUp
	}
	token, ok := m.state.Token(side)
	if !ok {
		return selectorPromptStyle.Render(selectTokenLabel + " " + chevron)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tokenBadge(token), selectorStyle.Render(token.Symbol+" "+chevron))
}

func (m *model) pickerView(side swap.Side) string {
	if !m.state.IsOpen(side.Picker()) {
		return ""
	}
	rows := []string{sectionHeaderStyle.Render(pickerTitle)}
	for idx, token := range m.machine.Settings().Catalog.Tokens() {
		name := truncate.StringWithTail(token.Name, pickerNameWidth, "…")
		left := lipgloss.JoinHorizontal(lipgloss.Top,
			tokenBadge(token),
			" ",
			amountStyle.Render(fmt.Sprintf("%-5s", token.Symbol)),
			" ",
			helperStyle.Render(name),
		)
		row := spread(left, helperStyle.Render(token.Balance), m.layout.innerWidth)
		if idx == m.pickerCursor {
			rows = append(rows, "▸ "+pickerCursorStyle.Render(row))
			continue
		}
		rows = append(rows, "  "+row)
	}
	return pickerStyle.Copy().Width(m.layout.cardWidth - 2).Render(strings.Join(rows, "\n"))
}

func (m *model) directionView() string {
	return lipgloss.PlaceHorizontal(m.layout.cardWidth, lipgloss.Center, directionStyle.Render(directionGlyph))
}

func (m *model) buttonView(label string, enabled bool) string {
	if enabled {
		return primaryButtonStyle.Copy().Width(m.layout.cardWidth).Render(label)
	}
	return disabledButtonStyle.Copy().Width(m.layout.cardWidth).Render(label)
}

func (m *model) inlineDetailsView() string {
	fig := m.figures()
	open := m.state.IsOpen(swap.PanelInlineDetails)
	chevron := chevronDown
	if open {
		chevron = chevronUp
	}
	width := m.layout.cardWidth
	lines := []string{spread(helperStyle.Render(fig.RateLine), helperStyle.Render(chevron), width)}
	if open {
		lines = append(lines,
			detailRow(fig.FeeLabel+" ⓘ", fig.Fee, width),
			detailRow("Network cost", fig.InlineNetworkCost, width),
			detailRow("Order routing", fig.Routing, width),
			detailRow("Price impact", fig.PriceImpact, width),
			detailRow("Max slippage", fig.MaxSlippage, width),
		)
	}
	return strings.Join(lines, "\n")
}

func (m *model) reviewView() string {
	fig := m.figures()
	s := m.state
	w := m.layout.cardWidth - 8
	center := func(text string) string {
		return lipgloss.PlaceHorizontal(w, lipgloss.Center, text)
	}

	toLine := bigAmountStyle.Render(s.ToAmount)
	toBadge := ""
	if s.To != nil {
		toLine = bigAmountStyle.Render(strings.TrimSpace(s.ToAmount + " " + s.To.Symbol))
		toBadge = tokenBadge(*s.To)
	}
	lines := []string{
		spread(amountStyle.Render(reviewTitle), helperStyle.Render("esc ✕"), w),
		"",
		spread(bigAmountStyle.Render(s.FromAmount+" "+s.From.Symbol), tokenBadge(s.From), w),
		helperStyle.Render(fig.ReviewFromUSD),
		center(helperStyle.Render("↓")),
		spread(toLine, toBadge, w),
		helperStyle.Render(fig.ReviewToUSD),
		helperStyle.Render(strings.Repeat("─", w)),
	}
	more := "Show more " + chevronDown
	if s.IsOpen(swap.PanelReviewDetails) {
		more = "Show less " + chevronUp
	}
	lines = append(lines, center(helperStyle.Render(more)))
	if s.IsOpen(swap.PanelReviewDetails) {
		lines = append(lines,
			detailRow(fig.FeeLabel, fig.Fee, w),
			detailRow("Network cost", fig.ReviewNetworkCost, w),
		)
	}
	lines = append(lines, "", primaryButtonStyle.Copy().Width(w).Render("Swap"))
	return dialogStyle.Copy().Width(m.layout.cardWidth - 2).Render(strings.Join(lines, "\n"))
}

func (m *model) footerView() string {
	parts := []string{m.statusBarView(), helperStyle.Render(m.infoMessage)}
	if m.help.ShowAll {
		parts = append(parts, m.keyLegendView())
	} else {
		parts = append(parts, m.help.View(m.contextKeys()))
	}
	return joinNonEmpty(parts)
}

func (m *model) statusBarView() string {
	pair := m.state.From.Symbol + " → ?"
	if m.state.To != nil {
		pair = m.state.From.Symbol + " → " + m.state.To.Symbol
	}
	stats := []string{
		strings.ToUpper(m.state.Mode.String()),
		m.mode.String(),
		pair,
	}
	if m.state.Mode == swap.ModeLimit {
		stats = append(stats, "@ "+m.state.LimitPrice, m.state.Expiry.String())
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

// keyLegendView lays the full help out as a cheatsheet, one group per row.
func (m *model) keyLegendView() string {
	rows := []string{sectionHeaderStyle.Render("Keys")}
	for _, group := range m.contextKeys().FullHelp() {
		var cells []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			cells = append(cells, legendCell(binding))
		}
		if len(cells) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func legendCell(binding key.Binding) string {
	h := binding.Help()
	return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(h.Key), keyDescStyle.Render(" "+h.Desc+" "))
}

func (m *model) figures() swap.Figures {
	return m.machine.Settings().Figures
}

func detailRow(label, value string, width int) string {
	return spread(detailLabelStyle.Render(label), detailValueStyle.Render(value), width)
}

func tokenBadge(token catalog.Token) string {
	if token.Icon == "" {
		return ""
	}
	return badgeStyle(token.Color).Render(token.Icon)
}

// renderWordmark draws the logo with a one-cell drop shadow to the lower
// right. Face cells win over shadow cells.
func renderWordmark() string {
	width, height := 0, len(logoArtLines)+1
	for _, line := range logoArtLines {
		if n := len([]rune(line)); n+1 > width {
			width = n + 1
		}
	}
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
	}
	paint := func(dx, dy int, style lipgloss.Style) {
		for y, line := range logoArtLines {
			for x, r := range []rune(line) {
				if r == ' ' {
					continue
				}
				grid[y+dy][x+dx] = style.Render(string(r))
			}
		}
	}
	paint(1, 1, logoShadowStyle)
	paint(0, 0, logoFaceStyle)

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, cell := range row {
			if cell == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(cell)
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
