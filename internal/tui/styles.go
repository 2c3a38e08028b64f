package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor    = lipgloss.Color("#ff37c7")
	surfaceColor   = lipgloss.Color("#1b1b1b")
	borderColor    = lipgloss.Color("#3a3a3a")
	mutedColor     = lipgloss.Color("244")
	textColor      = lipgloss.Color("#f5f5f5")
	disabledColor  = lipgloss.Color("#5c5c5c")
	activeTabColor = lipgloss.Color("#2d2d2d")

	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9ee5")).Italic(true)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)

	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 2)
	focusCardStyle = cardStyle.Copy().BorderForeground(accentColor)
	buyCardStyle   = cardStyle.Copy().BorderForeground(lipgloss.Color("#2a2a2a"))
	pickerStyle    = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(accentColor).Padding(0, 1)
	dialogStyle    = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accentColor).Padding(1, 3)

	labelStyle       = lipgloss.NewStyle().Foreground(mutedColor).Bold(true)
	amountStyle      = lipgloss.NewStyle().Foreground(textColor).Bold(true)
	bigAmountStyle   = amountStyle.Copy().Underline(true)
	placeholderStyle = lipgloss.NewStyle().Foreground(disabledColor)

	tabStyle       = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().Foreground(textColor).Background(activeTabColor).Bold(true).Padding(0, 2)

	selectorStyle       = lipgloss.NewStyle().Foreground(textColor).Background(activeTabColor).Bold(true).Padding(0, 1)
	selectorPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(accentColor).Bold(true).Padding(0, 1)
	chipStyle           = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	activeChipStyle     = lipgloss.NewStyle().Foreground(textColor).Background(activeTabColor).Padding(0, 1)

	primaryButtonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(accentColor).Bold(true).Align(lipgloss.Center)
	disabledButtonStyle = lipgloss.NewStyle().Foreground(disabledColor).Background(surfaceColor).Bold(true).Align(lipgloss.Center)
	directionStyle      = lipgloss.NewStyle().Foreground(textColor).Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)

	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	detailLabelStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	detailValueStyle  = lipgloss.NewStyle().Foreground(textColor)

	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)

	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3d0a2f"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"╔═╗ ╦ ╦ ╔═╗ ╔═╗",
		"╚═╗ ║║║ ╠═╣ ╠═╝",
		"╚═╝ ╚╩╝ ╩ ╩ ╩  ",
	}
)

// badgeStyle paints a token glyph on the token's configured color.
func badgeStyle(color string) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Padding(0, 1)
	if color != "" {
		style = style.Background(lipgloss.Color(color))
	}
	return style
}
