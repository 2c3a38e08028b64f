package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type pageLayout struct {
	windowWidth  int
	windowHeight int
	cardWidth    int
	innerWidth   int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.setCardWidth(maxCardWidth)
	return l
}

// Update recomputes widths after a terminal resize. Cards never grow past
// maxCardWidth and never shrink below minCardWidth.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	cw := width - cardHorizontalPadding
	if cw > maxCardWidth {
		cw = maxCardWidth
	}
	if cw < minCardWidth {
		cw = minCardWidth
	}
	l.setCardWidth(cw)
}

func (l *pageLayout) setCardWidth(width int) {
	l.cardWidth = width
	// border (2) + horizontal padding (4)
	l.innerWidth = width - 6
}

// place centers content in the window once its size is known.
func (l pageLayout) place(content string) string {
	if l.windowWidth <= 0 || l.windowHeight <= 0 {
		return content
	}
	return lipgloss.Place(l.windowWidth, l.windowHeight, lipgloss.Center, lipgloss.Center, content)
}

// spread puts left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n")
}
