package tui

const heroTagline = "Preview a token swap. Every figure on this screen is illustrative."

const (
	minCardWidth          = 40
	maxCardWidth          = 60
	cardHorizontalPadding = 4
	amountInputWidth      = 24
	priceInputWidth       = 16
	pickerNameWidth       = 16
)

type interactionMode int

const (
	modeNormal interactionMode = iota
	modeInsert
)

func (m interactionMode) String() string {
	if m == modeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// field names the text input that receives keystrokes in insert mode.
type field int

const (
	fieldNone field = iota
	fieldAmount
	fieldLimitPrice
)

const (
	amountPlaceholder  = "0"
	pricePlaceholder   = "0"
	selectTokenLabel   = "Select token"
	pickerTitle        = "Select a token"
	reviewTitle        = "You're swapping"
	directionGlyph     = "⇅"
	chevronDown        = "▾"
	chevronUp          = "▴"
	initialInfoMessage = "Press i to type an amount, f or t to pick tokens, ? for help."
)
