package swap

import (
	"fmt"
	"strings"
)

type Mode int

const (
	ModeSwap Mode = iota
	ModeLimit
)

func (m Mode) String() string {
	switch m {
	case ModeLimit:
		return "limit"
	default:
		return "swap"
	}
}

// ParseMode accepts "swap" or "limit", case-insensitively.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "swap":
		return ModeSwap, nil
	case "limit":
		return ModeLimit, nil
	default:
		return ModeSwap, fmt.Errorf("unknown mode %q", value)
	}
}

// Expiry is the duration tag attached to a limit order.
type Expiry int

const (
	ExpiryDay Expiry = iota
	ExpiryWeek
	ExpiryMonth
	ExpiryYear
)

var expiryLabels = []string{"1 day", "1 week", "1 month", "1 year"}

// Expiries lists every expiry in chip order.
func Expiries() []Expiry {
	return []Expiry{ExpiryDay, ExpiryWeek, ExpiryMonth, ExpiryYear}
}

func (e Expiry) Valid() bool {
	return e >= ExpiryDay && e <= ExpiryYear
}

func (e Expiry) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Expiry(%d)", int(e))
	}
	return expiryLabels[e]
}

// ParseExpiry maps a chip label such as "1 week" back to its value.
func ParseExpiry(value string) (Expiry, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(value), " "))
	for idx, label := range expiryLabels {
		if label == normalized {
			return Expiry(idx), nil
		}
	}
	return ExpiryWeek, fmt.Errorf("unknown expiry %q", value)
}

// Side selects the sell ("from") or buy ("to") half of the screen.
type Side int

const (
	SideFrom Side = iota
	SideTo
)

func (s Side) String() string {
	if s == SideTo {
		return "to"
	}
	return "from"
}

// Picker is the panel holding this side's token list.
func (s Side) Picker() Panel {
	if s == SideTo {
		return PanelToPicker
	}
	return PanelFromPicker
}

// Panel is a visibility flag. Each flag is closed until opened.
type Panel uint8

const (
	PanelFromPicker Panel = 1 << iota
	PanelToPicker
	PanelReview
	PanelReviewDetails
	PanelInlineDetails
)

func (p Panel) String() string {
	switch p {
	case PanelFromPicker:
		return "from-picker"
	case PanelToPicker:
		return "to-picker"
	case PanelReview:
		return "review"
	case PanelReviewDetails:
		return "review-details"
	case PanelInlineDetails:
		return "inline-details"
	default:
		return fmt.Sprintf("Panel(%d)", uint8(p))
	}
}
