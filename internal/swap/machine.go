package swap

import "github.com/csheth/swapscreen/internal/catalog"

// Machine holds the injected settings and implements every screen transition
// as a function from State to State.
type Machine struct {
	settings Settings
}

func NewMachine(settings Settings) (Machine, error) {
	if err := settings.Validate(); err != nil {
		return Machine{}, err
	}
	return Machine{settings: settings}, nil
}

func (m Machine) Settings() Settings {
	return m.settings
}

// Initial builds the state of a freshly mounted screen: the first catalog
// entry on the sell side and every panel closed.
func (m Machine) Initial() State {
	d := m.settings.Defaults
	s := State{
		Mode:       d.Mode,
		From:       m.settings.Catalog.First(),
		FromAmount: d.FromAmount,
		ToAmount:   d.ToAmount,
		LimitPrice: d.LimitPrice,
		Expiry:     d.Expiry,
	}
	if token, ok := m.settings.Catalog.Lookup(d.ToSymbol); ok {
		s = s.withTo(&token)
	}
	return s
}

func (m Machine) SetMode(s State, mode Mode) State {
	s.Mode = mode
	return s
}

// TogglePicker flips the picker of side. Opening it closes the opposite
// picker so at most one catalog list is visible.
func (m Machine) TogglePicker(s State, side Side) State {
	own := side.Picker()
	if s.IsOpen(own) {
		return s.withPanel(own, false)
	}
	s = s.withPanel(PanelFromPicker|PanelToPicker, false)
	return s.withPanel(own, true)
}

func (m Machine) ClosePicker(s State, side Side) State {
	return s.withPanel(side.Picker(), false)
}

// SelectToken binds token to side and closes that side's picker. The same
// token may end up on both sides.
func (m Machine) SelectToken(s State, side Side, token catalog.Token) State {
	if side == SideFrom {
		s.From = token
	} else {
		s = s.withTo(&token)
	}
	return m.ClosePicker(s, side)
}

// SetFromAmount stores text verbatim and recomputes the "to" amount.
func (m Machine) SetFromAmount(s State, text string) State {
	s.FromAmount = text
	s.ToAmount = Convert(text, s.From, s.To, m.settings.Rates)
	return s
}

// SwapDirection transposes the token and amount pairs when a "to" token is
// bound. Amounts are exchanged as-is without rerunning the conversion.
func (m Machine) SwapDirection(s State) State {
	if s.To == nil {
		return s
	}
	from := s.From
	s.From = *s.To
	s = s.withTo(&from)
	s.FromAmount, s.ToAmount = s.ToAmount, s.FromAmount
	return s
}

func (m Machine) SetLimitPrice(s State, text string) State {
	s.LimitPrice = text
	return s
}

// AdjustLimitPrice applies a percentage step; unparsable prices are left alone.
func (m Machine) AdjustLimitPrice(s State, percent int) State {
	s.LimitPrice, _ = AdjustPrice(s.LimitPrice, percent)
	return s
}

func (m Machine) ResetLimitPrice(s State) State {
	s.LimitPrice = m.settings.MarketPrice
	return s
}

func (m Machine) SetExpiry(s State, e Expiry) State {
	if e.Valid() {
		s.Expiry = e
	}
	return s
}

// CycleExpiry moves through the expiry chips, wrapping at both ends.
func (m Machine) CycleExpiry(s State, delta int) State {
	n := len(expiryLabels)
	next := (int(s.Expiry) + delta) % n
	if next < 0 {
		next += n
	}
	s.Expiry = Expiry(next)
	return s
}

// OpenReview shows the review dialog. Only the swap layout offers it.
func (m Machine) OpenReview(s State) State {
	if s.Mode != ModeSwap {
		return s
	}
	return s.withPanel(PanelReview, true)
}

func (m Machine) CloseReview(s State) State {
	return s.withPanel(PanelReview, false)
}

func (m Machine) ToggleReview(s State) State {
	if s.IsOpen(PanelReview) {
		return m.CloseReview(s)
	}
	return m.OpenReview(s)
}

// ToggleReviewDetails is independent of the dialog itself, so the expanded
// breakdown survives closing and reopening it.
func (m Machine) ToggleReviewDetails(s State) State {
	return s.withPanel(PanelReviewDetails, !s.IsOpen(PanelReviewDetails))
}

func (m Machine) ToggleInlineDetails(s State) State {
	return s.withPanel(PanelInlineDetails, !s.IsOpen(PanelInlineDetails))
}
