package swap

import "github.com/csheth/swapscreen/internal/catalog"

// State is the complete, ephemeral screen record. It is a plain value:
// transitions on Machine return a new State and leave their input intact.
type State struct {
	Mode       Mode
	From       catalog.Token
	To         *catalog.Token
	FromAmount string
	ToAmount   string
	LimitPrice string
	Expiry     Expiry

	panels Panel
}

func (s State) IsOpen(p Panel) bool {
	return s.panels&p != 0
}

// OpenPanels lists the flags currently open, lowest bit first.
func (s State) OpenPanels() []Panel {
	var open []Panel
	for p := PanelFromPicker; p <= PanelInlineDetails; p <<= 1 {
		if s.IsOpen(p) {
			open = append(open, p)
		}
	}
	return open
}

// Token returns the token bound to side.
func (s State) Token(side Side) (catalog.Token, bool) {
	if side == SideFrom {
		return s.From, true
	}
	if s.To == nil {
		return catalog.Token{}, false
	}
	return *s.To, true
}

func (s State) withPanel(p Panel, open bool) State {
	if open {
		s.panels |= p
	} else {
		s.panels &^= p
	}
	return s
}

func (s State) withTo(token *catalog.Token) State {
	if token == nil {
		s.To = nil
		return s
	}
	bound := *token
	s.To = &bound
	return s
}
