package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/csheth/swapscreen/internal/swap"
)

type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	SwapMode   key.Binding
	LimitMode  key.Binding
	FromPicker key.Binding
	ToPicker   key.Binding
	Flip       key.Binding
	EditAmount key.Binding
	EditPrice  key.Binding
	Market     key.Binding
	Plus1      key.Binding
	Plus5      key.Binding
	Plus10     key.Binding
	PrevExpiry key.Binding
	NextExpiry key.Binding
	Review     key.Binding
	Details    key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Close      key.Binding
	Done       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		SwapMode:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap mode")),
		LimitMode:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "limit mode")),
		FromPicker: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "sell token")),
		ToPicker:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "buy token")),
		Flip:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "flip direction")),
		EditAmount: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit amount")),
		EditPrice:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "edit limit price")),
		Market:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "market price")),
		Plus1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "+1%")),
		Plus5:      key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "+5%")),
		Plus10:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "+10%")),
		PrevExpiry: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev expiry")),
		NextExpiry: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next expiry")),
		Review:     key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "review")),
		Details:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Done:       key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
	}
}

type priceStep struct {
	binding key.Binding
	percent int
}

func (k keyMap) priceSteps() []priceStep {
	return []priceStep{
		{k.Plus1, swap.PriceSteps[0]},
		{k.Plus5, swap.PriceSteps[1]},
		{k.Plus10, swap.PriceSteps[2]},
	}
}

// bindingSet is a help.KeyMap assembled for the current context.
type bindingSet struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindingSet) ShortHelp() []key.Binding  { return b.short }
func (b bindingSet) FullHelp() [][]key.Binding { return b.full }

func (m *model) contextKeys() bindingSet {
	k := m.keys
	switch {
	case m.mode == modeInsert:
		return bindingSet{short: []key.Binding{k.Done}, full: [][]key.Binding{{k.Done}}}
	case m.state.IsOpen(swap.PanelReview):
		set := []key.Binding{k.Close, k.Review, k.Details, k.Quit}
		return bindingSet{short: set, full: [][]key.Binding{set}}
	case m.pickerOpen():
		set := []key.Binding{k.Up, k.Down, k.Select, k.Close, k.FromPicker, k.ToPicker}
		return bindingSet{short: set, full: [][]key.Binding{set}}
	}
	short := []key.Binding{k.EditAmount, k.FromPicker, k.ToPicker, k.Flip}
	if m.state.Mode == swap.ModeSwap {
		short = append(short, k.Review)
	} else {
		short = append(short, k.EditPrice)
	}
	short = append(short, k.Help, k.Quit)
	full := [][]key.Binding{
		{k.SwapMode, k.LimitMode, k.Help, k.Quit},
		{k.EditAmount, k.FromPicker, k.ToPicker, k.Flip},
	}
	if m.state.Mode == swap.ModeSwap {
		full = append(full, []key.Binding{k.Review, k.Details})
	} else {
		full = append(full,
			[]key.Binding{k.EditPrice, k.Market, k.Plus1, k.Plus5, k.Plus10},
			[]key.Binding{k.PrevExpiry, k.NextExpiry},
		)
	}
	return bindingSet{short: short, full: full}
}

// refreshKeyAvailability disables bindings that do nothing in the current
// mode so key.Matches ignores them and help hides them.
func (m *model) refreshKeyAvailability() {
	limit := m.state.Mode == swap.ModeLimit
	m.keys.EditPrice.SetEnabled(limit)
	m.keys.Market.SetEnabled(limit)
	m.keys.Plus1.SetEnabled(limit)
	m.keys.Plus5.SetEnabled(limit)
	m.keys.Plus10.SetEnabled(limit)
	m.keys.PrevExpiry.SetEnabled(limit)
	m.keys.NextExpiry.SetEnabled(limit)
	m.keys.Review.SetEnabled(!limit || m.state.IsOpen(swap.PanelReview))
	m.keys.Details.SetEnabled(!limit || m.state.IsOpen(swap.PanelReview))
}
