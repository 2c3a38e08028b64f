package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/csheth/swapscreen/internal/swap"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Machine swap.Machine
	Logger  *log.Logger
}

// New returns a tea.Model ready to be mounted into a Program. A zero Machine
// falls back to the built-in settings.
func New(config Config) tea.Model {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Machine.Settings().Catalog.Len() == 0 {
		machine, err := swap.NewMachine(swap.DefaultSettings())
		if err != nil {
			config.Logger.Error("default settings rejected", "err", err)
		}
		config.Machine = machine
	}

	amountInput := textinput.New()
	amountInput.Prompt = ""
	amountInput.Placeholder = amountPlaceholder
	amountInput.Width = amountInputWidth

	priceInput := textinput.New()
	priceInput.Prompt = ""
	priceInput.Placeholder = pricePlaceholder
	priceInput.Width = priceInputWidth

	m := &model{
		config:      config,
		machine:     config.Machine,
		state:       config.Machine.Initial(),
		mode:        modeNormal,
		focus:       fieldNone,
		amountInput: amountInput,
		priceInput:  priceInput,
		keys:        newKeyMap(),
		help:        help.New(),
		layout:      newPageLayout(),
		infoMessage: initialInfoMessage,
	}
	m.syncInputs()
	m.refreshKeyAvailability()
	return m
}

type model struct {
	config  Config
	machine swap.Machine
	state   swap.State

	mode         interactionMode
	focus        field
	amountInput  textinput.Model
	priceInput   textinput.Model
	pickerCursor int

	keys        keyMap
	help        help.Model
	layout      pageLayout
	infoMessage string
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmd := m.handleKey(msg)
		m.refreshKeyAvailability()
		return m, cmd
	}
	if input := m.focusedInput(); input != nil {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case m.mode == modeInsert:
		return m.handleInsertKey(msg)
	case m.state.IsOpen(swap.PanelReview):
		return m.handleReviewKey(msg)
	case m.pickerOpen():
		return m.handlePickerKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *model) handleInsertKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Done) {
		m.leaveInsertMode()
		return nil
	}
	input := m.focusedInput()
	if input == nil {
		m.leaveInsertMode()
		return nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	m.applyFieldEdit()
	return cmd
}

func (m *model) handleReviewKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Review):
		m.transition("close-review", m.machine.CloseReview)
		m.infoMessage = "Review closed."
	case key.Matches(msg, m.keys.Details):
		m.transition("toggle-review-details", m.machine.ToggleReviewDetails)
	}
	return nil
}

func (m *model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	side := m.openPickerSide()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.movePickerCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.movePickerCursor(1)
	case key.Matches(msg, m.keys.Select):
		token, ok := m.machine.Settings().Catalog.At(m.pickerCursor)
		if !ok {
			return nil
		}
		m.transition("select-"+side.String()+"-token", func(s swap.State) swap.State {
			return m.machine.SelectToken(s, side, token)
		})
		m.infoMessage = fmt.Sprintf("%s token set to %s.", sideLabel(side), token.Symbol)
	case key.Matches(msg, m.keys.Close):
		m.transition("close-"+side.String()+"-picker", func(s swap.State) swap.State {
			return m.machine.ClosePicker(s, side)
		})
	case key.Matches(msg, m.keys.FromPicker):
		m.togglePicker(swap.SideFrom)
	case key.Matches(msg, m.keys.ToPicker):
		m.togglePicker(swap.SideTo)
	}
	return nil
}

func (m *model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.SwapMode):
		m.setMode(swap.ModeSwap)
	case key.Matches(msg, k.LimitMode):
		m.setMode(swap.ModeLimit)
	case key.Matches(msg, k.FromPicker):
		m.togglePicker(swap.SideFrom)
	case key.Matches(msg, k.ToPicker):
		m.togglePicker(swap.SideTo)
	case key.Matches(msg, k.Flip):
		if m.state.To == nil {
			m.infoMessage = "Pick a token to buy before flipping."
			return nil
		}
		m.transition("swap-direction", m.machine.SwapDirection)
		m.infoMessage = fmt.Sprintf("Selling %s for %s.", m.state.From.Symbol, m.state.To.Symbol)
	case key.Matches(msg, k.EditAmount):
		return m.enterInsertMode(fieldAmount)
	case key.Matches(msg, k.EditPrice):
		return m.enterInsertMode(fieldLimitPrice)
	case key.Matches(msg, k.Market):
		m.transition("reset-limit-price", m.machine.ResetLimitPrice)
		m.infoMessage = fmt.Sprintf("Limit price reset to market (%s).", m.state.LimitPrice)
	case key.Matches(msg, k.PrevExpiry):
		m.cycleExpiry(-1)
	case key.Matches(msg, k.NextExpiry):
		m.cycleExpiry(1)
	case key.Matches(msg, k.Review):
		m.transition("open-review", m.machine.OpenReview)
		m.infoMessage = "Reviewing swap. Press esc to go back."
	case key.Matches(msg, k.Details):
		m.transition("toggle-inline-details", m.machine.ToggleInlineDetails)
	default:
		for _, step := range k.priceSteps() {
			if key.Matches(msg, step.binding) {
				m.adjustLimitPrice(step.percent)
				break
			}
		}
	}
	return nil
}

// transition applies fn to the screen state, keeps the text inputs in step
// and logs the result.
func (m *model) transition(event string, fn func(swap.State) swap.State) {
	m.state = fn(m.state)
	m.syncInputs()
	toSymbol := ""
	if m.state.To != nil {
		toSymbol = m.state.To.Symbol
	}
	m.config.Logger.Debug("transition",
		"event", event,
		"mode", m.state.Mode,
		"from", m.state.From.Symbol,
		"to", toSymbol,
		"fromAmount", m.state.FromAmount,
		"toAmount", m.state.ToAmount,
		"limitPrice", m.state.LimitPrice,
		"panels", fmt.Sprint(m.state.OpenPanels()),
	)
}

func (m *model) setMode(mode swap.Mode) {
	if m.state.Mode == mode {
		return
	}
	m.transition("set-mode", func(s swap.State) swap.State {
		return m.machine.SetMode(s, mode)
	})
	m.infoMessage = fmt.Sprintf("%s mode.", modeTitle(mode))
}

func (m *model) togglePicker(side swap.Side) {
	m.transition("toggle-"+side.String()+"-picker", func(s swap.State) swap.State {
		return m.machine.TogglePicker(s, side)
	})
	if !m.pickerOpen() {
		return
	}
	m.pickerCursor = 0
	if token, ok := m.state.Token(side); ok {
		if idx := m.machine.Settings().Catalog.IndexOf(token.Symbol); idx >= 0 {
			m.pickerCursor = idx
		}
	}
	m.infoMessage = fmt.Sprintf("Choose the token to %s.", sideVerb(side))
}

func (m *model) movePickerCursor(delta int) {
	n := m.machine.Settings().Catalog.Len()
	if n == 0 {
		return
	}
	m.pickerCursor = ((m.pickerCursor+delta)%n + n) % n
}

func (m *model) adjustLimitPrice(percent int) {
	before := m.state.LimitPrice
	m.transition(fmt.Sprintf("adjust-limit-price+%d", percent), func(s swap.State) swap.State {
		return m.machine.AdjustLimitPrice(s, percent)
	})
	if m.state.LimitPrice == before {
		if _, ok := swap.ParseAmount(before); !ok {
			m.infoMessage = "Limit price is not a number; press m for the market price."
			return
		}
	}
	m.infoMessage = fmt.Sprintf("Limit price +%d%% → %s.", percent, m.state.LimitPrice)
}

func (m *model) cycleExpiry(delta int) {
	m.transition("cycle-expiry", func(s swap.State) swap.State {
		return m.machine.CycleExpiry(s, delta)
	})
	m.infoMessage = fmt.Sprintf("Order expires in %s.", m.state.Expiry)
}

func (m *model) enterInsertMode(f field) tea.Cmd {
	m.mode = modeInsert
	m.focus = f
	input := m.focusedInput()
	input.CursorEnd()
	if f == fieldLimitPrice {
		m.infoMessage = "Editing limit price. Enter or Esc to finish."
	} else {
		m.infoMessage = "Editing sell amount. Enter or Esc to finish."
	}
	return input.Focus()
}

func (m *model) leaveInsertMode() {
	if input := m.focusedInput(); input != nil {
		input.Blur()
	}
	m.mode = modeNormal
	m.focus = fieldNone
	m.infoMessage = ""
}

func (m *model) focusedInput() *textinput.Model {
	switch m.focus {
	case fieldAmount:
		return &m.amountInput
	case fieldLimitPrice:
		return &m.priceInput
	default:
		return nil
	}
}

// applyFieldEdit pushes the focused input's text into the state. Every
// keystroke reruns the conversion for the sell amount.
func (m *model) applyFieldEdit() {
	switch m.focus {
	case fieldAmount:
		value := m.amountInput.Value()
		if value == m.state.FromAmount {
			return
		}
		m.transition("set-from-amount", func(s swap.State) swap.State {
			return m.machine.SetFromAmount(s, value)
		})
	case fieldLimitPrice:
		value := m.priceInput.Value()
		if value == m.state.LimitPrice {
			return
		}
		m.transition("set-limit-price", func(s swap.State) swap.State {
			return m.machine.SetLimitPrice(s, value)
		})
	}
}

func (m *model) syncInputs() {
	if m.amountInput.Value() != m.state.FromAmount {
		m.amountInput.SetValue(m.state.FromAmount)
	}
	if m.priceInput.Value() != m.state.LimitPrice {
		m.priceInput.SetValue(m.state.LimitPrice)
	}
}

func (m *model) pickerOpen() bool {
	return m.state.IsOpen(swap.PanelFromPicker) || m.state.IsOpen(swap.PanelToPicker)
}

func (m *model) openPickerSide() swap.Side {
	if m.state.IsOpen(swap.PanelToPicker) {
		return swap.SideTo
	}
	return swap.SideFrom
}

func sideLabel(side swap.Side) string {
	if side == swap.SideTo {
		return "Buy"
	}
	return "Sell"
}

func sideVerb(side swap.Side) string {
	if side == swap.SideTo {
		return "buy"
	}
	return "sell"
}

func modeTitle(mode swap.Mode) string {
	if mode == swap.ModeLimit {
		return "Limit"
	}
	return "Swap"
}
