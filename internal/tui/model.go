package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/cli"
	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
	"github.com/Veraticus/shutter-quote/internal/tui/components"
	"github.com/Veraticus/shutter-quote/internal/tui/themes"
)

// noticeTimeout is how long a status bar notice stays visible.
const noticeTimeout = 4 * time.Second

// Field identifies a form field, in focus order.
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldQuantity
	FieldPanels
	FieldSlats
	FieldOpening
	FieldClosure
	FieldColor
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldWidth:    "Width (cm)",
	FieldHeight:   "Height (cm)",
	FieldQuantity: "Quantity",
	FieldPanels:   "Panels",
	FieldSlats:    "Slats",
	FieldOpening:  "Opening",
	FieldClosure:  "Closure",
	FieldColor:    "Color",
}

func (f Field) isText() bool {
	return f <= FieldQuantity
}

// Model holds the configurator state.
type Model struct {
	theme     themes.Theme
	quoter    Quoter
	lastError error
	inputErr  error
	catalog   *catalog.Catalog
	keymap    KeyMap
	help      help.Model
	notice    string
	config    model.Configuration
	quote     model.Quote
	inputs    [FieldQuantity + 1]textinput.Model
	// selectors are indexed by field - FieldPanels.
	selectors     [fieldCount - FieldPanels]components.SelectorModel
	focus         Field
	noticeSeq     int
	width         int
	height        int
	showBreakdown bool
	showHelp      bool
	quitting      bool
}

// newModel creates a new model with the given configuration. It fails when
// the initial configuration holds a value the form cannot show.
func newModel(cfg Config) (Model, error) {
	m := Model{
		theme:         cfg.Theme,
		quoter:        cfg.Quoter,
		catalog:       cfg.Catalog,
		keymap:        DefaultKeyMap(),
		help:          help.New(),
		width:         cfg.Width,
		height:        cfg.Height,
		showBreakdown: cfg.ShowBreakdown,
		showHelp:      cfg.ShowHelp,
	}

	m.inputs[FieldWidth] = newNumberInput("e.g. 100", 8)
	m.inputs[FieldHeight] = newNumberInput("e.g. 150", 8)
	m.inputs[FieldQuantity] = newNumberInput("1", 4)

	m.selectors[FieldPanels-FieldPanels] = components.NewSelectorModel("panels", panelOptions(), m.theme)
	m.selectors[FieldSlats-FieldPanels] = components.NewSelectorModel("slats", slatOptions(), m.theme)
	m.selectors[FieldOpening-FieldPanels] = components.NewSelectorModel("opening", openingOptions(), m.theme)
	m.selectors[FieldClosure-FieldPanels] = components.NewSelectorModel("closure", closureOptions(), m.theme)
	m.selectors[FieldColor-FieldPanels] = components.NewSelectorModel("color", colorOptions(m.catalog), m.theme)

	if err := m.load(cfg.Initial); err != nil {
		return Model{}, err
	}
	m.focusField(FieldWidth)
	m.recompute()

	return m, nil
}

func newNumberInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	return ti
}

func panelOptions() []components.Option {
	opts := make([]components.Option, 0, model.MaxPanelCount)
	for n := model.MinPanelCount; n <= model.MaxPanelCount; n++ {
		label := fmt.Sprintf("%d panels", n)
		if n == 1 {
			label = "1 panel"
		}
		opts = append(opts, components.Option{Value: strconv.Itoa(n), Label: label})
	}
	return opts
}

func slatOptions() []components.Option {
	opts := make([]components.Option, 0, len(model.SlatTypes))
	for _, s := range model.SlatTypes {
		opts = append(opts, components.Option{Value: s.String(), Label: s.Label()})
	}
	return opts
}

func openingOptions() []components.Option {
	opts := make([]components.Option, 0, len(model.OpeningSides))
	for _, o := range model.OpeningSides {
		opts = append(opts, components.Option{Value: o.String(), Label: o.Label()})
	}
	return opts
}

func closureOptions() []components.Option {
	opts := make([]components.Option, 0, len(model.ClosureTypes))
	for _, c := range model.ClosureTypes {
		opts = append(opts, components.Option{Value: c.String(), Label: c.Label()})
	}
	return opts
}

func colorOptions(cat *catalog.Catalog) []components.Option {
	colors := cat.ListAll()
	opts := make([]components.Option, 0, len(colors))
	for _, c := range colors {
		opts = append(opts, components.Option{
			Value:  c.ID,
			Label:  fmt.Sprintf("%s (%s)", c.DisplayName, cli.FormatPercent(c.PriceIncrement)),
			Swatch: c.Swatch,
		})
	}
	return opts
}

// load copies cfg into the form widgets. Values outside the form's options
// are rejected rather than replaced.
func (m *Model) load(cfg model.Configuration) error {
	if cfg.Quantity < 1 {
		return fmt.Errorf("%w: %d", common.ErrInvalidQuantity, cfg.Quantity)
	}

	selections := []struct {
		err   error
		value string
		field Field
	}{
		{field: FieldPanels, value: strconv.Itoa(cfg.PanelCount), err: common.ErrInvalidPanelCount},
		{field: FieldSlats, value: cfg.SlatType.String(), err: common.ErrInvalidInput},
		{field: FieldOpening, value: cfg.OpeningSide.String(), err: common.ErrInvalidInput},
		{field: FieldClosure, value: cfg.ClosureType.String(), err: common.ErrInvalidInput},
		{field: FieldColor, value: cfg.ColorID, err: common.ErrUnknownColor},
	}
	for _, sel := range selections {
		if !m.selector(sel.field).SetValue(sel.value) {
			return fmt.Errorf("%w: %s %q", sel.err, strings.ToLower(fieldLabels[sel.field]), sel.value)
		}
	}

	m.inputs[FieldWidth].SetValue(formatOptional(cfg.WidthCm))
	m.inputs[FieldHeight].SetValue(formatOptional(cfg.HeightCm))
	m.inputs[FieldQuantity].SetValue(strconv.Itoa(cfg.Quantity))
	return nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func (m *Model) selector(f Field) *components.SelectorModel {
	return &m.selectors[f-FieldPanels]
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.SelectionChangedMsg:
		slog.Debug("Selection changed", "selector", msg.Selector, "value", msg.Value)
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	if m.focus.isText() {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		return m, m.focusField((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keymap.Prev):
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keymap.RequestQuote):
		return m, m.requestQuote()

	case key.Matches(msg, m.keymap.ToggleBreakdown):
		m.showBreakdown = !m.showBreakdown
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		if err := m.load(model.NewConfiguration()); err != nil {
			slog.Warn("Failed to reset configurator", "error", err)
			return m, m.setNotice("Reset failed: " + err.Error())
		}
		m.recompute()
		return m, m.focusField(FieldWidth)

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus.isText() {
		if !acceptsKey(m.focus, msg) {
			return m, nil
		}
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	} else {
		sel := m.selector(m.focus)
		*sel, cmd = sel.Update(msg)
	}

	m.recompute()
	return m, cmd
}

// acceptsKey filters typed characters: dimensions take digits and one
// decimal separator, quantity takes digits only.
func acceptsKey(f Field, msg tea.KeyMsg) bool {
	if msg.Type == tea.KeySpace {
		return false
	}
	if msg.Type != tea.KeyRunes {
		return true
	}
	for _, r := range msg.Runes {
		switch {
		case r >= '0' && r <= '9':
		case (r == '.' || r == ',') && f != FieldQuantity:
		default:
			return false
		}
	}
	return true
}

// focusField moves keyboard focus to f.
func (m *Model) focusField(f Field) tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	for i := range m.selectors {
		m.selectors[i].Blur()
	}

	m.focus = f
	if f.isText() {
		return m.inputs[f].Focus()
	}
	m.selector(f).Focus()
	return nil
}

// recompute rebuilds the configuration from the form and prices it.
func (m *Model) recompute() {
	cfg, err := m.buildConfiguration()
	m.config = cfg
	m.inputErr = err
	m.lastError = nil

	if err != nil {
		m.quote = model.Unavailable()
		return
	}

	if m.quoter == nil {
		m.quote = model.Unavailable()
		return
	}

	quote, err := m.quoter.Quote(cfg)
	if err != nil {
		m.quote = model.Unavailable()
		m.lastError = err
		return
	}
	m.quote = quote
}

var (
	errWidthNotNumber  = errors.New("width must be a number")
	errHeightNotNumber = errors.New("height must be a number")
	errQuantityMissing = errors.New("quantity must be a whole number of at least 1")
)

// buildConfiguration reads the widgets into a fresh configuration snapshot.
func (m Model) buildConfiguration() (model.Configuration, error) {
	cfg := model.NewConfiguration()

	width, err := parseDimension(m.inputs[FieldWidth].Value())
	if err != nil {
		return m.config.WithWidth(nil), errWidthNotNumber
	}
	height, err := parseDimension(m.inputs[FieldHeight].Value())
	if err != nil {
		return m.config.WithHeight(nil), errHeightNotNumber
	}
	cfg = cfg.WithWidth(width).WithHeight(height)

	quantity, err := strconv.Atoi(strings.TrimSpace(m.inputs[FieldQuantity].Value()))
	if err != nil || quantity < 1 {
		return cfg.WithQuantity(m.config.Quantity), errQuantityMissing
	}
	cfg = cfg.WithQuantity(quantity)

	panels, err := strconv.Atoi(m.selector(FieldPanels).Value())
	if err != nil {
		panels = model.MinPanelCount
	}
	cfg = cfg.WithPanelCount(panels).
		WithSlatType(model.SlatType(m.selector(FieldSlats).Value())).
		WithOpeningSide(model.OpeningSide(m.selector(FieldOpening).Value())).
		WithClosureType(model.ClosureType(m.selector(FieldClosure).Value())).
		WithColor(m.selector(FieldColor).Value())

	return cfg, nil
}

// parseDimension accepts "120", "120.5" and "120,5". Empty input is unset.
func parseDimension(s string) (*float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// requestQuote handles the "request quote" action. Submission is not wired to
// any backend; the user only gets a notice.
func (m *Model) requestQuote() tea.Cmd {
	if !m.quote.Available {
		return m.setNotice("Enter width and height before requesting a quote")
	}
	return m.setNotice(fmt.Sprintf("Quote submission is not available yet (total %s)", cli.FormatQuote(m.quote)))
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	return clearNoticeAfter(noticeTimeout, m.noticeSeq)
}

// Configuration returns the current configuration snapshot.
func (m Model) Configuration() model.Configuration {
	return m.config.Clone()
}

// Quote returns the quote for the current configuration.
func (m Model) Quote() model.Quote {
	return m.quote
}

// Err returns the hard error from the last recomputation, if any.
func (m Model) Err() error {
	return m.lastError
}
