// Package components holds reusable bubbletea widgets for the configurator.
package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/shutter-quote/internal/tui/themes"
)

// Option is one choice of a selector.
type Option struct {
	Value string
	Label string
	// Swatch is an optional hex color shown before the label.
	Swatch string
}

// SelectorModel cycles through a fixed list of options.
type SelectorModel struct {
	theme   themes.Theme
	name    string
	options []Option
	cursor  int
	focused bool
}

// NewSelectorModel creates a selector positioned on the first option.
func NewSelectorModel(name string, options []Option, theme themes.Theme) SelectorModel {
	return SelectorModel{
		name:    name,
		options: options,
		theme:   theme,
	}
}

// Update handles left/right cycling and 1-9 quick selection while focused.
func (m SelectorModel) Update(msg tea.Msg) (SelectorModel, tea.Cmd) {
	if !m.focused || len(m.options) == 0 {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	prev := m.cursor
	n := len(m.options)

	switch keyMsg.String() {
	case "l", "right", " ", "space":
		m.cursor = (m.cursor + 1) % n
	case "h", "left":
		m.cursor = (m.cursor + n - 1) % n
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = n - 1
	default:
		if idx, err := strconv.Atoi(keyMsg.String()); err == nil && idx >= 1 && idx <= n {
			m.cursor = idx - 1
		}
	}

	if m.cursor == prev {
		return m, nil
	}

	changed := SelectionChangedMsg{Selector: m.name, Value: m.Value()}
	return m, func() tea.Msg { return changed }
}

// Focus gives the selector keyboard focus.
func (m *SelectorModel) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *SelectorModel) Blur() {
	m.focused = false
}

// Focused reports whether the selector has focus.
func (m SelectorModel) Focused() bool {
	return m.focused
}

// Name returns the selector name.
func (m SelectorModel) Name() string {
	return m.name
}

// Value returns the value of the current option.
func (m SelectorModel) Value() string {
	if len(m.options) == 0 {
		return ""
	}
	return m.options[m.cursor].Value
}

// Selected returns the current option.
func (m SelectorModel) Selected() Option {
	if len(m.options) == 0 {
		return Option{}
	}
	return m.options[m.cursor]
}

// SetValue moves the cursor to the option with value v. It returns false and
// leaves the cursor alone when v is not an option.
func (m *SelectorModel) SetValue(v string) bool {
	for i, opt := range m.options {
		if opt.Value == v {
			m.cursor = i
			return true
		}
	}
	return false
}

// View renders the current option between arrows; focused selectors are highlighted.
func (m SelectorModel) View() string {
	opt := m.Selected()

	label := opt.Label
	if opt.Swatch != "" {
		label = lipgloss.NewStyle().Background(lipgloss.Color(opt.Swatch)).Render("  ") + " " + label
	}

	if !m.focused {
		return "  " + label
	}

	position := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(fmt.Sprintf(" (%d/%d)", m.cursor+1, len(m.options)))

	return m.theme.Selected.Render("‹ "+label+" ›") + position
}

// Labels returns every option label, for help text and tests.
func (m SelectorModel) Labels() string {
	labels := make([]string, 0, len(m.options))
	for _, opt := range m.options {
		labels = append(labels, opt.Label)
	}
	return strings.Join(labels, ", ")
}
