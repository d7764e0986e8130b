package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/shutter-quote/internal/cli"
	"github.com/Veraticus/shutter-quote/internal/model"
)

// wideLayoutMin is the terminal width from which form and summary sit side by side.
const wideLayoutMin = 96

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Aluminum Shutter Configurator"),
		m.theme.Subtitle.Render("The total updates as you type"),
	)
	form := m.renderForm()
	summary := m.renderSummary()

	var body string
	if m.width >= wideLayoutMin {
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, " ", summary)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, form, summary)
	}

	sections := []string{title, body, m.renderStatusBar()}
	if m.showHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderForm renders one row per field.
func (m Model) renderForm() string {
	rows := make([]string, 0, fieldCount)
	for f := FieldWidth; f < fieldCount; f++ {
		labelStyle := m.theme.Label
		if f == m.focus {
			labelStyle = m.theme.FocusedLabel
		}

		var value string
		if f.isText() {
			value = m.inputs[f].View()
		} else {
			value = m.selectors[f-FieldPanels].View()
		}

		rows = append(rows, labelStyle.Render(fieldLabels[f])+value)
	}

	return m.theme.FocusedBox.Render(strings.Join(rows, "\n"))
}

// renderSummary renders the order summary with the live total.
func (m Model) renderSummary() string {
	color, err := m.catalog.Lookup(m.config.ColorID)
	if err != nil {
		color = model.ColorEntry{DisplayName: m.config.ColorID}
	}

	lines := []string{m.theme.Bold.Render("Order Summary"), ""}
	for _, row := range cli.SummaryLines(m.config, color) {
		value := row[1]
		if row[0] == "Color" && color.Swatch != "" {
			value = lipgloss.NewStyle().Background(lipgloss.Color(color.Swatch)).Render("  ") + " " + value
		}
		lines = append(lines, m.theme.Label.Render(row[0])+m.theme.Normal.Render(value))
	}
	lines = append(lines, "")

	if m.quote.Available {
		lines = append(lines, m.theme.Label.Render("Total")+m.theme.Total.Render(cli.FormatQuote(m.quote)))
	} else {
		lines = append(lines, m.theme.Label.Render("Total")+m.theme.StatusPending.Render(cli.NoQuoteText))
	}

	if m.showBreakdown {
		lines = append(lines, "", cli.RenderBreakdown(m.quote))
	}

	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

// renderStatusBar shows input problems, hard errors or the latest notice.
func (m Model) renderStatusBar() string {
	switch {
	case m.lastError != nil:
		return m.theme.StatusError.Render(cli.ErrorIcon + " " + m.lastError.Error())
	case m.inputErr != nil:
		return m.theme.StatusError.Render(cli.ErrorIcon + " " + m.inputErr.Error())
	case m.notice != "":
		return m.theme.StatusInfo.Render(m.notice)
	}
	return ""
}
