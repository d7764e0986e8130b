package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/shutter-quote/internal/model"
)

// RenderSwatch renders a small block filled with the color's swatch.
func RenderSwatch(entry model.ColorEntry) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(entry.Swatch)).
		Render("    ")
}

// SummaryLines returns the order summary rows as label/value pairs.
func SummaryLines(cfg model.Configuration, color model.ColorEntry) [][2]string {
	return [][2]string{
		{"Dimensions", fmt.Sprintf("%s x %s cm", FormatDimension(cfg.WidthCm), FormatDimension(cfg.HeightCm))},
		{"Quantity", fmt.Sprintf("%d", cfg.Quantity)},
		{"Panels", fmt.Sprintf("%d", cfg.PanelCount)},
		{"Slats", cfg.SlatType.Label()},
		{"Opening", cfg.OpeningSide.Label()},
		{"Closure", cfg.ClosureType.Label()},
		{"Color", color.DisplayName},
	}
}

// RenderSummary renders the order summary box for a configuration and its quote.
func RenderSummary(cfg model.Configuration, quote model.Quote, color model.ColorEntry) string {
	lines := make([]string, 0, 9)
	for _, row := range SummaryLines(cfg, color) {
		value := row[1]
		if row[0] == "Color" && color.Swatch != "" {
			value = RenderSwatch(color) + " " + value
		}
		lines = append(lines, LabelStyle.Render(row[0]+":")+value)
	}

	lines = append(lines, "")
	if quote.Available {
		lines = append(lines, LabelStyle.Render("Total:")+TotalStyle.Render(FormatQuote(quote)))
	} else {
		lines = append(lines, LabelStyle.Render("Total:")+SubtleStyle.Render(NoQuoteText))
	}

	return RenderBox("Order Summary", strings.Join(lines, "\n"))
}

// RenderBreakdown renders the intermediate pricing values of an available quote.
func RenderBreakdown(quote model.Quote) string {
	if !quote.Available {
		return SubtleStyle.Render("Enter width and height to see a price breakdown.")
	}

	b := quote.Breakdown
	rows := []string{
		fmt.Sprintf("Area:            %.4f m²", b.AreaSqM),
		fmt.Sprintf("Slats:           %.2f %s/m² → %.2f", b.BaseUnitPrice, CurrencySymbol, b.SurfacePrice),
		fmt.Sprintf("Finish:          %s → %.2f", FormatPercent(b.ColorIncrement), b.ColorAdjustedPrice),
		fmt.Sprintf("Closure:         +%.2f", b.ClosureSurcharge),
		fmt.Sprintf("Units × panels:  ×%d", b.Multiplier),
		fmt.Sprintf("Total:           %.2f → %s", b.UnroundedTotal, FormatAmount(quote.Total)),
	}
	return strings.Join(rows, "\n")
}

// RenderColorTable renders the catalog as a table of swatches and surcharges.
func RenderColorTable(colors []model.ColorEntry) string {
	idWidth := len("ID")
	nameWidth := len("Name")
	for _, c := range colors {
		idWidth = max(idWidth, len(c.ID))
		nameWidth = max(nameWidth, lipgloss.Width(c.DisplayName))
	}

	var b strings.Builder
	header := fmt.Sprintf("     %-*s  %-*s  %s", idWidth, "ID", nameWidth, "Name", "Surcharge")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	for _, c := range colors {
		b.WriteString("\n")
		b.WriteString(RenderSwatch(c))
		fmt.Fprintf(&b, " %-*s  %-*s  %s", idWidth, c.ID, nameWidth, c.DisplayName, FormatPercent(c.PriceIncrement))
	}
	return b.String()
}
