package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/model"
	"github.com/Veraticus/shutter-quote/internal/pricing"
)

func TestRenderSummary_WithQuote(t *testing.T) {
	cfg := model.NewConfiguration().
		WithDimensions(100, 100).
		WithColor("ral_7001").
		WithOpeningSide(model.OpeningLeft)
	color, err := catalog.Default().Lookup(cfg.ColorID)
	require.NoError(t, err)
	quote, err := pricing.ComputeQuote(cfg, catalog.Default())
	require.NoError(t, err)

	out := RenderSummary(cfg, quote, color)

	assert.Contains(t, out, "Order Summary")
	assert.Contains(t, out, "100 x 100 cm")
	assert.Contains(t, out, "Left opening (SX)")
	assert.Contains(t, out, "Simple lock")
	assert.Contains(t, out, "RAL 7001 opaco")
	assert.Contains(t, out, "€418")
}

func TestRenderSummary_NoQuote(t *testing.T) {
	cfg := model.NewConfiguration()
	color, err := catalog.Default().Lookup(cfg.ColorID)
	require.NoError(t, err)

	out := RenderSummary(cfg, model.Unavailable(), color)

	assert.Contains(t, out, "— x — cm")
	assert.Contains(t, out, NoQuoteText)
	assert.NotContains(t, out, "€0")
}

func TestSummaryLines(t *testing.T) {
	cfg := model.NewConfiguration().WithQuantity(2).WithPanelCount(3).WithSlatType(model.SlatAdjustable)
	lines := SummaryLines(cfg, model.ColorEntry{DisplayName: "Nussbaum"})

	require.Len(t, lines, 7)
	assert.Equal(t, [2]string{"Quantity", "2"}, lines[1])
	assert.Equal(t, [2]string{"Panels", "3"}, lines[2])
	assert.Equal(t, [2]string{"Slats", "Adjustable slats"}, lines[3])
	assert.Equal(t, [2]string{"Color", "Nussbaum"}, lines[6])
}

func TestRenderBreakdown(t *testing.T) {
	quote, err := pricing.ComputeQuote(model.NewConfiguration().WithDimensions(100, 100).WithColor("nussbaum"), catalog.Default())
	require.NoError(t, err)

	out := RenderBreakdown(quote)
	assert.Contains(t, out, "1.0000 m²")
	assert.Contains(t, out, "+5%")
	assert.Contains(t, out, "417.50 → €418")

	assert.Contains(t, RenderBreakdown(model.Unavailable()), "Enter width and height")
}

func TestRenderColorTable(t *testing.T) {
	out := RenderColorTable(catalog.Default().ListAll())

	assert.Contains(t, out, "bianco_9010")
	assert.Contains(t, out, "Golden Oak")
	assert.Contains(t, out, "included")
	assert.Contains(t, out, "+5%")
}
