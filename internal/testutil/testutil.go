// Package testutil provides shared fixtures for shutter-quote tests: pointer
// helpers, reference configurations with their known totals, and catalog
// fixtures.
//
// Example:
//
//	for _, sc := range testutil.Scenarios() {
//		quote, err := pricing.ComputeQuote(sc.Config, catalog.Default())
//		require.NoError(t, err)
//		assert.Equal(t, sc.Total, quote.Total)
//	}
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/model"
)

// Ptr returns a pointer to v.
func Ptr(v float64) *float64 {
	return &v
}

// CatalogYAML is a two color catalog file: the default white and a 10%
// surcharged anthracite.
const CatalogYAML = `colors:
  - id: bianco_9010
    name: White
    swatch: "#FFFFFF"
    increment: 0
  - id: antracite
    name: Antracite
    swatch: "#293133"
    increment: 0.10
`

// CatalogEntries returns the entries described by CatalogYAML.
func CatalogEntries() []model.ColorEntry {
	return []model.ColorEntry{
		{ID: model.DefaultColorID, DisplayName: "White", Swatch: "#FFFFFF"},
		{ID: "antracite", DisplayName: "Antracite", Swatch: "#293133", PriceIncrement: 0.10},
	}
}

// NewCatalog builds a catalog from entries or fails the test. Without entries
// it uses CatalogEntries.
func NewCatalog(t *testing.T, entries ...model.ColorEntry) *catalog.Catalog {
	t.Helper()

	if len(entries) == 0 {
		entries = CatalogEntries()
	}
	cat, err := catalog.New(entries...)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return cat
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
