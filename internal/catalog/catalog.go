// Package catalog holds the fixed registry of shutter finishes and their
// price surcharges.
package catalog

import (
	"fmt"
	"sync"

	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
)

// Catalog is an immutable, ordered set of color entries.
type Catalog struct {
	byID    map[string]int
	entries []model.ColorEntry
}

// seedColors is the default finish range, in display order.
var seedColors = []model.ColorEntry{
	{ID: "bianco_9010", DisplayName: "Bianco 9010 opaco", Swatch: "#FFFFFF", PriceIncrement: 0},
	{ID: "ral_7001", DisplayName: "RAL 7001 opaco", Swatch: "#8F9696", PriceIncrement: 0.05},
	{ID: "ral_7016", DisplayName: "RAL 7016 opaco", Swatch: "#383E42", PriceIncrement: 0.05},
	{ID: "ral_6005", DisplayName: "RAL 6005 opaco", Swatch: "#2F4F4F", PriceIncrement: 0.05},
	{ID: "ral_8017", DisplayName: "RAL 8017 opaco", Swatch: "#4A3328", PriceIncrement: 0.05},
	{ID: "golden_oak", DisplayName: "Golden Oak", Swatch: "#D6A668", PriceIncrement: 0.05},
	{ID: "nussbaum", DisplayName: "Nussbaum", Swatch: "#5D4037", PriceIncrement: 0.05},
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(seedColors...)
	if err != nil {
		panic(fmt.Sprintf("seed catalog is invalid: %v", err))
	}
	return c
})

// Default returns the process-wide seed catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// New builds a catalog from entries, keeping their order.
func New(entries ...model.ColorEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no colors", common.ErrInvalidCatalog)
	}

	c := &Catalog{
		byID:    make(map[string]int, len(entries)),
		entries: make([]model.ColorEntry, 0, len(entries)),
	}

	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: color with empty id", common.ErrInvalidCatalog)
		}
		if _, exists := c.byID[e.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate color %q", common.ErrInvalidCatalog, e.ID)
		}
		// NaN fails this comparison too.
		if !(e.PriceIncrement >= 0) {
			return nil, fmt.Errorf("%w: color %q has negative increment %v", common.ErrInvalidCatalog, e.ID, e.PriceIncrement)
		}
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c, nil
}

// Lookup returns the entry for id, or an error wrapping common.ErrUnknownColor.
func (c *Catalog) Lookup(id string) (model.ColorEntry, error) {
	idx, ok := c.byID[id]
	if !ok {
		return model.ColorEntry{}, fmt.Errorf("%w: %q", common.ErrUnknownColor, id)
	}
	return c.entries[idx], nil
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ListAll returns every entry in insertion order. The slice is a copy.
func (c *Catalog) ListAll() []model.ColorEntry {
	out := make([]model.ColorEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of colors.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// IndexOf returns the position of id in display order, or -1.
func (c *Catalog) IndexOf(id string) int {
	idx, ok := c.byID[id]
	if !ok {
		return -1
	}
	return idx
}
