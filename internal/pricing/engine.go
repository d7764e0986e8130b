// Package pricing turns a shutter configuration into a price quote.
//
// The computation is pure: no I/O, no state besides the read-only catalog it
// is given. Incomplete dimensions produce an unavailable quote; a color that
// is not in the catalog or a non-positive quantity or panel count is a hard
// error, because those values come from option lists rather than free input.
package pricing

import (
	"fmt"
	"math"

	"github.com/Veraticus/shutter-quote/internal/catalog"
	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
)

// squareCmPerSqM converts cm² to m².
const squareCmPerSqM = 10000

// maxQuotable is the first float64 total that no longer fits an int64.
const maxQuotable = float64(math.MaxInt64)

// Engine prices configurations against a catalog and price list.
type Engine struct {
	catalog *catalog.Catalog
	prices  PriceList
}

// NewEngine creates an engine. A nil catalog uses catalog.Default().
func NewEngine(cat *catalog.Catalog, prices PriceList) (*Engine, error) {
	if err := prices.Validate(); err != nil {
		return nil, err
	}
	if cat == nil {
		cat = catalog.Default()
	}
	return &Engine{catalog: cat, prices: prices}, nil
}

// Catalog returns the catalog the engine prices against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Prices returns the engine's price list.
func (e *Engine) Prices() PriceList {
	return e.prices
}

// Quote computes the quote for cfg.
func (e *Engine) Quote(cfg model.Configuration) (model.Quote, error) {
	return compute(cfg, e.catalog, e.prices)
}

// ComputeQuote prices cfg with the default price list.
func ComputeQuote(cfg model.Configuration, cat *catalog.Catalog) (model.Quote, error) {
	return compute(cfg, cat, DefaultPriceList)
}

func compute(cfg model.Configuration, cat *catalog.Catalog, prices PriceList) (model.Quote, error) {
	if !validDimension(cfg.WidthCm) || !validDimension(cfg.HeightCm) {
		return model.Unavailable(), nil
	}

	if cfg.Quantity < 1 {
		return model.Quote{}, fmt.Errorf("%w: %d", common.ErrInvalidQuantity, cfg.Quantity)
	}
	if cfg.PanelCount < 1 {
		return model.Quote{}, fmt.Errorf("%w: %d", common.ErrInvalidPanelCount, cfg.PanelCount)
	}
	if cat == nil {
		return model.Quote{}, fmt.Errorf("%w: no catalog", common.ErrUnknownColor)
	}

	color, err := cat.Lookup(cfg.ColorID)
	if err != nil {
		return model.Quote{}, err
	}

	// Operation order matters for float results; keep it as is.
	area := (*cfg.WidthCm * *cfg.HeightCm) / squareCmPerSqM
	base := prices.BaseUnitPrice(cfg.SlatType)
	surface := area * base
	colored := surface * (1 + color.PriceIncrement)
	closure := prices.ClosureSurcharge(cfg.ClosureType)
	total := (colored + closure) * float64(cfg.Quantity) * float64(cfg.PanelCount)

	// Dimensions so large the total leaves the int64 range cannot be quoted.
	if math.IsInf(total, 0) || total >= maxQuotable {
		return model.Unavailable(), nil
	}

	return model.Quote{
		Available: true,
		Total:     int64(RoundHalfUp(total)),
		Breakdown: model.Breakdown{
			AreaSqM:            area,
			BaseUnitPrice:      base,
			SurfacePrice:       surface,
			ColorIncrement:     color.PriceIncrement,
			ColorAdjustedPrice: colored,
			ClosureSurcharge:   closure,
			Multiplier:         cfg.Quantity * cfg.PanelCount,
			UnroundedTotal:     total,
		},
	}, nil
}

func validDimension(v *float64) bool {
	if v == nil {
		return false
	}
	return !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v > 0
}

// RoundHalfUp rounds to the nearest integer with ties going toward +Inf.
func RoundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}
