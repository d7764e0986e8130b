package model

// ColorEntry describes one finish offered for a shutter.
type ColorEntry struct {
	ID          string
	DisplayName string
	// Swatch is a hex color value used for display only.
	Swatch string
	// PriceIncrement is a fractional surcharge rate, e.g. 0.05 for +5%.
	PriceIncrement float64
}

// HasSurcharge reports whether the finish costs more than the base color.
func (c ColorEntry) HasSurcharge() bool {
	return c.PriceIncrement > 0
}
