package pricing

import (
	"fmt"
	"math"

	"github.com/Veraticus/shutter-quote/internal/common"
	"github.com/Veraticus/shutter-quote/internal/model"
)

// PriceList holds the rates used to price a shutter.
type PriceList struct {
	// Per square meter, by slat type.
	FixedSlatPerSqM      float64
	AdjustableSlatPerSqM float64
	// Flat amounts added per unit before quantity and panel multiplication.
	SimpleLockSurcharge     float64
	HandleWithLockSurcharge float64
}

// DefaultPriceList is the standard price list.
var DefaultPriceList = PriceList{
	FixedSlatPerSqM:         350,
	AdjustableSlatPerSqM:    450,
	SimpleLockSurcharge:     50,
	HandleWithLockSurcharge: 25,
}

// Validate checks that every rate is a finite non-negative number.
func (p PriceList) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"fixed slat", p.FixedSlatPerSqM},
		{"adjustable slat", p.AdjustableSlatPerSqM},
		{"simple lock", p.SimpleLockSurcharge},
		{"handle with lock", p.HandleWithLockSurcharge},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) || r.value < 0 {
			return fmt.Errorf("%w: %s rate %v", common.ErrInvalidPriceList, r.name, r.value)
		}
	}
	return nil
}

// BaseUnitPrice returns the per square meter price for a slat type.
func (p PriceList) BaseUnitPrice(s model.SlatType) float64 {
	if s == model.SlatAdjustable {
		return p.AdjustableSlatPerSqM
	}
	return p.FixedSlatPerSqM
}

// ClosureSurcharge returns the flat per unit amount for a closure type.
func (p PriceList) ClosureSurcharge(c model.ClosureType) float64 {
	if c == model.ClosureSimpleLock {
		return p.SimpleLockSurcharge
	}
	return p.HandleWithLockSurcharge
}
