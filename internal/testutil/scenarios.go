package testutil

import "github.com/Veraticus/shutter-quote/internal/model"

// Scenario is a configuration with its known total under the default price
// list and catalog.
type Scenario struct {
	Name   string
	Config model.Configuration
	Total  int64
}

// Base is a 100x100 cm shutter with every other option at its default.
func Base() model.Configuration {
	return model.NewConfiguration().WithDimensions(100, 100)
}

// Scenarios returns the reference configurations. Totals were computed with
// round half up on the unrounded float64 total.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:   "one square meter fixed white simple lock",
			Config: Base(),
			Total:  400,
		},
		{
			Name:   "adjustable slats",
			Config: Base().WithSlatType(model.SlatAdjustable),
			Total:  500,
		},
		{
			Name:   "surcharged color rounds half up",
			Config: Base().WithColor("ral_7001"),
			Total:  418,
		},
		{
			Name:   "quantity and panels multiply",
			Config: Base().WithQuantity(2).WithPanelCount(2),
			Total:  1600,
		},
		{
			Name:   "handle with lock surcharge",
			Config: Base().WithClosureType(model.ClosureHandleWithLock),
			Total:  375,
		},
		{
			Name: "everything combined",
			Config: model.NewConfiguration().
				WithDimensions(120, 150).
				WithSlatType(model.SlatAdjustable).
				WithColor("nussbaum").
				WithClosureType(model.ClosureHandleWithLock).
				WithQuantity(3).
				WithPanelCount(2),
			Total: 5253,
		},
		{
			Name:   "fractional dimensions round down",
			Config: model.NewConfiguration().WithDimensions(75.5, 140.2),
			Total:  420,
		},
		{
			Name:   "small shutter ties round up",
			Config: model.NewConfiguration().WithDimensions(10, 10),
			Total:  54,
		},
		{
			Name:   "tie after quantity multiplication",
			Config: Base().WithColor("golden_oak").WithQuantity(3),
			Total:  1253,
		},
		{
			Name:   "adjustable handle surcharged color",
			Config: Base().WithSlatType(model.SlatAdjustable).WithClosureType(model.ClosureHandleWithLock).WithColor("ral_7001"),
			Total:  498,
		},
	}
}
