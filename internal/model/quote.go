package model

// Breakdown records the intermediate values of a quote computation.
type Breakdown struct {
	AreaSqM            float64
	BaseUnitPrice      float64
	SurfacePrice       float64
	ColorIncrement     float64
	ColorAdjustedPrice float64
	ClosureSurcharge   float64
	Multiplier         int
	UnroundedTotal     float64
}

// Quote is the priced result for one configuration.
// When Available is false no price could be computed yet and Total is zero.
type Quote struct {
	Breakdown Breakdown
	Total     int64
	Available bool
}

// Unavailable returns the "no quote yet" result.
func Unavailable() Quote {
	return Quote{}
}
