package core

import "fmt"

// Dimension selects which edge weight field an engine optimizes. It is a
// closed enum: WeightFunc rejects anything outside the two declared values,
// so there is no stringly-typed weight key anywhere in the engines.
type Dimension int

const (
	// DimDistance optimizes road distance in kilometers.
	DimDistance Dimension = iota

	// DimTime optimizes travel time in minutes.
	DimTime
)

// String returns the canonical column name of the dimension.
func (d Dimension) String() string {
	switch d {
	case DimDistance:
		return "distance_km"
	case DimTime:
		return "travel_time_min"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// WeightFunc returns a pure accessor selecting the weight field for dim.
// Every engine receives its weight through such an accessor and never
// hardcodes which field is "the" weight.
//
// Returns ErrUnknownDimension for values outside the closed enum, before
// any search work can begin.
func WeightFunc(dim Dimension) (func(Edge) float64, error) {
	switch dim {
	case DimDistance:
		return func(e Edge) float64 { return e.DistanceKm }, nil
	case DimTime:
		return func(e Edge) float64 { return e.TravelTimeMin }, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, dim)
	}
}
