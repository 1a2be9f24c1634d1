package astar

import "github.com/cityroute/cityroute/heuristic"

// Options configures the A* engine.
type Options struct {
	// MaxKmh is the maximum sustained road speed assumed by the time
	// heuristic. Irrelevant for the distance dimension.
	MaxKmh float64
}

// Option is a functional option for Run.
type Option func(*Options)

// DefaultOptions returns the defaults: heuristic.DefaultMaxKmh.
func DefaultOptions() Options {
	return Options{MaxKmh: heuristic.DefaultMaxKmh}
}

// WithMaxSpeed sets the maximum speed (km/h) for the time heuristic.
// Validation happens in Run: a non-positive value surfaces as
// heuristic.ErrBadMaxSpeed before any search work.
func WithMaxSpeed(kmh float64) Option {
	return func(o *Options) { o.MaxKmh = kmh }
}
