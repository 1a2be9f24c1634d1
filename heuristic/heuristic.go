package heuristic

import (
	"errors"
	"fmt"

	"github.com/tidwall/geodesic"

	"github.com/cityroute/cityroute/core"
)

// Sentinel errors for estimator construction.
var (
	// ErrGoalNotFound indicates the goal id is absent from the node map.
	ErrGoalNotFound = errors.New("heuristic: goal node not found")

	// ErrBadMaxSpeed indicates a non-positive maximum speed.
	ErrBadMaxSpeed = errors.New("heuristic: max speed must be > 0 km/h")
)

// DefaultMaxKmh is the assumed fastest sustained road speed when the
// caller does not configure one.
const DefaultMaxKmh = 70.0

// Func estimates the remaining cost from a node to a fixed goal.
// It never overestimates the true remaining cost (admissibility).
type Func func(core.NodeID) float64

// GeodesicKm solves the WGS84 inverse problem for two coordinates and
// returns the ellipsoidal great-circle distance in kilometers.
func GeodesicKm(lat1, lon1, lat2, lon2 float64) float64 {
	var meters float64
	geodesic.WGS84.Inverse(lat1, lon1, lat2, lon2, &meters, nil, nil)

	return meters / 1000.0
}

// Distance returns the distance-dimension estimator for goal: the geodesic
// distance in kilometers from a node to the goal. This is the straight-line
// lower bound on any road distance, hence admissible and consistent.
//
// Evaluations are memoized per node id. Nodes absent from the map evaluate
// to 0, which keeps the bound admissible.
//
// Returns ErrGoalNotFound if goal is not in nodes.
func Distance(goal core.NodeID, nodes core.NodeMap) (Func, error) {
	g, ok := nodes[goal]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrGoalNotFound, goal)
	}

	memo := make(map[core.NodeID]float64, len(nodes))
	return func(id core.NodeID) float64 {
		if h, hit := memo[id]; hit {
			return h
		}
		var h float64
		if node, known := nodes[id]; known {
			h = GeodesicKm(node.Lat, node.Lon, g.Lat, g.Lon)
		}
		memo[id] = h

		return h
	}, nil
}

// Time returns the time-dimension estimator for goal: geodesic kilometers
// divided by maxKmh, expressed in minutes. It is a lower bound on travel
// time provided no edge sustains a higher effective speed than maxKmh.
//
// Returns ErrBadMaxSpeed when maxKmh <= 0 and ErrGoalNotFound when goal is
// not in nodes; both are reported before any search work begins.
func Time(goal core.NodeID, nodes core.NodeMap, maxKmh float64) (Func, error) {
	if maxKmh <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadMaxSpeed, maxKmh)
	}

	dist, err := Distance(goal, nodes)
	if err != nil {
		return nil, err
	}

	kmPerMin := maxKmh / 60.0
	return func(id core.NodeID) float64 {
		return dist(id) / kmPerMin
	}, nil
}
