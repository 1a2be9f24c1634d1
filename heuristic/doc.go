// Package heuristic provides admissible lower-bound estimators for A*
// over a road network, derived from WGS84 ellipsoidal geodesic distance.
//
// Two estimators are available, one per weight dimension:
//
//   - Distance: straight-line geodesic distance in kilometers to the goal.
//     Admissible and consistent, since no road between two points can be
//     shorter than the geodesic between them.
//   - Time: geodesic distance divided by a maximum sustained speed,
//     yielding minutes. Admissible as long as no edge offers a genuinely
//     faster effective speed than the configured maximum.
//
// Each estimator memoizes per-node evaluations in a small map owned by the
// returned closure - the same node is re-queried many times during one
// search, and the goal is fixed, so the value is a pure function of the
// node id. The cache lives and dies with the closure; nothing outlives the
// invocation that created it.
//
// The inverse geodesic problem is solved by github.com/tidwall/geodesic,
// a Go port of Karney's GeographicLib routines.
//
// Errors:
//
//	ErrGoalNotFound - goal id absent from the node map.
//	ErrBadMaxSpeed  - non-positive maximum speed for the time bound.
package heuristic
