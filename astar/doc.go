// Package astar implements informed single-source, single-target shortest
// path on a road network, guided by an admissible geodesic lower bound.
//
// The control structure is identical to package dijkstra - lazy-deletion
// min-heap, settled set, stale-entry skip, early exit on settling the
// goal - but entries are ordered by f = g + h, where g is the cost from
// the start and h the heuristic estimate to the goal. With a zero
// heuristic the engine degenerates to Dijkstra exactly; with an admissible
// one it explores fewer nodes while returning the same total.
//
// The heuristic is chosen by the weight dimension:
//
//   - core.DimDistance → heuristic.Distance (geodesic kilometers).
//   - core.DimTime     → heuristic.Time at the configured maximum speed
//     (WithMaxSpeed, default heuristic.DefaultMaxKmh).
//
// A dimension outside the closed enum or a non-positive maximum speed
// fails fast before any search work begins:
//
//	core.ErrUnknownDimension - unrecognized weight dimension.
//	heuristic.ErrBadMaxSpeed - non-positive maximum speed.
//	heuristic.ErrGoalNotFound - goal id absent from the node map.
//
// Complexity matches Dijkstra: O((V + E) log V) time, O(V + E) space; the
// heuristic only shrinks the explored frontier, never the worst case.
package astar
