// Package runall orchestrates the three shortest-path engines over one
// shared, read-only graph snapshot.
//
// It resolves start and goal references (integer ids or city names) through
// the node map, selects the weight accessor for the requested dimension,
// dispatches on the closed search.Algorithm enum, and returns uniform
// result records that are directly comparable across engines. All engines
// in one All call see the same snapshot; none of them mutate it, so the
// call is safe to issue from several goroutines as long as nobody rebuilds
// the graph mid-flight.
//
// Errors surface before any engine runs and are never produced inside one:
//
//	core.ErrNodeNotFound      - start or goal resolution failed.
//	core.ErrBadReference      - start or goal is neither id nor name.
//	core.ErrUnknownDimension  - weight dimension outside the closed enum.
//	heuristic.ErrBadMaxSpeed  - non-positive A* maximum speed.
//	ErrUnknownAlgorithm       - algorithm tag outside the closed enum.
package runall
