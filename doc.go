// Package cityroute is a small shortest-path engine for static, weighted
// road-network graphs.
//
// It ships three interchangeable single-source, single-target engines —
// A*, Dijkstra and Bellman-Ford — operating on one immutable in-memory
// graph snapshot under a pluggable edge-weight selector (road distance in
// kilometers or travel time in minutes). Every engine returns the same
// uniform result record: the reconstructed path, its total cost, wall-clock
// runtime and per-run diagnostic counters (explored nodes or passes,
// relaxations, edge scans, negative-cycle flags), so runs are directly
// comparable across algorithms.
//
// Packages:
//
//	core/        — graph model: nodes, adjacency, construction, weight dimensions, id resolution
//	heuristic/   — admissible WGS84 geodesic lower bounds for A* (distance and time)
//	search/      — shared result record and predecessor-map path reconstruction
//	dijkstra/    — lazy-deletion priority-queue shortest path (non-negative weights)
//	astar/       — informed search; Dijkstra with a goal-directed lower bound
//	bellmanford/ — relaxation passes tolerant of negative weights, with cycle detection
//	runall/      — orchestrator: endpoint resolution, weight selection, engine dispatch
//	dataset/     — CSV row sources for cities and roads, with column validation
//
// Unreachability is reported in-band (empty path, +Inf total), never as an
// error; negative cycles are reported via flags on the Bellman-Ford result.
// Engines never mutate the graph, so independent runs may share one snapshot
// across goroutines without locking.
package cityroute
