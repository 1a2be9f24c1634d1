// Package dijkstra implements single-source, single-target shortest path
// on a road network with non-negative edge weights.
//
// The engine is classic lazy-deletion Dijkstra: a min-heap keyed by
// tentative cost (ties broken by smaller node id for deterministic runs),
// a best-known-cost map defaulting to +Inf, a settled set, and a
// predecessor map. Instead of a decrease-key operation, improvements push
// duplicate heap entries; stale entries are recognized on pop either by
// the settled set or by carrying a cost above the recorded best. Search
// stops the moment the goal is settled.
//
// Weight non-negativity is a precondition, not enforced defensively: a
// negative weight silently degrades optimality, exactly as the algorithm
// dictates. Use bellmanford when weights may be negative.
//
// Counters on the result:
//
//   - Explored:     heap pops, stale pops included.
//   - EdgesScanned: edge relaxation attempts.
//   - Relaxations:  attempts that actually improved a cost.
//
// Complexity:
//
//   - Time:  O((V + E) log V) - each vertex settles once, each relaxation
//     may push one heap entry, each heap operation costs O(log V).
//   - Space: O(V + E) - cost/predecessor maps plus heap entries under
//     lazy decrease-key.
//
// Unreachability is not an error: exhaustion without settling the goal
// returns the +Inf sentinel with an empty path and whatever counters were
// accumulated.
package dijkstra
