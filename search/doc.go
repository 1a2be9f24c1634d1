// Package search defines what the three shortest-path engines have in
// common: the closed algorithm enum, the uniform per-run result record,
// the in-band unreachable sentinel, and predecessor-map path
// reconstruction.
//
// Result invariants:
//
//   - Path is empty if and only if Total is +Inf (the unreachable sentinel).
//   - A non-empty Path starts at the queried start and ends at the goal.
//   - NegativeCycle and GoalAffected are always false for AStar and
//     Dijkstra; only BellmanFord can set them.
//   - A Result is created fresh per invocation, never mutated after return,
//     and holds node ids by value - no references into the graph.
//
// Reconstruction degrades gracefully: a goal missing from the predecessor
// map or a cyclic predecessor chain yields an empty path, never a panic or
// an endless walk.
package search
