// Package bellmanford implements single-source, single-target shortest
// path by repeated edge relaxation, tolerating negative edge weights and
// detecting negative-weight cycles.
//
// The iterated node set is the union of adjacency-map keys, every edge
// target, and the start and goal ids, visited in ascending id order for
// fully reproducible runs. Destination-only nodes (present as edge targets
// but never as adjacency keys) therefore still receive distances; having
// no outgoing edges, they contribute nothing as relaxation sources.
//
// The engine performs at most |V|-1 full relaxation passes, leaving early
// when a pass improves nothing (convergence). Only when all |V|-1 passes
// ran does it execute one extra detection scan: any edge that would still
// relax proves a negative-weight cycle. The nodes such edges would improve
// form the corrupted region; a breadth-first reachability walk from that
// region decides whether the goal's reported total is suspect. No attempt
// is made to represent a "shortest" path through a negative cycle - the
// result simply carries the NegativeCycle and GoalAffected flags.
//
// Counters on the result:
//
//   - Explored:     relaxation passes actually executed.
//   - Relaxations:  improving relaxations across all passes.
//   - EdgesScanned: edge evaluations in relaxation passes plus the
//     detection scan.
//
// Complexity: O(V·E) time worst case, O(V) space. An unreachable goal
// yields the +Inf sentinel with an empty path regardless of cycle status.
package bellmanford
