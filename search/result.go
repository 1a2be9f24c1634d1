package search

import (
	"fmt"
	"math"

	"github.com/cityroute/cityroute/core"
)

// Algorithm is the closed enum of available shortest-path engines.
// Dispatch happens on this tag (see runall), never on strings.
type Algorithm int

const (
	// AStar is informed search with an admissible geodesic lower bound.
	AStar Algorithm = iota

	// Dijkstra is lazy-deletion priority-queue search, non-negative weights.
	Dijkstra

	// BellmanFord is pass-based relaxation tolerant of negative weights.
	BellmanFord
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "A*"
	case Dijkstra:
		return "Dijkstra"
	case BellmanFord:
		return "Bellman-Ford"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Result is the uniform record every engine returns for one run.
type Result struct {
	// Algorithm identifies the engine that produced this result.
	Algorithm Algorithm

	// Path is the node sequence from start to goal, empty when the goal is
	// unreachable.
	Path []core.NodeID

	// Total is the cost of Path under the run's weight accessor, +Inf when
	// the goal is unreachable.
	Total float64

	// RuntimeSec is the wall-clock duration of the run in seconds.
	RuntimeSec float64

	// Explored counts heap pops (including stale ones) for Dijkstra and
	// A*, and relaxation passes for Bellman-Ford.
	Explored int

	// Relaxations counts improving relaxations.
	Relaxations int

	// EdgesScanned counts edge evaluations; for Bellman-Ford this includes
	// the negative-cycle detection scan.
	EdgesScanned int

	// NegativeCycle reports whether Bellman-Ford found a negative-weight
	// cycle anywhere in the graph.
	NegativeCycle bool

	// GoalAffected reports whether the goal is reachable from the region
	// corrupted by a negative cycle, making Total suspect.
	GoalAffected bool
}

// Unreachable reports whether r encodes the no-path sentinel.
func (r *Result) Unreachable() bool { return math.IsInf(r.Total, 1) }
