package bellmanford

import (
	"math"
	"sort"
	"time"

	"github.com/cityroute/cityroute/core"
	"github.com/cityroute/cityroute/search"
)

// Run computes the shortest path from start to goal on adj under the given
// weight accessor. Negative edge weights are allowed; negative cycles are
// detected and reported via the result flags, never as an error.
func Run(adj core.Adjacency, start, goal core.NodeID, weight func(core.Edge) float64) *search.Result {
	t0 := time.Now()

	// 1) Node universe: adjacency keys ∪ edge targets ∪ {start, goal},
	//    ascending, so pass order is identical across runs.
	ids := nodeUniverse(adj, start, goal)
	n := len(ids)

	dist := make(map[core.NodeID]float64, n)
	for _, id := range ids {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0
	parent := make(map[core.NodeID]core.NodeID, n)

	var passes, relaxations, edgesScanned int

	// 2) Up to |V|-1 relaxation passes, leaving early on convergence.
	for i := 0; i < n-1; i++ {
		passes++
		improved := false
		for _, u := range ids {
			du := dist[u]
			if math.IsInf(du, 1) {
				continue
			}
			for _, e := range adj[u] {
				edgesScanned++
				if cand := du + weight(e); cand < dist[e.To] {
					dist[e.To] = cand
					parent[e.To] = u
					relaxations++
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}

	// 3) Detection scan, only if no pass converged early: an edge that
	//    still relaxes proves a negative cycle. Collect the nodes it
	//    corrupts and check whether the goal lies downstream.
	negCycle := false
	goalAffected := false
	if passes == n-1 {
		affected := make(map[core.NodeID]bool)
		for _, u := range ids {
			du := dist[u]
			if math.IsInf(du, 1) {
				continue
			}
			for _, e := range adj[u] {
				edgesScanned++
				if du+weight(e) < dist[e.To] {
					negCycle = true
					affected[e.To] = true
				}
			}
		}
		if negCycle {
			goalAffected = canReach(adj, affected, goal)
		}
	}

	res := &search.Result{
		Algorithm:     search.BellmanFord,
		Total:         dist[goal],
		RuntimeSec:    time.Since(t0).Seconds(),
		Explored:      passes,
		Relaxations:   relaxations,
		EdgesScanned:  edgesScanned,
		NegativeCycle: negCycle,
		GoalAffected:  goalAffected,
	}
	if !res.Unreachable() {
		res.Path = search.ReconstructPath(parent, start, goal)
	}

	return res
}

// nodeUniverse returns the sorted union of adjacency keys, edge targets,
// start and goal.
func nodeUniverse(adj core.Adjacency, start, goal core.NodeID) []core.NodeID {
	set := make(map[core.NodeID]bool, len(adj)+2)
	for u, edges := range adj {
		set[u] = true
		for _, e := range edges {
			set[e.To] = true
		}
	}
	set[start] = true
	set[goal] = true

	ids := make([]core.NodeID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// canReach reports whether goal is reachable from any node in sources via
// a breadth-first walk over adj.
func canReach(adj core.Adjacency, sources map[core.NodeID]bool, goal core.NodeID) bool {
	if len(sources) == 0 {
		return false
	}

	queue := make([]core.NodeID, 0, len(sources))
	for id := range sources {
		queue = append(queue, id)
	}
	visited := make(map[core.NodeID]bool, len(adj))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur == goal {
			return true
		}
		for _, e := range adj[cur] {
			if !visited[e.To] {
				queue = append(queue, e.To)
			}
		}
	}

	return false
}
