package dijkstra

import (
	"container/heap"
	"math"
	"time"

	"github.com/cityroute/cityroute/core"
	"github.com/cityroute/cityroute/search"
)

// Run computes the shortest path from start to goal on adj under the given
// weight accessor. Weights must be non-negative (precondition). nodes is
// accepted for interface uniformity with the informed engine; Dijkstra
// itself needs no node attributes.
//
// The returned record is fresh per invocation and reports the in-band
// unreachable sentinel (empty path, +Inf total) when no path exists.
func Run(adj core.Adjacency, nodes core.NodeMap, start, goal core.NodeID, weight func(core.Edge) float64) *search.Result {
	t0 := time.Now()

	r := &runner{
		adj:     adj,
		weight:  weight,
		best:    map[core.NodeID]float64{start: 0},
		parent:  make(map[core.NodeID]core.NodeID),
		settled: make(map[core.NodeID]bool),
	}
	r.pq = costPQ{{id: start, cost: 0}}
	heap.Init(&r.pq)
	r.search(goal)

	res := &search.Result{
		Algorithm:    search.Dijkstra,
		Total:        r.costOf(goal),
		RuntimeSec:   time.Since(t0).Seconds(),
		Explored:     r.explored,
		Relaxations:  r.relaxations,
		EdgesScanned: r.edgesScanned,
	}
	if !res.Unreachable() {
		res.Path = search.ReconstructPath(r.parent, start, goal)
	}

	return res
}

// runner holds the mutable state of a single invocation. All structures
// are exclusively owned and discarded on return; the graph is read-only.
type runner struct {
	adj    core.Adjacency
	weight func(core.Edge) float64

	best    map[core.NodeID]float64     // best-known cost, missing key = +Inf
	parent  map[core.NodeID]core.NodeID // predecessor on the best path
	settled map[core.NodeID]bool        // cost finalized, never revisited
	pq      costPQ

	explored     int
	relaxations  int
	edgesScanned int
}

// costOf reads the best-known cost with +Inf as the default.
func (r *runner) costOf(id core.NodeID) float64 {
	if c, ok := r.best[id]; ok {
		return c
	}

	return math.Inf(1)
}

// search runs the main loop until the goal settles or the heap drains.
func (r *runner) search(goal core.NodeID) {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry. Every pop counts as explored,
		//    stale ones included.
		item := heap.Pop(&r.pq).(*costItem)
		r.explored++

		// 2) Skip entries for already-settled nodes.
		if r.settled[item.id] {
			continue
		}

		// 3) Skip entries superseded by a later, cheaper relaxation.
		if item.cost > r.costOf(item.id) {
			continue
		}

		// 4) Settle: item.cost is now final for this node.
		r.settled[item.id] = true
		if item.id == goal {
			return
		}

		// 5) Relax every outgoing edge of the settled node.
		r.relax(item.id, item.cost)
	}
}

// relax attempts to improve the cost of every neighbor of u, whose own
// cost du is final.
func (r *runner) relax(u core.NodeID, du float64) {
	for _, e := range r.adj[u] {
		r.edgesScanned++
		if r.settled[e.To] {
			continue
		}
		cand := du + r.weight(e)
		if cand >= r.costOf(e.To) {
			continue
		}
		r.best[e.To] = cand
		r.parent[e.To] = u
		r.relaxations++
		heap.Push(&r.pq, &costItem{id: e.To, cost: cand})
	}
}

// costItem is one heap entry: a node and the tentative cost it was pushed
// with. Duplicates are expected under lazy decrease-key.
type costItem struct {
	id   core.NodeID
	cost float64
}

// costPQ is a min-heap of *costItem ordered by cost, ties by node id so
// that identical inputs always pop in the same order.
type costPQ []*costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].id < pq[j].id
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
