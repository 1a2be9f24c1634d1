package astar

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/cityroute/cityroute/core"
	"github.com/cityroute/cityroute/heuristic"
	"github.com/cityroute/cityroute/search"
)

// Run computes the shortest path from start to goal on adj, optimizing the
// weight dimension dim and ordering exploration by g + h, where h is the
// admissible estimator for dim (see package heuristic).
//
// Fails fast with core.ErrUnknownDimension, heuristic.ErrBadMaxSpeed or
// heuristic.ErrGoalNotFound before touching the graph. Weight
// non-negativity remains a precondition, as with dijkstra.
func Run(adj core.Adjacency, nodes core.NodeMap, start, goal core.NodeID, dim core.Dimension, opts ...Option) (*search.Result, error) {
	t0 := time.Now()

	// 1) Options, then fail-fast parameter validation.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var h heuristic.Func
	var err error
	switch dim {
	case core.DimDistance:
		h, err = heuristic.Distance(goal, nodes)
	case core.DimTime:
		h, err = heuristic.Time(goal, nodes, cfg.MaxKmh)
	default:
		return nil, fmt.Errorf("astar: %w: %s", core.ErrUnknownDimension, dim)
	}
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}

	weight, err := core.WeightFunc(dim)
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}

	// 2) Search state. fBest carries the priority each node was last
	//    pushed with, so stale heap entries are recognizable on pop.
	r := &runner{
		adj:       adj,
		weight:    weight,
		heuristic: h,
		g:         map[core.NodeID]float64{start: 0},
		fBest:     map[core.NodeID]float64{start: h(start)},
		parent:    make(map[core.NodeID]core.NodeID),
		settled:   make(map[core.NodeID]bool),
	}
	r.pq = scorePQ{{id: start, f: r.fBest[start]}}
	heap.Init(&r.pq)
	r.search(goal)

	res := &search.Result{
		Algorithm:    search.AStar,
		Total:        r.gOf(goal),
		RuntimeSec:   time.Since(t0).Seconds(),
		Explored:     r.explored,
		Relaxations:  r.relaxations,
		EdgesScanned: r.edgesScanned,
	}
	if !res.Unreachable() {
		res.Path = search.ReconstructPath(r.parent, start, goal)
	}

	return res, nil
}

// runner holds the mutable state of one invocation; the graph stays
// read-only throughout.
type runner struct {
	adj       core.Adjacency
	weight    func(core.Edge) float64
	heuristic heuristic.Func

	g       map[core.NodeID]float64     // cost from start, missing key = +Inf
	fBest   map[core.NodeID]float64     // best f each node was pushed with
	parent  map[core.NodeID]core.NodeID // predecessor on the best path
	settled map[core.NodeID]bool
	pq      scorePQ

	explored     int
	relaxations  int
	edgesScanned int
}

func (r *runner) gOf(id core.NodeID) float64 {
	if c, ok := r.g[id]; ok {
		return c
	}

	return math.Inf(1)
}

func (r *runner) fOf(id core.NodeID) float64 {
	if c, ok := r.fBest[id]; ok {
		return c
	}

	return math.Inf(1)
}

// search mirrors the dijkstra loop with f-ordered pops.
func (r *runner) search(goal core.NodeID) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*scoreItem)
		r.explored++

		if r.settled[item.id] {
			continue
		}
		// Stale entry: a cheaper push for this node happened later.
		if item.f > r.fOf(item.id) {
			continue
		}

		r.settled[item.id] = true
		if item.id == goal {
			return
		}

		r.relax(item.id)
	}
}

// relax attempts to improve g for every neighbor of the settled node u and
// pushes improved neighbors keyed by their new f.
func (r *runner) relax(u core.NodeID) {
	gu := r.g[u]
	for _, e := range r.adj[u] {
		r.edgesScanned++
		if r.settled[e.To] {
			continue
		}
		cand := gu + r.weight(e)
		if cand >= r.gOf(e.To) {
			continue
		}
		r.g[e.To] = cand
		f := cand + r.heuristic(e.To)
		r.fBest[e.To] = f
		r.parent[e.To] = u
		r.relaxations++
		heap.Push(&r.pq, &scoreItem{id: e.To, f: f})
	}
}

// scoreItem is one heap entry: a node and the f-score it was pushed with.
type scoreItem struct {
	id core.NodeID
	f  float64
}

// scorePQ is a min-heap of *scoreItem ordered by f, ties by node id for
// deterministic pops.
type scorePQ []*scoreItem

func (pq scorePQ) Len() int { return len(pq) }

func (pq scorePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].id < pq[j].id
}

func (pq scorePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *scorePQ) Push(x interface{}) { *pq = append(*pq, x.(*scoreItem)) }

func (pq *scorePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
