package runall

import (
	"errors"
	"fmt"

	"github.com/cityroute/cityroute/astar"
	"github.com/cityroute/cityroute/bellmanford"
	"github.com/cityroute/cityroute/core"
	"github.com/cityroute/cityroute/dijkstra"
	"github.com/cityroute/cityroute/heuristic"
	"github.com/cityroute/cityroute/search"
)

// ErrUnknownAlgorithm indicates an algorithm tag outside the closed enum.
var ErrUnknownAlgorithm = errors.New("runall: unknown algorithm")

// Options configures a run.
type Options struct {
	// MaxKmh is forwarded to the A* time heuristic.
	MaxKmh float64
}

// Option is a functional option for Run and All.
type Option func(*Options)

// DefaultOptions returns the defaults: heuristic.DefaultMaxKmh.
func DefaultOptions() Options {
	return Options{MaxKmh: heuristic.DefaultMaxKmh}
}

// WithMaxSpeed sets the maximum speed (km/h) assumed by the A* time
// heuristic.
func WithMaxSpeed(kmh float64) Option {
	return func(o *Options) { o.MaxKmh = kmh }
}

// Run resolves the endpoint references, selects the weight accessor for
// dim, and invokes the requested engine against the given snapshot.
func Run(alg search.Algorithm, nodes core.NodeMap, adj core.Adjacency, start, goal interface{}, dim core.Dimension, opts ...Option) (*search.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	startID, goalID, weight, err := prepare(nodes, start, goal, dim)
	if err != nil {
		return nil, err
	}

	switch alg {
	case search.AStar:
		return astar.Run(adj, nodes, startID, goalID, dim, astar.WithMaxSpeed(cfg.MaxKmh))
	case search.Dijkstra:
		return dijkstra.Run(adj, nodes, startID, goalID, weight), nil
	case search.BellmanFord:
		return bellmanford.Run(adj, startID, goalID, weight), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

// All runs every engine against one shared snapshot and returns their
// results in A*, Dijkstra, Bellman-Ford order. The graph is resolved and
// the weight accessor built exactly once, for fairness across engines.
func All(nodes core.NodeMap, adj core.Adjacency, start, goal interface{}, dim core.Dimension, opts ...Option) ([]*search.Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	startID, goalID, weight, err := prepare(nodes, start, goal, dim)
	if err != nil {
		return nil, err
	}

	aRes, err := astar.Run(adj, nodes, startID, goalID, dim, astar.WithMaxSpeed(cfg.MaxKmh))
	if err != nil {
		return nil, err
	}

	return []*search.Result{
		aRes,
		dijkstra.Run(adj, nodes, startID, goalID, weight),
		bellmanford.Run(adj, startID, goalID, weight),
	}, nil
}

// prepare performs the shared pre-search steps: endpoint resolution and
// weight selection. Any failure here aborts before engines see the graph.
func prepare(nodes core.NodeMap, start, goal interface{}, dim core.Dimension) (core.NodeID, core.NodeID, func(core.Edge) float64, error) {
	startID, err := nodes.Resolve(start)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("runall: start: %w", err)
	}
	goalID, err := nodes.Resolve(goal)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("runall: goal: %w", err)
	}
	weight, err := core.WeightFunc(dim)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("runall: %w", err)
	}

	return startID, goalID, weight, nil
}
