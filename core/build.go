package core

import "sort"

// BuildOptions configures BuildGraph. Defaults mirror how road networks are
// usually ingested: bidirectional roads, no self-loops, one best edge per
// ordered pair. Use the With* options to opt out of any of the three.
type BuildOptions struct {
	// Symmetrize inserts every kept directed edge in both directions with
	// identical weights.
	Symmetrize bool

	// DropSelfLoops discards edges whose source and target coincide.
	DropSelfLoops bool

	// KeepBestEdge collapses duplicate ordered pairs, keeping the edge with
	// the lexicographically smallest (DistanceKm, TravelTimeMin).
	KeepBestEdge bool
}

// BuildOption is a functional option for BuildGraph.
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns the defaults: symmetrize, drop self-loops,
// keep only the best duplicate edge.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Symmetrize:    true,
		DropSelfLoops: true,
		KeepBestEdge:  true,
	}
}

// WithDirected keeps every edge one-way instead of symmetrizing.
func WithDirected() BuildOption {
	return func(o *BuildOptions) { o.Symmetrize = false }
}

// WithSelfLoops retains edges whose source and target coincide.
func WithSelfLoops() BuildOption {
	return func(o *BuildOptions) { o.DropSelfLoops = false }
}

// WithAllParallelEdges retains every duplicate edge between the same
// ordered pair instead of collapsing to the best one.
func WithAllParallelEdges() BuildOption {
	return func(o *BuildOptions) { o.KeepBestEdge = false }
}

// BuildGraph constructs the node map and adjacency map from raw city and
// road rows.
//
// Processing order:
//  1. Index cities by id (later duplicate ids overwrite earlier ones).
//  2. Silently drop edges referencing unknown endpoints, and self-loops
//     when DropSelfLoops is set.
//  3. When KeepBestEdge is set, sort surviving rows by
//     (source, target, distance, time) and keep only the first row of each
//     ordered pair.
//  4. Append edges to the adjacency map in that order; when Symmetrize is
//     set, the reverse edge is appended immediately after the forward one
//     with identical weights.
//
// Construction is deterministic for identical input rows and options, has
// no side effects, and never fails: malformed references are dropped, not
// reported. Column-level validation belongs to the row source (dataset).
//
// Complexity: O(C + E log E) time with KeepBestEdge (O(C + E) without),
// O(C + E) space.
func BuildGraph(cities []CityRow, edges []EdgeRow, opts ...BuildOption) (NodeMap, Adjacency) {
	cfg := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Cities as nodes.
	nodes := make(NodeMap, len(cities))
	for _, row := range cities {
		nodes[NodeID(row.ID)] = Node{
			Name: row.NameEN,
			Lat:  row.Latitude,
			Lon:  row.Longitude,
		}
	}

	// 2) Filter edge rows: both endpoints must exist; self-loops optional.
	//    Work on a private slice so the caller's rows are never reordered.
	kept := make([]EdgeRow, 0, len(edges))
	for _, row := range edges {
		if _, ok := nodes[NodeID(row.SourceID)]; !ok {
			continue
		}
		if _, ok := nodes[NodeID(row.TargetID)]; !ok {
			continue
		}
		if cfg.DropSelfLoops && row.SourceID == row.TargetID {
			continue
		}
		kept = append(kept, row)
	}

	// 3) Collapse duplicate ordered pairs to the lexicographically smallest
	//    (distance, time) edge. Sorting first makes the pick deterministic
	//    regardless of input order.
	if cfg.KeepBestEdge {
		sort.SliceStable(kept, func(i, j int) bool {
			a, b := kept[i], kept[j]
			if a.SourceID != b.SourceID {
				return a.SourceID < b.SourceID
			}
			if a.TargetID != b.TargetID {
				return a.TargetID < b.TargetID
			}
			if a.DistanceKm != b.DistanceKm {
				return a.DistanceKm < b.DistanceKm
			}
			return a.TravelTimeMin < b.TravelTimeMin
		})
		deduped := make([]EdgeRow, 0, len(kept))
		for i, row := range kept {
			if i > 0 && row.SourceID == kept[i-1].SourceID && row.TargetID == kept[i-1].TargetID {
				continue
			}
			deduped = append(deduped, row)
		}
		kept = deduped
	}

	// 4) Roads as adjacency lists, reverse direction on demand.
	adj := make(Adjacency, len(nodes))
	for _, row := range kept {
		u, v := NodeID(row.SourceID), NodeID(row.TargetID)
		adj[u] = append(adj[u], Edge{To: v, DistanceKm: row.DistanceKm, TravelTimeMin: row.TravelTimeMin})
		if cfg.Symmetrize {
			adj[v] = append(adj[v], Edge{To: u, DistanceKm: row.DistanceKm, TravelTimeMin: row.TravelTimeMin})
		}
	}

	return nodes, adj
}
