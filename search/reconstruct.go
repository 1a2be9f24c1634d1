package search

import "github.com/cityroute/cityroute/core"

// ReconstructPath converts a predecessor map into the ordered node
// sequence from start to goal.
//
// Rules:
//   - start == goal returns [start] without consulting the map.
//   - A goal whose backward chain never reaches start (missing entry)
//     returns an empty path: the goal is unreachable.
//   - A cyclic predecessor chain is detected via a visited set and also
//     returns an empty path instead of looping forever.
//
// Complexity: O(L) time and space, L = path length.
func ReconstructPath(parent map[core.NodeID]core.NodeID, start, goal core.NodeID) []core.NodeID {
	if start == goal {
		return []core.NodeID{start}
	}

	path := make([]core.NodeID, 0, len(parent)+1)
	seen := make(map[core.NodeID]bool, len(parent))
	cur := goal
	for cur != start {
		prev, ok := parent[cur]
		if !ok || seen[cur] {
			return nil
		}
		seen[cur] = true
		path = append(path, cur)
		cur = prev
	}
	path = append(path, start)

	// Walked backward from goal; flip into start→goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
