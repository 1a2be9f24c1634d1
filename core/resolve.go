package core

import (
	"fmt"
	"sort"
	"strings"
)

// Has reports whether id is present in the map.
func (m NodeMap) Has(id NodeID) bool {
	_, ok := m[id]
	return ok
}

// IDByName returns the id of the node whose Name matches name exactly.
// When several nodes share the name, the smallest id wins, keeping
// resolution deterministic. Returns ErrNodeNotFound if no node matches.
//
// Complexity: O(V) scan; name lookup is a resolution-time concern, not a
// search-time one, so no reverse index is maintained.
func (m NodeMap) IDByName(name string) (NodeID, error) {
	found := false
	var best NodeID
	for id, node := range m {
		if node.Name != name {
			continue
		}
		if !found || id < best {
			best = id
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: name %q", ErrNodeNotFound, name)
	}

	return best, nil
}

// Resolve maps a caller-supplied reference - an integer id or a string
// name - to the NodeID it denotes.
//
// Returns ErrNodeNotFound when an id is absent from the map or a name has
// no match, and ErrBadReference for any other reference type. Resolution
// failures surface here, never inside an engine.
func (m NodeMap) Resolve(ref interface{}) (NodeID, error) {
	var id NodeID
	switch v := ref.(type) {
	case NodeID:
		id = v
	case int:
		id = NodeID(v)
	case int64:
		id = NodeID(v)
	case string:
		return m.IDByName(v)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrBadReference, ref)
	}
	if !m.Has(id) {
		return 0, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return id, nil
}

// CityEntry pairs a node id with its display name, for listings.
type CityEntry struct {
	ID   NodeID
	Name string
}

// CityList returns all nodes sorted case-insensitively by name, ties
// broken by id. Intended for presentation layers populating pickers.
func (m NodeMap) CityList() []CityEntry {
	list := make([]CityEntry, 0, len(m))
	for id, node := range m {
		list = append(list, CityEntry{ID: id, Name: node.Name})
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := strings.ToLower(list[i].Name), strings.ToLower(list[j].Name)
		if a != b {
			return a < b
		}
		return list[i].ID < list[j].ID
	})

	return list
}

// Label formats a node as "Name (id)" for display, falling back to
// "<unknown:id>" when the id is absent.
func (m NodeMap) Label(id NodeID) string {
	node, ok := m[id]
	if !ok {
		return fmt.Sprintf("<unknown:%d>", id)
	}

	return fmt.Sprintf("%s (%d)", node.Name, id)
}
