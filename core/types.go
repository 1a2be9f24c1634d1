// Package core defines the road-network graph model shared by every
// shortest-path engine: node and edge types, the adjacency representation,
// graph construction from raw city/road rows, the closed weight-dimension
// enum with its accessor, and identifier resolution.
//
// This file declares the data types and sentinel errors; construction lives
// in build.go, weight selection in weight.go, resolution in resolve.go.
//
// Errors:
//
//	ErrUnknownDimension - weight dimension outside the closed enum.
//	ErrNodeNotFound     - id or name resolution failed.
//	ErrBadReference     - node reference is neither an integer id nor a string name.
package core

import "errors"

// Sentinel errors for weight selection and identifier resolution.
var (
	// ErrUnknownDimension indicates a weight dimension outside the closed enum.
	ErrUnknownDimension = errors.New("core: unknown weight dimension")

	// ErrNodeNotFound indicates an id or name that resolves to no node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadReference indicates a node reference of an unsupported type.
	ErrBadReference = errors.New("core: node reference must be an integer id or a string name")
)

// NodeID uniquely identifies a node (city) in the road network.
type NodeID int64

// Node carries the attributes of a single city. Nodes are immutable once
// the graph is built; engines read them, never write them.
type Node struct {
	// Name is the display name of the city.
	Name string

	// Lat is the latitude in decimal degrees (WGS84).
	Lat float64

	// Lon is the longitude in decimal degrees (WGS84).
	Lon float64
}

// NodeMap maps node ids to their attributes. It is the sole owner of node
// data; results and engines copy ids by value and hold no references in.
type NodeMap map[NodeID]Node

// Edge is one outgoing road segment. Both weight dimensions are always
// carried; which one an engine optimizes is decided by the caller through
// WeightFunc, never by the edge itself.
type Edge struct {
	// To is the destination node id.
	To NodeID

	// DistanceKm is the road length in kilometers.
	DistanceKm float64

	// TravelTimeMin is the travel time in minutes.
	TravelTimeMin float64
}

// Adjacency maps each source node to its outgoing edges, preserving input
// order. Absence of a key is equivalent to an empty edge list, never an
// error: engines index it directly without existence checks.
type Adjacency map[NodeID][]Edge

// CityRow is one raw city record as produced by a row source (see the
// dataset package). Column names follow the canonical city header.
type CityRow struct {
	ID        int64   `csv:"id"`
	NameEN    string  `csv:"name_en"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
}

// EdgeRow is one raw road record as produced by a row source.
type EdgeRow struct {
	SourceID      int64   `csv:"source_id"`
	TargetID      int64   `csv:"target_id"`
	DistanceKm    float64 `csv:"distance_km"`
	TravelTimeMin float64 `csv:"travel_time_min"`
}
