// Package astar_test validates fail-fast parameter handling and the key
// optimality property: A* totals match Dijkstra's exactly on non-negative
// graphs, for every reachable pair and both weight dimensions.
package astar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityroute/cityroute/astar"
	"github.com/cityroute/cityroute/core"
	"github.com/cityroute/cityroute/dijkstra"
	"github.com/cityroute/cityroute/heuristic"
)

// germanGraph builds a small real-coordinate network. Road distances
// exceed the geodesic between their endpoints and travel times assume
// 60 km/h, so both heuristics stay admissible at the default maximum
// speed. City 5 is isolated.
func germanGraph() (core.NodeMap, core.Adjacency) {
	cities := []core.CityRow{
		{ID: 1, NameEN: "Berlin", Latitude: 52.5200, Longitude: 13.4050},
		{ID: 2, NameEN: "Hamburg", Latitude: 53.5511, Longitude: 9.9937},
		{ID: 3, NameEN: "Munich", Latitude: 48.1351, Longitude: 11.5820},
		{ID: 4, NameEN: "Frankfurt", Latitude: 50.1109, Longitude: 8.6821},
		{ID: 5, NameEN: "Rostock", Latitude: 54.0887, Longitude: 12.1405},
	}
	edges := []core.EdgeRow{
		{SourceID: 1, TargetID: 2, DistanceKm: 289, TravelTimeMin: 289},
		{SourceID: 1, TargetID: 3, DistanceKm: 585, TravelTimeMin: 585},
		{SourceID: 1, TargetID: 4, DistanceKm: 545, TravelTimeMin: 545},
		{SourceID: 2, TargetID: 4, DistanceKm: 493, TravelTimeMin: 493},
		{SourceID: 3, TargetID: 4, DistanceKm: 392, TravelTimeMin: 392},
	}

	return core.BuildGraph(cities, edges)
}

func lineGraph() (core.NodeMap, core.Adjacency) {
	cities := []core.CityRow{
		{ID: 1, NameEN: "Alpha", Latitude: 0, Longitude: 0},
		{ID: 2, NameEN: "Beta", Latitude: 0, Longitude: 1},
		{ID: 3, NameEN: "Gamma", Latitude: 0, Longitude: 2},
	}
	edges := []core.EdgeRow{
		{SourceID: 1, TargetID: 2, DistanceKm: 1.0, TravelTimeMin: 2.0},
		{SourceID: 2, TargetID: 3, DistanceKm: 1.0, TravelTimeMin: 2.0},
	}

	return core.BuildGraph(cities, edges)
}

func TestRun_UnknownDimension(t *testing.T) {
	nodes, adj := germanGraph()

	_, err := astar.Run(adj, nodes, 1, 4, core.Dimension(7))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnknownDimension))
}

func TestRun_BadMaxSpeed(t *testing.T) {
	nodes, adj := germanGraph()

	_, err := astar.Run(adj, nodes, 1, 4, core.DimTime, astar.WithMaxSpeed(0))
	assert.ErrorIs(t, err, heuristic.ErrBadMaxSpeed)
}

func TestRun_GoalNotInNodeMap(t *testing.T) {
	nodes, adj := germanGraph()

	_, err := astar.Run(adj, nodes, 1, 42, core.DimDistance)
	assert.ErrorIs(t, err, heuristic.ErrGoalNotFound)
}

func TestRun_LineGraph(t *testing.T) {
	nodes, adj := lineGraph()

	res, err := astar.Run(adj, nodes, 1, 3, core.DimDistance)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{1, 2, 3}, res.Path)
	assert.InDelta(t, 2.0, res.Total, 1e-9)
	assert.False(t, res.NegativeCycle)
	assert.False(t, res.GoalAffected)
}

func TestRun_StartEqualsGoal(t *testing.T) {
	nodes, adj := germanGraph()

	res, err := astar.Run(adj, nodes, 3, 3, core.DimDistance)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{3}, res.Path)
	assert.Equal(t, 0.0, res.Total)
}

func TestRun_Unreachable(t *testing.T) {
	nodes, adj := germanGraph()

	res, err := astar.Run(adj, nodes, 1, 5, core.DimDistance)
	require.NoError(t, err)

	assert.True(t, res.Unreachable())
	assert.Empty(t, res.Path)
}

func TestRun_PrefersIndirectRoute(t *testing.T) {
	nodes, adj := germanGraph()

	// Hamburg→Munich has no direct road; via Berlin (289+585) beats via
	// Frankfurt (493+392).
	res, err := astar.Run(adj, nodes, 2, 3, core.DimDistance)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{2, 1, 3}, res.Path)
	assert.InDelta(t, 874.0, res.Total, 1e-9)
}

func TestRun_TotalsMatchDijkstra_AllPairs(t *testing.T) {
	nodes, adj := germanGraph()

	for _, dim := range []core.Dimension{core.DimDistance, core.DimTime} {
		weight, err := core.WeightFunc(dim)
		require.NoError(t, err)

		for start := core.NodeID(1); start <= 4; start++ {
			for goal := core.NodeID(1); goal <= 4; goal++ {
				aRes, err := astar.Run(adj, nodes, start, goal, dim)
				require.NoError(t, err)
				dRes := dijkstra.Run(adj, nodes, start, goal, weight)

				require.False(t, aRes.Unreachable())
				// The heuristic may change exploration order, never cost.
				assert.InDelta(t, dRes.Total, aRes.Total, 1e-9,
					"dim=%s start=%d goal=%d", dim, start, goal)
				assert.Equal(t, dRes.Path, aRes.Path,
					"dim=%s start=%d goal=%d", dim, start, goal)
			}
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	nodes, adj := germanGraph()

	a, err := astar.Run(adj, nodes, 2, 3, core.DimTime)
	require.NoError(t, err)
	b, err := astar.Run(adj, nodes, 2, 3, core.DimTime)
	require.NoError(t, err)

	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Total, b.Total)
	assert.Equal(t, a.Explored, b.Explored)
	assert.Equal(t, a.Relaxations, b.Relaxations)
	assert.Equal(t, a.EdgesScanned, b.EdgesScanned)
}
