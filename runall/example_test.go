package runall_test

import (
	"fmt"

	"github.com/cityroute/cityroute/core"
	"github.com/cityroute/cityroute/runall"
)

// ExampleAll builds a small network, runs all three engines against the
// same snapshot, and prints their directly comparable records.
func ExampleAll() {
	cities := []core.CityRow{
		{ID: 1, NameEN: "Alpha", Latitude: 0, Longitude: 0},
		{ID: 2, NameEN: "Beta", Latitude: 0, Longitude: 1},
		{ID: 3, NameEN: "Gamma", Latitude: 0, Longitude: 2},
	}
	edges := []core.EdgeRow{
		{SourceID: 1, TargetID: 2, DistanceKm: 1.0, TravelTimeMin: 2.0},
		{SourceID: 2, TargetID: 3, DistanceKm: 1.0, TravelTimeMin: 2.0},
	}
	nodes, adj := core.BuildGraph(cities, edges)

	results, err := runall.All(nodes, adj, "Alpha", "Gamma", core.DimDistance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, res := range results {
		fmt.Printf("%-12s path=%v total=%.1f\n", res.Algorithm, res.Path, res.Total)
	}
	// Output:
	// A*           path=[1 2 3] total=2.0
	// Dijkstra     path=[1 2 3] total=2.0
	// Bellman-Ford path=[1 2 3] total=2.0
}
