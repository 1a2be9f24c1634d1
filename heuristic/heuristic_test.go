// Package heuristic_test validates the geodesic solver wrapper and the
// admissibility-relevant behavior of both estimators.
package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityroute/cityroute/core"
	"github.com/cityroute/cityroute/heuristic"
)

func TestGeodesicKm_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, heuristic.GeodesicKm(52.52, 13.405, 52.52, 13.405))
}

func TestGeodesicKm_OneDegreeAtEquator(t *testing.T) {
	// One degree of longitude along the equator on WGS84 is 111.319 km.
	got := heuristic.GeodesicKm(0, 0, 0, 1)
	assert.InDelta(t, 111.319, got, 0.01)
}

func TestGeodesicKm_BerlinHamburg(t *testing.T) {
	got := heuristic.GeodesicKm(52.5200, 13.4050, 53.5511, 9.9937)
	assert.InDelta(t, 255.0, got, 5.0)
}

func TestGeodesicKm_Symmetric(t *testing.T) {
	ab := heuristic.GeodesicKm(52.5200, 13.4050, 48.1351, 11.5820)
	ba := heuristic.GeodesicKm(48.1351, 11.5820, 52.5200, 13.4050)
	assert.InDelta(t, ab, ba, 1e-9)
}

func testNodes() core.NodeMap {
	return core.NodeMap{
		1: {Name: "Origin", Lat: 0, Lon: 0},
		2: {Name: "East", Lat: 0, Lon: 1},
		3: {Name: "FarEast", Lat: 0, Lon: 2},
	}
}

func TestDistance_GoalNotFound(t *testing.T) {
	_, err := heuristic.Distance(42, testNodes())
	assert.ErrorIs(t, err, heuristic.ErrGoalNotFound)
}

func TestDistance_ZeroAtGoal(t *testing.T) {
	h, err := heuristic.Distance(3, testNodes())
	require.NoError(t, err)
	assert.Equal(t, 0.0, h(3))
}

func TestDistance_MemoizedAndStable(t *testing.T) {
	h, err := heuristic.Distance(3, testNodes())
	require.NoError(t, err)

	first := h(1)
	assert.InDelta(t, 2*111.319, first, 0.02)
	// Re-querying the same node returns the identical cached value.
	assert.Equal(t, first, h(1))
}

func TestDistance_UnknownNodeEvaluatesToZero(t *testing.T) {
	h, err := heuristic.Distance(3, testNodes())
	require.NoError(t, err)
	assert.Equal(t, 0.0, h(99))
}

func TestTime_BadMaxSpeed(t *testing.T) {
	for _, kmh := range []float64{0, -10} {
		_, err := heuristic.Time(3, testNodes(), kmh)
		assert.ErrorIs(t, err, heuristic.ErrBadMaxSpeed)
	}
}

func TestTime_GoalNotFound(t *testing.T) {
	_, err := heuristic.Time(42, testNodes(), heuristic.DefaultMaxKmh)
	assert.ErrorIs(t, err, heuristic.ErrGoalNotFound)
}

func TestTime_ScalesDistanceBySpeed(t *testing.T) {
	dist, err := heuristic.Distance(3, testNodes())
	require.NoError(t, err)
	tm, err := heuristic.Time(3, testNodes(), 60.0)
	require.NoError(t, err)

	// At 60 km/h one kilometer costs exactly one minute.
	assert.InDelta(t, dist(1), tm(1), 1e-9)
}

func TestTime_LowerSpeedRaisesBound(t *testing.T) {
	slow, err := heuristic.Time(3, testNodes(), 35.0)
	require.NoError(t, err)
	fast, err := heuristic.Time(3, testNodes(), 70.0)
	require.NoError(t, err)

	assert.InDelta(t, 2*fast(1), slow(1), 1e-9)
}
