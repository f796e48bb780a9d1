package geo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvest_api/internal/models"
)

func TestDistanceKm(t *testing.T) {
	t.Run("ZeroForIdenticalPoints", func(t *testing.T) {
		p := models.Coordinates{Lat: -6.2, Lng: 106.8}
		require.InDelta(t, 0, DistanceKm(p, p), 1e-9)
	})

	t.Run("OneDegreeAlongEquator", func(t *testing.T) {
		a := models.Coordinates{Lat: 0, Lng: 0}
		b := models.Coordinates{Lat: 0, Lng: 1}
		// One degree of longitude at the equator is ~111.19 km on a
		// 6371 km sphere.
		require.InDelta(t, 111.19, DistanceKm(a, b), 0.05)
	})

	t.Run("TenthOfADegreeOfLatitude", func(t *testing.T) {
		a := models.Coordinates{Lat: 0, Lng: 0}
		b := models.Coordinates{Lat: 0, Lng: 0.1}
		require.InDelta(t, 11.12, DistanceKm(a, b), 0.05)
	})

	t.Run("Symmetry", func(t *testing.T) {
		a := models.Coordinates{Lat: 48.8566, Lng: 2.3522}
		b := models.Coordinates{Lat: 51.5074, Lng: -0.1278}
		require.InDelta(t, DistanceKm(a, b), DistanceKm(b, a), 1e-9)
	})
}

func TestWithinRadius(t *testing.T) {
	center := models.Coordinates{Lat: 0, Lng: 0}
	point := models.Coordinates{Lat: 0, Lng: 0.1} // ~11.12 km away

	t.Run("InsideRadius", func(t *testing.T) {
		require.True(t, WithinRadius(center, point, 20))
	})

	t.Run("OutsideRadius", func(t *testing.T) {
		require.False(t, WithinRadius(center, point, 5))
	})

	t.Run("BoundaryIsInclusive", func(t *testing.T) {
		d := DistanceKm(center, point)
		require.True(t, WithinRadius(center, point, d))
	})

	t.Run("ZeroRadiusIsEmptySearchArea", func(t *testing.T) {
		// Radius <= 0 never matches, even the center itself.
		require.False(t, WithinRadius(center, center, 0))
		require.False(t, WithinRadius(center, point, -3))
	})
}

func TestIsValidLatLng(t *testing.T) {
	require.True(t, IsValidLatLng(0, 0))
	require.True(t, IsValidLatLng(-90, 180))
	require.False(t, IsValidLatLng(90.1, 0))
	require.False(t, IsValidLatLng(0, -180.5))
}
