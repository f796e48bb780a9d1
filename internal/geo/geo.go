package geo

import (
	"math"

	"github.com/harvestlink/harvest_api/internal/models"
)

// earthRadiusKm is the mean Earth radius used by the spherical
// approximation.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// coordinates, computed with the haversine formula.
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// WithinRadius reports whether point lies within radiusKm of center.
// A radius of zero or less describes an empty search area and never
// matches, it is not treated as unbounded.
func WithinRadius(center, point models.Coordinates, radiusKm float64) bool {
	if radiusKm <= 0 {
		return false
	}
	return DistanceKm(center, point) <= radiusKm
}

// IsValidLatLng reports whether the pair is a finite, in-range coordinate.
func IsValidLatLng(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
