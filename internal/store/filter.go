package store

import (
	"strings"

	"github.com/harvestlink/harvest_api/internal/geo"
	"github.com/harvestlink/harvest_api/internal/models"
)

// FilterProducts applies criteria to products and returns the matches in
// their original order. It is a pure function: identical inputs always
// yield identical results, and it never fails on malformed records.
func FilterProducts(products []models.Product, criteria models.FilterCriteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, criteria) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Matches reports whether a single product satisfies every active
// predicate of the criteria. Predicates are ANDed; unset criteria fields
// are skipped.
func Matches(p models.Product, criteria models.FilterCriteria) bool {
	// Inactive and out-of-stock listings never reach buyers.
	if !p.IsActive || p.Stock <= 0 {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(criteria.SearchQuery)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.Variety), q) {
			return false
		}
	}

	if criteria.Category != "" && p.Category != criteria.Category {
		return false
	}

	if criteria.Location != "" &&
		!strings.Contains(strings.ToLower(p.Location.Address), strings.ToLower(criteria.Location)) {
		return false
	}

	if !criteria.PriceRange.Contains(p.Price) {
		return false
	}

	if criteria.Condition != "" && p.Condition != criteria.Condition {
		return false
	}

	// Geospatial narrowing only applies when both a radius and a reference
	// location are present. While it is active, a product without
	// coordinates cannot be inside the search area; otherwise such a
	// product is preserved.
	if criteria.RadiusActive() {
		coords, ok := p.Location.Coordinates()
		if !ok {
			return false
		}
		if !geo.WithinRadius(*criteria.UserLocation, coords, *criteria.RadiusKm) {
			return false
		}
	}

	return true
}
