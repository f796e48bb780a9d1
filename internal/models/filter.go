package models

// PriceRange is an inclusive bound on product price. A nil Max means the
// range is unbounded above.
type PriceRange struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether price falls within the inclusive range.
func (r PriceRange) Contains(price float64) bool {
	if price < r.Min {
		return false
	}
	if r.Max != nil && price > *r.Max {
		return false
	}
	return true
}

// FilterCriteria holds the buyer's current browse filters. It is owned by
// the discovery layer, built fresh per request, and never persisted.
// Empty string fields mean "not set"; nil pointers mean "not set".
type FilterCriteria struct {
	SearchQuery  string       `json:"searchQuery,omitempty"`
	Category     string       `json:"category,omitempty"`
	Location     string       `json:"location,omitempty"`
	PriceRange   PriceRange   `json:"priceRange"`
	Condition    Condition    `json:"condition,omitempty"`
	RadiusKm     *float64     `json:"radiusKm,omitempty"`
	UserLocation *Coordinates `json:"userLocation,omitempty"`
}

// RadiusActive reports whether geospatial narrowing applies: both a radius
// and a reference location must be present.
func (c FilterCriteria) RadiusActive() bool {
	return c.RadiusKm != nil && c.UserLocation != nil
}
