package models

import "time"

// Condition enumerates the supported harvest conditions.
type Condition string

const (
	ConditionFresh Condition = "fresh"
	ConditionGood  Condition = "good"
	ConditionFair  Condition = "fair"
)

// Valid reports whether c is one of the known condition values.
func (c Condition) Valid() bool {
	switch c {
	case ConditionFresh, ConditionGood, ConditionFair:
		return true
	}
	return false
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a geocoded position plus its human-readable address.
// Lat/Lng are optional: listings created without map input carry only
// the address and are excluded from spatial views.
type Location struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Address string   `json:"address"`
}

// Coordinates returns the lat/lng pair and whether both components are set.
func (l Location) Coordinates() (Coordinates, bool) {
	if l.Lat == nil || l.Lng == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *l.Lat, Lng: *l.Lng}, true
}

// Product represents a listing in the marketplace catalog.
type Product struct {
	ID          string     `json:"id"`
	SellerID    string     `json:"sellerId"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Variety     string     `json:"variety"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Unit        string     `json:"unit"`
	Stock       int        `json:"stock"`
	Images      []string   `json:"images"`
	Location    Location   `json:"location"`
	HarvestDate *time.Time `json:"harvestDate,omitempty"`
	Condition   Condition  `json:"condition"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
