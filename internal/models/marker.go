package models

// MarkerType discriminates marker records handed to the map widget.
type MarkerType string

const (
	MarkerTypeProduct MarkerType = "product"
	MarkerTypeSeller  MarkerType = "seller"
	MarkerTypeUser    MarkerType = "user"
)

// ViewMode selects which marker projection the map displays.
type ViewMode string

const (
	ViewModeProducts ViewMode = "products"
	ViewModeSellers  ViewMode = "sellers"
)

// Valid reports whether v is a known view mode.
func (v ViewMode) Valid() bool {
	return v == ViewModeProducts || v == ViewModeSellers
}

// ProductMarker is a per-product map pin. Seller name fields are left empty
// when the seller cannot be resolved; the marker is still emitted at the
// product's own location.
type ProductMarker struct {
	Type         MarkerType `json:"type"`
	ProductID    string     `json:"productId"`
	Lat          float64    `json:"lat"`
	Lng          float64    `json:"lng"`
	Label        string     `json:"label"`
	Price        float64    `json:"price"`
	Unit         string     `json:"unit"`
	Category     string     `json:"category"`
	Condition    Condition  `json:"condition"`
	Image        string     `json:"image,omitempty"`
	SellerID     string     `json:"sellerId"`
	SellerName   string     `json:"sellerName,omitempty"`
	BusinessName string     `json:"businessName,omitempty"`
}

// ProductSummary is the lightweight listing entry embedded in a SellerMarker.
type ProductSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	Condition Condition `json:"condition"`
}

// SellerMarker is an aggregated map pin for one seller, carrying a summary
// of every currently-filtered product that belongs to them. It is pinned at
// the first filtered product's location; sellers with multiple farm
// locations are not modeled.
type SellerMarker struct {
	Type            MarkerType       `json:"type"`
	SellerID        string           `json:"sellerId"`
	Lat             float64          `json:"lat"`
	Lng             float64          `json:"lng"`
	Label           string           `json:"label"`
	Name            string           `json:"name"`
	BusinessName    string           `json:"businessName,omitempty"`
	ProfileImageURL string           `json:"profileImageUrl,omitempty"`
	Products        []ProductSummary `json:"products"`
}

// UserMarker is the viewer's own position pin.
type UserMarker struct {
	Type  MarkerType `json:"type"`
	Lat   float64    `json:"lat"`
	Lng   float64    `json:"lng"`
	Label string     `json:"label"`
}

// MarkerSet is the complete payload handed to the cluster-rendering map
// widget for one render cycle. Only the slice matching ViewMode is
// populated; RadiusKm is echoed so the widget can draw the search overlay.
type MarkerSet struct {
	ViewMode       ViewMode        `json:"viewMode"`
	RadiusKm       *float64        `json:"radiusKm,omitempty"`
	User           *UserMarker     `json:"userMarker,omitempty"`
	ProductMarkers []ProductMarker `json:"productMarkers,omitempty"`
	SellerMarkers  []SellerMarker  `json:"sellerMarkers,omitempty"`
}

// SellerDetail is the payload for a seller detail view: the resolved seller
// plus their currently-filtered products.
type SellerDetail struct {
	Seller   Seller    `json:"seller"`
	Products []Product `json:"products"`
}
