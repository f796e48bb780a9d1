package service

import (
	"github.com/harvestlink/harvest_api/internal/models"
)

// SellerLookup resolves seller ids to directory profiles. The second
// return value is false when the id is unknown.
type SellerLookup interface {
	Lookup(id string) (models.Seller, bool)
}

// ProductMarkers projects a filtered product list into per-product map
// pins. Products without coordinates are skipped. A product whose seller
// cannot be resolved still gets a marker at its own location, with the
// seller name fields left empty.
func ProductMarkers(filtered []models.Product, sellers SellerLookup) []models.ProductMarker {
	markers := make([]models.ProductMarker, 0, len(filtered))
	for _, p := range filtered {
		coords, ok := p.Location.Coordinates()
		if !ok {
			continue
		}
		m := models.ProductMarker{
			Type:      models.MarkerTypeProduct,
			ProductID: p.ID,
			Lat:       coords.Lat,
			Lng:       coords.Lng,
			Label:     p.Name,
			Price:     p.Price,
			Unit:      p.Unit,
			Category:  p.Category,
			Condition: p.Condition,
			SellerID:  p.SellerID,
		}
		if len(p.Images) > 0 {
			m.Image = p.Images[0]
		}
		if s, ok := sellers.Lookup(p.SellerID); ok {
			m.SellerName = s.Name
			m.BusinessName = s.BusinessName
		}
		markers = append(markers, m)
	}
	return markers
}

// SellerMarkers projects the same filtered product list into per-seller
// aggregated pins. Products are grouped by sellerId in catalog order; a
// group whose seller does not resolve in the directory is dropped whole,
// since a seller pin without a seller identity is meaningless. Each pin
// sits at the group's first located product and embeds one summary entry
// per product.
func SellerMarkers(filtered []models.Product, sellers SellerLookup) []models.SellerMarker {
	groups := make(map[string][]models.Product)
	order := make([]string, 0)
	for _, p := range filtered {
		if _, seen := groups[p.SellerID]; !seen {
			order = append(order, p.SellerID)
		}
		groups[p.SellerID] = append(groups[p.SellerID], p)
	}

	markers := make([]models.SellerMarker, 0, len(order))
	for _, sellerID := range order {
		seller, ok := sellers.Lookup(sellerID)
		if !ok {
			continue
		}

		group := groups[sellerID]
		coords, ok := firstCoordinates(group)
		if !ok {
			continue
		}

		summaries := make([]models.ProductSummary, 0, len(group))
		for _, p := range group {
			summaries = append(summaries, models.ProductSummary{
				ID:        p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Unit:      p.Unit,
				Category:  p.Category,
				Condition: p.Condition,
			})
		}

		markers = append(markers, models.SellerMarker{
			Type:            models.MarkerTypeSeller,
			SellerID:        sellerID,
			Lat:             coords.Lat,
			Lng:             coords.Lng,
			Label:           seller.DisplayName(),
			Name:            seller.Name,
			BusinessName:    seller.BusinessName,
			ProfileImageURL: seller.ProfileImageURL,
			Products:        summaries,
		})
	}
	return markers
}

// firstCoordinates returns the coordinates of the first product in the
// group that has any, so a leading unlocated product does not hide an
// otherwise mappable seller.
func firstCoordinates(group []models.Product) (models.Coordinates, bool) {
	for _, p := range group {
		if coords, ok := p.Location.Coordinates(); ok {
			return coords, true
		}
	}
	return models.Coordinates{}, false
}
