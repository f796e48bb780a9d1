package service

import (
	"github.com/harvestlink/harvest_api/internal/models"
	"github.com/harvestlink/harvest_api/internal/store"
	"github.com/harvestlink/harvest_api/internal/utils"
)

// DiscoveryService orchestrates marketplace browsing: it runs the catalog
// filter query, derives marker projections from one filtered list per
// cycle, and resolves marker clicks against the currently-visible set
// rather than a stale catalog snapshot.
type DiscoveryService struct {
	catalog *store.Catalog
	sellers *store.SellerDirectory
}

// NewDiscoveryService constructs a DiscoveryService.
func NewDiscoveryService(catalog *store.Catalog, sellers *store.SellerDirectory) *DiscoveryService {
	return &DiscoveryService{catalog: catalog, sellers: sellers}
}

// FilteredProducts returns the products matching criteria, in catalog
// order. An empty result is a valid outcome, not an error.
func (s *DiscoveryService) FilteredProducts(criteria models.FilterCriteria) []models.Product {
	return s.catalog.GetFilteredProducts(criteria)
}

// Markers assembles the marker payload for the map widget. Both
// projections derive from the same filtered list, so whichever view the
// client toggles to stays consistent with the visible grid. The user pin
// is suppressed when no viewer location is known.
func (s *DiscoveryService) Markers(criteria models.FilterCriteria, view models.ViewMode) models.MarkerSet {
	filtered := s.FilteredProducts(criteria)

	set := models.MarkerSet{
		ViewMode: view,
		RadiusKm: criteria.RadiusKm,
	}
	if criteria.UserLocation != nil {
		set.User = &models.UserMarker{
			Type:  models.MarkerTypeUser,
			Lat:   criteria.UserLocation.Lat,
			Lng:   criteria.UserLocation.Lng,
			Label: "Your location",
		}
	}

	switch view {
	case models.ViewModeSellers:
		set.SellerMarkers = SellerMarkers(filtered, s.sellers)
	default:
		set.ProductMarkers = ProductMarkers(filtered, s.sellers)
	}
	return set
}

// ProductDetail resolves a product-marker click. The id must be present in
// the current filtered list; a product that has been filtered out (or no
// longer exists) yields ErrProductNotFound.
func (s *DiscoveryService) ProductDetail(productID string, criteria models.FilterCriteria) (models.Product, error) {
	for _, p := range s.FilteredProducts(criteria) {
		if p.ID == productID {
			return p, nil
		}
	}
	return models.Product{}, utils.ErrProductNotFound
}

// SellerDetail resolves a seller-marker click: the seller profile plus all
// of their currently-filtered products, preserving catalog order. A seller
// id missing from the directory yields ErrSellerNotFound; a resolved
// seller with zero matching products is a valid, empty detail view.
func (s *DiscoveryService) SellerDetail(sellerID string, criteria models.FilterCriteria) (models.SellerDetail, error) {
	seller, ok := s.sellers.Lookup(sellerID)
	if !ok {
		return models.SellerDetail{}, utils.ErrSellerNotFound
	}

	products := make([]models.Product, 0)
	for _, p := range s.FilteredProducts(criteria) {
		if p.SellerID == sellerID {
			products = append(products, p)
		}
	}
	return models.SellerDetail{Seller: seller, Products: products}, nil
}
