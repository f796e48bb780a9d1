package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvest_api/internal/models"
	"github.com/harvestlink/harvest_api/internal/store"
	"github.com/harvestlink/harvest_api/internal/utils"
)

func floatPtr(f float64) *float64 { return &f }

func newTestDiscovery() *DiscoveryService {
	catalog := store.NewCatalog()
	products := testFiltered()
	for i := range products {
		products[i].Stock = 10
		products[i].IsActive = true
	}
	catalog.Replace(products)
	return NewDiscoveryService(catalog, testDirectory())
}

func TestDiscoveryMarkers(t *testing.T) {
	svc := newTestDiscovery()

	t.Run("ProductsViewCarriesProductMarkers", func(t *testing.T) {
		set := svc.Markers(models.FilterCriteria{}, models.ViewModeProducts)
		require.Equal(t, models.ViewModeProducts, set.ViewMode)
		require.NotEmpty(t, set.ProductMarkers)
		require.Empty(t, set.SellerMarkers)
	})

	t.Run("SellersViewCarriesSellerMarkers", func(t *testing.T) {
		set := svc.Markers(models.FilterCriteria{}, models.ViewModeSellers)
		require.Equal(t, models.ViewModeSellers, set.ViewMode)
		require.NotEmpty(t, set.SellerMarkers)
		require.Empty(t, set.ProductMarkers)
	})

	t.Run("UserPinSuppressedWithoutViewerLocation", func(t *testing.T) {
		set := svc.Markers(models.FilterCriteria{}, models.ViewModeProducts)
		require.Nil(t, set.User)
	})

	t.Run("UserPinAndRadiusEchoedWhenPresent", func(t *testing.T) {
		criteria := models.FilterCriteria{
			RadiusKm:     floatPtr(20),
			UserLocation: &models.Coordinates{Lat: 0, Lng: 0},
		}
		set := svc.Markers(criteria, models.ViewModeProducts)
		require.NotNil(t, set.User)
		require.Equal(t, models.MarkerTypeUser, set.User.Type)
		require.NotNil(t, set.RadiusKm)
		require.Equal(t, 20.0, *set.RadiusKm)
	})

	t.Run("ViewsStayConsistentWithFilteredList", func(t *testing.T) {
		criteria := models.FilterCriteria{Category: "Vegetables"}
		filtered := svc.FilteredProducts(criteria)

		products := svc.Markers(criteria, models.ViewModeProducts)
		sellers := svc.Markers(criteria, models.ViewModeSellers)

		visible := make(map[string]bool)
		for _, p := range filtered {
			visible[p.ID] = true
		}
		for _, m := range products.ProductMarkers {
			require.True(t, visible[m.ProductID])
		}
		for _, m := range sellers.SellerMarkers {
			for _, summary := range m.Products {
				require.True(t, visible[summary.ID])
			}
		}
	})
}

func TestDiscoveryProductDetail(t *testing.T) {
	svc := newTestDiscovery()

	t.Run("ResolvesProductInCurrentResults", func(t *testing.T) {
		p, err := svc.ProductDetail("p1", models.FilterCriteria{})
		require.NoError(t, err)
		require.Equal(t, "Sweet Corn", p.Name)
	})

	t.Run("FilteredOutProductIsNotFound", func(t *testing.T) {
		// p1 is a vegetable; under a Grains filter it is not clickable.
		_, err := svc.ProductDetail("p1", models.FilterCriteria{Category: "Grains"})
		require.ErrorIs(t, err, utils.ErrProductNotFound)
	})

	t.Run("UnknownIdIsNotFound", func(t *testing.T) {
		_, err := svc.ProductDetail("nope", models.FilterCriteria{})
		require.ErrorIs(t, err, utils.ErrProductNotFound)
	})
}

func TestDiscoverySellerDetail(t *testing.T) {
	svc := newTestDiscovery()

	t.Run("GathersCurrentlyFilteredProducts", func(t *testing.T) {
		detail, err := svc.SellerDetail("farm-a", models.FilterCriteria{})
		require.NoError(t, err)
		require.Equal(t, "Green Valley Produce", detail.Seller.BusinessName)
		require.Len(t, detail.Products, 2)
	})

	t.Run("RespectsActiveCriteria", func(t *testing.T) {
		detail, err := svc.SellerDetail("farm-a", models.FilterCriteria{Category: "Grains"})
		require.NoError(t, err)
		require.Len(t, detail.Products, 1)
		require.Equal(t, "p2", detail.Products[0].ID)
	})

	t.Run("ZeroMatchesIsAnEmptyDetailNotAnError", func(t *testing.T) {
		detail, err := svc.SellerDetail("farm-a", models.FilterCriteria{Category: "Dairy"})
		require.NoError(t, err)
		require.Empty(t, detail.Products)
	})

	t.Run("UnknownSellerIsNotFound", func(t *testing.T) {
		_, err := svc.SellerDetail("ghost", models.FilterCriteria{})
		require.ErrorIs(t, err, utils.ErrSellerNotFound)
	})
}
