package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvest_api/internal/models"
	"github.com/harvestlink/harvest_api/internal/store"
)

func locatedAt(lat, lng float64, address string) models.Location {
	return models.Location{Lat: &lat, Lng: &lng, Address: address}
}

func testDirectory() *store.SellerDirectory {
	d := store.NewSellerDirectory()
	d.Replace([]models.Seller{
		{ID: "farm-a", Name: "Alice Reyes", BusinessName: "Green Valley Produce"},
		{ID: "farm-b", Name: "Ben Cruz"},
	})
	return d
}

func testFiltered() []models.Product {
	return []models.Product{
		{
			ID: "p1", SellerID: "farm-a", Name: "Sweet Corn", Category: "Vegetables",
			Price: 45, Unit: "kg", Condition: models.ConditionFresh,
			Images:   []string{"https://img.example/corn.jpg"},
			Location: locatedAt(0, 0.1, "Green Valley"),
		},
		{
			ID: "p2", SellerID: "farm-a", Name: "Red Rice", Category: "Grains",
			Price: 90, Unit: "kg", Condition: models.ConditionGood,
			Location: locatedAt(0, 0.5, "Green Valley"),
		},
		{
			ID: "p3", SellerID: "ghost", Name: "Cabbage", Category: "Vegetables",
			Price: 20, Unit: "kg", Condition: models.ConditionFair,
			Location: locatedAt(1, 1, "Nowhere Farm"),
		},
		{
			ID: "p4", SellerID: "farm-b", Name: "Tomatoes", Category: "Vegetables",
			Price: 25, Unit: "kg", Condition: models.ConditionFair,
			Location: models.Location{Address: "Hilltop Farm"},
		},
	}
}

func TestProductMarkers(t *testing.T) {
	directory := testDirectory()

	t.Run("OneMarkerPerLocatedProduct", func(t *testing.T) {
		markers := ProductMarkers(testFiltered(), directory)
		// p4 has no coordinates and gets no pin.
		require.Len(t, markers, 3)
		for _, m := range markers {
			require.Equal(t, models.MarkerTypeProduct, m.Type)
		}
	})

	t.Run("ResolvedSellerNamesAreAttached", func(t *testing.T) {
		markers := ProductMarkers(testFiltered(), directory)
		require.Equal(t, "Alice Reyes", markers[0].SellerName)
		require.Equal(t, "Green Valley Produce", markers[0].BusinessName)
		require.Equal(t, "https://img.example/corn.jpg", markers[0].Image)
	})

	t.Run("MissingSellerIsTolerated", func(t *testing.T) {
		markers := ProductMarkers(testFiltered(), directory)
		var ghost *models.ProductMarker
		for i := range markers {
			if markers[i].ProductID == "p3" {
				ghost = &markers[i]
			}
		}
		require.NotNil(t, ghost, "marker must be emitted despite unresolved seller")
		require.Empty(t, ghost.SellerName)
		require.Empty(t, ghost.BusinessName)
		require.Equal(t, 1.0, ghost.Lat)
	})
}

func TestSellerMarkers(t *testing.T) {
	directory := testDirectory()

	t.Run("GroupsBySellerPreservingOrder", func(t *testing.T) {
		markers := SellerMarkers(testFiltered(), directory)
		// ghost's group is dropped; farm-b has no located product.
		require.Len(t, markers, 1)
		m := markers[0]
		require.Equal(t, "farm-a", m.SellerID)
		require.Equal(t, "Green Valley Produce", m.Label)
		require.Len(t, m.Products, 2)
		require.Equal(t, "p1", m.Products[0].ID)
		require.Equal(t, "p2", m.Products[1].ID)
	})

	t.Run("PinnedAtFirstLocatedProduct", func(t *testing.T) {
		markers := SellerMarkers(testFiltered(), directory)
		require.Equal(t, 0.0, markers[0].Lat)
		require.Equal(t, 0.1, markers[0].Lng)
	})

	t.Run("UnresolvedSellerDropsWholeGroup", func(t *testing.T) {
		markers := SellerMarkers(testFiltered(), directory)
		for _, m := range markers {
			require.NotEqual(t, "ghost", m.SellerID)
		}
	})

	t.Run("SellerSetIsSubsetOfProductSet", func(t *testing.T) {
		filtered := testFiltered()
		productSellers := make(map[string]bool)
		for _, m := range ProductMarkers(filtered, directory) {
			productSellers[m.SellerID] = true
		}
		for _, m := range SellerMarkers(filtered, directory) {
			require.True(t, productSellers[m.SellerID],
				"seller projection must not introduce sellers absent from the product projection")
		}
	})

	t.Run("CountBoundedByDistinctSellers", func(t *testing.T) {
		filtered := testFiltered()
		distinct := make(map[string]bool)
		for _, p := range filtered {
			distinct[p.SellerID] = true
		}
		require.LessOrEqual(t, len(SellerMarkers(filtered, directory)), len(distinct))
	})
}
