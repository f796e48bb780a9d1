package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvest_api/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func locatedAt(lat, lng float64, address string) models.Location {
	return models.Location{Lat: &lat, Lng: &lng, Address: address}
}

func testCatalog() []models.Product {
	return []models.Product{
		{
			ID: "p1", SellerID: "farm-a", Name: "Sweet Corn", Category: "Vegetables",
			Variety: "Glutinous", Price: 45, Unit: "kg", Stock: 120,
			Location: locatedAt(0, 0.1, "Riverside Farm, Green Valley"),
			Condition: models.ConditionFresh, IsActive: true,
		},
		{
			ID: "p2", SellerID: "farm-a", Name: "Red Rice", Category: "Grains",
			Variety: "Heirloom", Price: 90, Unit: "kg", Stock: 40,
			Location: locatedAt(0, 0.5, "Riverside Farm, Green Valley"),
			Condition: models.ConditionGood, IsActive: true,
		},
		{
			ID: "p3", SellerID: "farm-b", Name: "Carrots", Category: "Vegetables",
			Variety: "Nantes", Price: 30, Unit: "kg", Stock: 0,
			Location: locatedAt(1, 1, "Hilltop Farm, North Ridge"),
			Condition: models.ConditionFresh, IsActive: true,
		},
		{
			ID: "p4", SellerID: "farm-b", Name: "Tomatoes", Category: "Vegetables",
			Variety: "Roma", Price: 25, Unit: "kg", Stock: 60,
			Location: models.Location{Address: "Hilltop Farm, North Ridge"},
			Condition: models.ConditionFair, IsActive: true,
		},
		{
			ID: "p5", SellerID: "farm-c", Name: "Mangoes", Category: "Fruits",
			Variety: "Carabao", Price: 150, Unit: "crate", Stock: 15,
			Location: locatedAt(2, 2, "Sunrise Orchard, East Plains"),
			Condition: models.ConditionFresh, IsActive: false,
		},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	catalog := testCatalog()

	t.Run("NoCriteriaReturnsActiveInStockOnly", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{})
		// p3 is out of stock, p5 is inactive.
		require.Equal(t, []string{"p1", "p2", "p4"}, ids(got))
	})

	t.Run("OutputIsSubsetOfCatalog", func(t *testing.T) {
		known := make(map[string]bool, len(catalog))
		for _, p := range catalog {
			known[p.ID] = true
		}
		got := FilterProducts(catalog, models.FilterCriteria{SearchQuery: "r"})
		for _, p := range got {
			require.True(t, known[p.ID], "filter must never fabricate products")
		}
	})

	t.Run("Idempotence", func(t *testing.T) {
		criteria := models.FilterCriteria{Category: "Vegetables"}
		first := FilterProducts(catalog, criteria)
		second := FilterProducts(catalog, criteria)
		require.Equal(t, ids(first), ids(second))
	})

	t.Run("SearchMatchesNameCategoryOrVariety", func(t *testing.T) {
		require.Equal(t, []string{"p1"}, ids(FilterProducts(catalog, models.FilterCriteria{SearchQuery: "CORN"})))
		require.Equal(t, []string{"p2"}, ids(FilterProducts(catalog, models.FilterCriteria{SearchQuery: "grains"})))
		require.Equal(t, []string{"p4"}, ids(FilterProducts(catalog, models.FilterCriteria{SearchQuery: "roma"})))
	})

	t.Run("SearchAndCategoryCombine", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{SearchQuery: "corn", Category: "Vegetables"})
		require.Equal(t, []string{"p1"}, ids(got))

		// Same search text with a mismatched category excludes the product
		// regardless of the text match.
		got = FilterProducts(catalog, models.FilterCriteria{SearchQuery: "corn", Category: "Grains"})
		require.Empty(t, got)
	})

	t.Run("LocationMatchesAddressSubstring", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{Location: "green valley"})
		require.Equal(t, []string{"p1", "p2"}, ids(got))
	})

	t.Run("PriceRangeIsInclusive", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{
			PriceRange: models.PriceRange{Min: 25, Max: floatPtr(45)},
		})
		require.Equal(t, []string{"p1", "p4"}, ids(got))

		// Boundary values are included on both ends.
		got = FilterProducts(catalog, models.FilterCriteria{
			PriceRange: models.PriceRange{Min: 45, Max: floatPtr(45)},
		})
		require.Equal(t, []string{"p1"}, ids(got))
	})

	t.Run("ConditionExactMatch", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{Condition: models.ConditionFair})
		require.Equal(t, []string{"p4"}, ids(got))
	})

	t.Run("RadiusTwentyIncludesNearbyProduct", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{
			RadiusKm:     floatPtr(20),
			UserLocation: &models.Coordinates{Lat: 0, Lng: 0},
		})
		// p1 is ~11.1 km from the origin; p2 is ~55 km out; p4 has no
		// coordinates and is excluded while the radius is active.
		require.Equal(t, []string{"p1"}, ids(got))
	})

	t.Run("RadiusFiveExcludesSameProduct", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{
			RadiusKm:     floatPtr(5),
			UserLocation: &models.Coordinates{Lat: 0, Lng: 0},
		})
		require.Empty(t, got)
	})

	t.Run("RadiusWithoutUserLocationIsSkipped", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{RadiusKm: floatPtr(5)})
		require.Equal(t, []string{"p1", "p2", "p4"}, ids(got))
	})

	t.Run("UnlocatedProductSurvivesNonSpatialFilters", func(t *testing.T) {
		got := FilterProducts(catalog, models.FilterCriteria{Category: "Vegetables"})
		require.Contains(t, ids(got), "p4")
	})

	t.Run("PriceScenarioKeepsOnlyCheaperListing", func(t *testing.T) {
		two := []models.Product{
			{ID: "1", SellerID: "A", Price: 45, Category: "Grains", Stock: 10, IsActive: true},
			{ID: "2", SellerID: "A", Price: 90, Category: "Vegetables", Stock: 10, IsActive: true},
		}
		got := FilterProducts(two, models.FilterCriteria{
			PriceRange: models.PriceRange{Min: 0, Max: floatPtr(50)},
		})
		require.Equal(t, []string{"1"}, ids(got))
	})
}

func TestCatalogSnapshotSwap(t *testing.T) {
	catalog := NewCatalog()
	catalog.Replace(testCatalog())
	require.Equal(t, 5, catalog.Len())

	before := catalog.GetFilteredProducts(models.FilterCriteria{})
	require.Equal(t, []string{"p1", "p2", "p4"}, ids(before))

	// A wholesale replace does not disturb results already derived.
	catalog.Replace(nil)
	require.Equal(t, []string{"p1", "p2", "p4"}, ids(before))
	require.Empty(t, catalog.GetFilteredProducts(models.FilterCriteria{}))
}
