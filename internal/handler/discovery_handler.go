package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harvestlink/harvest_api/internal/geo"
	"github.com/harvestlink/harvest_api/internal/models"
	"github.com/harvestlink/harvest_api/internal/service"
	"github.com/harvestlink/harvest_api/internal/utils"
)

// DiscoveryHandler handles buyer-facing browse endpoints: the filtered
// product grid, map marker sets, and marker-click detail views.
type DiscoveryHandler struct {
	discoveryService *service.DiscoveryService
}

// NewDiscoveryHandler constructs a DiscoveryHandler.
func NewDiscoveryHandler(discoveryService *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discoveryService: discoveryService}
}

// parseCriteria builds FilterCriteria from query parameters. Criteria are
// request-scoped and never persisted; the filtering core assumes
// well-typed input, so malformed numbers are rejected here.
func parseCriteria(c *gin.Context) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		SearchQuery: c.Query("search"),
		Category:    c.Query("category"),
		Location:    c.Query("location"),
	}

	if v := c.Query("minPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, fmt.Errorf("invalid minPrice %q", v)
		}
		criteria.PriceRange.Min = f
	}
	if v := c.Query("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, fmt.Errorf("invalid maxPrice %q", v)
		}
		criteria.PriceRange.Max = &f
	}

	if v := c.Query("condition"); v != "" {
		cond := models.Condition(v)
		if !cond.Valid() {
			return criteria, fmt.Errorf("invalid condition %q", v)
		}
		criteria.Condition = cond
	}

	if v := c.Query("radiusKm"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return criteria, fmt.Errorf("invalid radiusKm %q", v)
		}
		criteria.RadiusKm = &f
	}

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr != "" || lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil || !geo.IsValidLatLng(lat, lng) {
			return criteria, fmt.Errorf("invalid viewer location %q,%q", latStr, lngStr)
		}
		criteria.UserLocation = &models.Coordinates{Lat: lat, Lng: lng}
	}

	return criteria, nil
}

// GetProducts returns the filtered product list for the grid view. Zero
// matches is a successful, empty response.
func (h *DiscoveryHandler) GetProducts(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
		return
	}

	products := h.discoveryService.FilteredProducts(criteria)
	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetMarkers returns the marker set for the map widget, in the requested
// view mode.
func (h *DiscoveryHandler) GetMarkers(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
		return
	}

	view := models.ViewMode(c.DefaultQuery("view", string(models.ViewModeProducts)))
	if !view.Valid() {
		utils.Error(c, 400, "VALIDATION_ERROR", fmt.Sprintf("invalid view %q", view))
		return
	}

	set := h.discoveryService.Markers(criteria, view)
	utils.Success(c, 200, "Markers retrieved successfully", set)
}

// GetProductDetail resolves a product-marker click against the current
// filtered list. Ids that are filtered out under the given criteria
// return 404.
func (h *DiscoveryHandler) GetProductDetail(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.discoveryService.ProductDetail(c.Param("id"), criteria)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not in current results")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to resolve product")
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", product)
}

// GetSellerDetail resolves a seller-marker click: the seller profile plus
// their currently-filtered products.
func (h *DiscoveryHandler) GetSellerDetail(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.discoveryService.SellerDetail(c.Param("id"), criteria)
	if err != nil {
		if errors.Is(err, utils.ErrSellerNotFound) {
			utils.Error(c, 404, "SELLER_NOT_FOUND", "Seller not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to resolve seller")
		return
	}
	utils.Success(c, 200, "Seller retrieved successfully", detail)
}
