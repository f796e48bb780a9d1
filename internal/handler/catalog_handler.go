package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/harvestlink/harvest_api/internal/service"
	"github.com/harvestlink/harvest_api/internal/utils"
)

// CatalogHandler handles the admin CRUD surface of the product catalog.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts returns the full catalog, including inactive listings.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.catalogService.ListProducts()
	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct returns one product by id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get product")
		return
	}
	utils.Success(c, 200, "Product retrieved successfully", product)
}

// CreateProduct creates a new listing.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.catalogService.CreateProduct(&in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	utils.Success(c, 201, "Product created successfully", product)
}

// UpdateProduct replaces an existing listing whole.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Param("id"), &in)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	utils.Success(c, 200, "Product updated successfully", product)
}

// DeleteProduct removes a listing.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Param("id")); err != nil {
		writeCatalogError(c, err)
		return
	}
	utils.Success(c, 200, "Product deleted successfully", nil)
}

// GetCategories returns the distinct catalog categories for filter
// dropdowns.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get categories")
		return
	}
	utils.Success(c, 200, "Categories retrieved successfully", gin.H{
		"categories": categories,
	})
}

func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	case errors.Is(err, utils.ErrInvalidPrice),
		errors.Is(err, utils.ErrInvalidStock),
		errors.Is(err, utils.ErrInvalidCondition):
		utils.Error(c, 400, err.Error(), "Invalid product payload")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Catalog operation failed")
	}
}
