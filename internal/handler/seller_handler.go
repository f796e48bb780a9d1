package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/harvestlink/harvest_api/internal/service"
	"github.com/harvestlink/harvest_api/internal/utils"
)

// SellerHandler serves read-only seller profile lookups.
type SellerHandler struct {
	sellerService *service.SellerService
}

// NewSellerHandler constructs a SellerHandler.
func NewSellerHandler(sellerService *service.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// GetSeller returns one seller profile by id.
func (h *SellerHandler) GetSeller(c *gin.Context) {
	seller, err := h.sellerService.GetSeller(c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrSellerNotFound) {
			utils.Error(c, 404, "SELLER_NOT_FOUND", "Seller not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get seller")
		return
	}
	utils.Success(c, 200, "Seller retrieved successfully", seller)
}
