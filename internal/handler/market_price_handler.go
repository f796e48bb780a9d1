package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/harvestlink/harvest_api/internal/service"
	"github.com/harvestlink/harvest_api/internal/utils"
)

// MarketPriceHandler serves regional reference prices.
type MarketPriceHandler struct {
	marketPriceService *service.MarketPriceService
}

// NewMarketPriceHandler constructs a MarketPriceHandler.
func NewMarketPriceHandler(marketPriceService *service.MarketPriceService) *MarketPriceHandler {
	return &MarketPriceHandler{marketPriceService: marketPriceService}
}

// GetMarketPrices returns reference prices, optionally for one region.
func (h *MarketPriceHandler) GetMarketPrices(c *gin.Context) {
	prices, err := h.marketPriceService.List(c.Request.Context(), c.Query("region"))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get market prices")
		return
	}
	utils.Success(c, 200, "Market prices retrieved successfully", gin.H{
		"prices": prices,
	})
}

// GetRegions returns all regions carrying reference prices.
func (h *MarketPriceHandler) GetRegions(c *gin.Context) {
	regions, err := h.marketPriceService.Regions(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get regions")
		return
	}
	utils.Success(c, 200, "Regions retrieved successfully", gin.H{
		"regions": regions,
	})
}
