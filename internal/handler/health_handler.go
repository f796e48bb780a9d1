package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harvestlink/harvest_api/internal/store"
	"github.com/harvestlink/harvest_api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	catalog *store.Catalog
	sellers *store.SellerDirectory
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(catalog *store.Catalog, sellers *store.SellerDirectory) *HealthHandler {
	return &HealthHandler{catalog: catalog, sellers: sellers}
}

// GetHealth responds with service status and resident snapshot sizes.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"snapshot": gin.H{
			"products": h.catalog.Len(),
			"sellers":  h.sellers.Len(),
		},
	})
}
