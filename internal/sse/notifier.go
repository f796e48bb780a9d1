package sse

import (
	"time"

	"github.com/harvestlink/harvest_api/internal/models"
)

// CatalogNotifier is the interface services use to emit catalog-change
// events.
type CatalogNotifier interface {
	NotifyProductCreated(p *models.Product)
	NotifyProductUpdated(p *models.Product)
	NotifyProductDeleted(productID string)
}

// HubNotifier implements CatalogNotifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyProductCreated(p *models.Product) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(productToEvent(EventProductCreated, p))
}

func (n *HubNotifier) NotifyProductUpdated(p *models.Product) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(productToEvent(EventProductUpdated, p))
}

func (n *HubNotifier) NotifyProductDeleted(productID string) {
	if n.hub.ClientCount() == 0 {
		return
	}
	n.hub.Broadcast(&CatalogEvent{
		Event:     EventProductDeleted,
		ProductID: productID,
		Timestamp: time.Now(),
	})
}

func productToEvent(eventType EventType, p *models.Product) *CatalogEvent {
	return &CatalogEvent{
		Event:     eventType,
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		SellerID:  p.SellerID,
		Timestamp: time.Now(),
	}
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (n *NopNotifier) NotifyProductCreated(p *models.Product) {}
func (n *NopNotifier) NotifyProductUpdated(p *models.Product) {}
func (n *NopNotifier) NotifyProductDeleted(productID string)  {}
