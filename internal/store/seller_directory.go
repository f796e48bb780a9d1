package store

import (
	"sync"

	"github.com/harvestlink/harvest_api/internal/models"
)

// SellerDirectory is a read-only lookup of seller profiles by id. The
// discovery core joins against it but never mutates individual records;
// like the catalog, the whole map is swapped on reload.
type SellerDirectory struct {
	mu      sync.RWMutex
	byID    map[string]models.Seller
	ordered []models.Seller
}

// NewSellerDirectory constructs an empty SellerDirectory.
func NewSellerDirectory() *SellerDirectory {
	return &SellerDirectory{byID: make(map[string]models.Seller)}
}

// Replace swaps in a new set of seller records.
func (d *SellerDirectory) Replace(sellers []models.Seller) {
	byID := make(map[string]models.Seller, len(sellers))
	for _, s := range sellers {
		byID[s.ID] = s
	}
	d.mu.Lock()
	d.byID = byID
	d.ordered = sellers
	d.mu.Unlock()
}

// Lookup resolves a seller id. The boolean result forces callers to handle
// the missing-reference case explicitly; a sellerId that does not resolve
// is a tolerated data condition, not an error.
func (d *SellerDirectory) Lookup(id string) (models.Seller, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.byID[id]
	return s, ok
}

// All returns the current seller records in their loaded order.
func (d *SellerDirectory) All() []models.Seller {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ordered
}

// Len returns the number of sellers currently resident.
func (d *SellerDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byID)
}
