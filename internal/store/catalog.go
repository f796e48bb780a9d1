package store

import (
	"sync"

	"github.com/harvestlink/harvest_api/internal/models"
)

// Catalog holds the resident product catalog that discovery queries run
// against. The backing slice is swapped wholesale on reload or after a CRUD
// commit, so a derivation already in flight observes either the fully-old
// or the fully-new catalog, never a mix.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewCatalog constructs an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Replace swaps in a new catalog snapshot.
func (c *Catalog) Replace(products []models.Product) {
	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
}

// Snapshot returns the current catalog slice. Callers must treat it as
// read-only; mutations go through Replace.
func (c *Catalog) Snapshot() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products
}

// Len returns the number of products currently resident.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// GetFilteredProducts returns the products matching criteria, in catalog
// order. The result is a fresh slice over the current snapshot.
func (c *Catalog) GetFilteredProducts(criteria models.FilterCriteria) []models.Product {
	return FilterProducts(c.Snapshot(), criteria)
}
