package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harvestlink/harvest_api/internal/models"
	"github.com/harvestlink/harvest_api/internal/repository"
	"github.com/harvestlink/harvest_api/internal/sse"
	"github.com/harvestlink/harvest_api/internal/store"
	"github.com/harvestlink/harvest_api/internal/utils"
)

// CatalogService owns the CRUD surface of the catalog and keeps the
// resident discovery snapshot in sync with the database. Every mutation
// replaces the whole record and reloads the snapshot afterwards, so
// queries already in flight keep the catalog state they started with.
type CatalogService struct {
	repo     *repository.ProductRepository
	catalog  *store.Catalog
	notifier sse.CatalogNotifier
}

// NewCatalogService constructs a CatalogService. The notifier broadcasts
// catalog changes to connected browse clients so they can re-run their
// current filter query.
func NewCatalogService(repo *repository.ProductRepository, catalog *store.Catalog, notifier sse.CatalogNotifier) *CatalogService {
	if notifier == nil {
		notifier = &sse.NopNotifier{}
	}
	return &CatalogService{repo: repo, catalog: catalog, notifier: notifier}
}

// ProductInput carries the caller-supplied fields of a product. The same
// shape serves create and whole-record update.
type ProductInput struct {
	SellerID    string           `json:"sellerId" binding:"required"`
	Name        string           `json:"name" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Variety     string           `json:"variety"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Unit        string           `json:"unit" binding:"required"`
	Stock       int              `json:"stock"`
	Images      []string         `json:"images"`
	Location    models.Location  `json:"location"`
	HarvestDate *time.Time       `json:"harvestDate"`
	Condition   models.Condition `json:"condition" binding:"required"`
	IsActive    bool             `json:"isActive"`
}

func (in *ProductInput) validate() error {
	if in.Price < 0 {
		return utils.ErrInvalidPrice
	}
	if in.Stock < 0 {
		return utils.ErrInvalidStock
	}
	if !in.Condition.Valid() {
		return utils.ErrInvalidCondition
	}
	return nil
}

func (in *ProductInput) apply(p *models.Product) {
	p.SellerID = in.SellerID
	p.Name = in.Name
	p.Category = in.Category
	p.Variety = in.Variety
	p.Description = in.Description
	p.Price = in.Price
	p.Unit = in.Unit
	p.Stock = in.Stock
	p.Images = in.Images
	p.Location = in.Location
	p.HarvestDate = in.HarvestDate
	p.Condition = in.Condition
	p.IsActive = in.IsActive
}

// Refresh reloads the resident catalog snapshot from the database.
func (s *CatalogService) Refresh() error {
	products, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	s.catalog.Replace(products)
	return nil
}

// ListProducts returns the full resident catalog, including inactive
// listings, for management views.
func (s *CatalogService) ListProducts() []models.Product {
	return s.catalog.Snapshot()
}

// GetProduct returns one product by id from the database.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// CreateProduct inserts a new listing and refreshes the snapshot.
func (s *CatalogService) CreateProduct(in *ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := &models.Product{ID: uuid.New().String()}
	in.apply(p)
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	s.notifier.NotifyProductCreated(p)
	return p, nil
}

// UpdateProduct replaces an existing listing whole and refreshes the
// snapshot.
func (s *CatalogService) UpdateProduct(id string, in *ProductInput) (*models.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := &models.Product{ID: id}
	in.apply(p)
	if err := s.repo.Update(p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	s.notifier.NotifyProductUpdated(p)
	return p, nil
}

// DeleteProduct removes a listing and refreshes the snapshot.
func (s *CatalogService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if err := s.Refresh(); err != nil {
		return err
	}
	s.notifier.NotifyProductDeleted(id)
	return nil
}

// Categories returns the distinct categories present in the catalog.
func (s *CatalogService) Categories() ([]string, error) {
	return s.repo.GetDistinctCategories()
}
