package service

import (
	"fmt"

	"github.com/harvestlink/harvest_api/internal/models"
	"github.com/harvestlink/harvest_api/internal/repository"
	"github.com/harvestlink/harvest_api/internal/store"
	"github.com/harvestlink/harvest_api/internal/utils"
)

// SellerService keeps the resident seller directory in sync with the
// database and exposes read-only profile lookups.
type SellerService struct {
	repo      *repository.SellerRepository
	directory *store.SellerDirectory
}

// NewSellerService constructs a SellerService.
func NewSellerService(repo *repository.SellerRepository, directory *store.SellerDirectory) *SellerService {
	return &SellerService{repo: repo, directory: directory}
}

// Refresh reloads the resident seller directory from the database.
func (s *SellerService) Refresh() error {
	sellers, err := s.repo.GetAll()
	if err != nil {
		return fmt.Errorf("reload seller directory: %w", err)
	}
	s.directory.Replace(sellers)
	return nil
}

// GetSeller returns one seller profile from the resident directory.
func (s *SellerService) GetSeller(id string) (models.Seller, error) {
	seller, ok := s.directory.Lookup(id)
	if !ok {
		return models.Seller{}, utils.ErrSellerNotFound
	}
	return seller, nil
}
