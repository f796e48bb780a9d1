package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/harvestlink/harvest_api/internal/models"
)

// MarketPriceRepository handles data access for regional reference prices.
type MarketPriceRepository struct {
	db *sqlx.DB
}

// NewMarketPriceRepository creates a new MarketPriceRepository.
func NewMarketPriceRepository(db *sqlx.DB) *MarketPriceRepository {
	return &MarketPriceRepository{db: db}
}

// GetAll returns reference prices, optionally narrowed to one region.
// When region is an empty string the filter is ignored.
func (r *MarketPriceRepository) GetAll(region string) ([]models.MarketPrice, error) {
	const q = `
        SELECT * FROM market_prices
        WHERE ($1 = '' OR region = $1)
        ORDER BY region, product_name`

	var prices []models.MarketPrice
	if err := r.db.Select(&prices, q, region); err != nil {
		return nil, err
	}
	return prices, nil
}

// GetRegions returns all regions that carry reference prices.
func (r *MarketPriceRepository) GetRegions() ([]string, error) {
	const q = `SELECT DISTINCT region FROM market_prices ORDER BY region`
	var regions []string
	if err := r.db.Select(&regions, q); err != nil {
		return nil, err
	}
	return regions, nil
}
