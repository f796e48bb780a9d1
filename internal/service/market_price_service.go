package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/harvestlink/harvest_api/internal/cache"
	"github.com/harvestlink/harvest_api/internal/models"
	"github.com/harvestlink/harvest_api/internal/repository"
)

// MarketPriceService serves regional reference prices with a cache-aside
// Redis layer. Reference rows are never filtered; they are handed to
// dashboards verbatim.
type MarketPriceService struct {
	repo  *repository.MarketPriceRepository
	cache *cache.MarketPriceCache
}

// NewMarketPriceService constructs a MarketPriceService.
func NewMarketPriceService(repo *repository.MarketPriceRepository, cache *cache.MarketPriceCache) *MarketPriceService {
	return &MarketPriceService{repo: repo, cache: cache}
}

// List returns reference prices, optionally narrowed to one region. Cache
// failures fall through to the database; a cold or broken cache never
// breaks the listing.
func (s *MarketPriceService) List(ctx context.Context, region string) ([]models.MarketPrice, error) {
	if s.cache != nil {
		if prices, err := s.cache.Get(ctx, region); err == nil {
			return prices, nil
		}
	}

	prices, err := s.repo.GetAll(region)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, region, prices); err != nil {
			log.Warn().Err(err).Str("region", region).Msg("failed to cache market prices")
		}
	}
	return prices, nil
}

// Regions returns all regions that carry reference prices.
func (s *MarketPriceService) Regions(ctx context.Context) ([]string, error) {
	return s.repo.GetRegions()
}
