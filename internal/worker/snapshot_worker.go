package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harvestlink/harvest_api/internal/service"
)

// SnapshotWorker periodically reloads the resident catalog and seller
// directory from the database. CRUD through this service refreshes
// eagerly; the worker picks up writes made by other services sharing the
// same database.
type SnapshotWorker struct {
	catalogService *service.CatalogService
	sellerService  *service.SellerService
	interval       time.Duration
}

// NewSnapshotWorker constructs a SnapshotWorker.
func NewSnapshotWorker(catalogService *service.CatalogService, sellerService *service.SellerService, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		catalogService: catalogService,
		sellerService:  sellerService,
		interval:       interval,
	}
}

// Start begins the periodic reload loop and listens for context
// cancellation.
func (w *SnapshotWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting snapshot worker")

	// Run immediately on start
	w.run()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run()
		case <-ctx.Done():
			log.Info().Msg("Snapshot worker stopped")
			return
		}
	}
}

func (w *SnapshotWorker) run() {
	start := time.Now()

	if err := w.catalogService.Refresh(); err != nil {
		log.Error().Err(err).Msg("Failed to reload catalog snapshot")
	}
	if err := w.sellerService.Refresh(); err != nil {
		log.Error().Err(err).Msg("Failed to reload seller directory")
	}

	log.Debug().Dur("duration", time.Since(start)).Msg("Snapshot reload completed")
}
