package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harvestlink/harvest_api/internal/cache"
	"github.com/harvestlink/harvest_api/internal/config"
	"github.com/harvestlink/harvest_api/internal/database"
	"github.com/harvestlink/harvest_api/internal/handler"
	"github.com/harvestlink/harvest_api/internal/middleware"
	"github.com/harvestlink/harvest_api/internal/repository"
	"github.com/harvestlink/harvest_api/internal/service"
	"github.com/harvestlink/harvest_api/internal/sse"
	"github.com/harvestlink/harvest_api/internal/store"
	"github.com/harvestlink/harvest_api/internal/worker"
)

// main is the application entrypoint for the Harvest marketplace API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting harvest api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 4. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	marketPriceRepo := repository.NewMarketPriceRepository(db)

	// 5. Initialize resident stores and SSE hub
	catalog := store.NewCatalog()
	sellerDirectory := store.NewSellerDirectory()
	hub := sse.NewHub()

	// 6. Initialize services
	catalogSvc := service.NewCatalogService(productRepo, catalog, sse.NewHubNotifier(hub))
	sellerSvc := service.NewSellerService(sellerRepo, sellerDirectory)
	discoverySvc := service.NewDiscoveryService(catalog, sellerDirectory)
	marketPriceSvc := service.NewMarketPriceService(
		marketPriceRepo,
		cache.NewMarketPriceCache(redisClient, cfg.Cache.MarketPriceTTL),
	)

	// Seed the resident snapshots before serving traffic.
	if err := catalogSvc.Refresh(); err != nil {
		log.Error().Err(err).Msg("initial catalog load failed")
		os.Exit(1)
	}
	if err := sellerSvc.Refresh(); err != nil {
		log.Error().Err(err).Msg("initial seller directory load failed")
		os.Exit(1)
	}
	log.Info().Msg("resident snapshots loaded")

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:      handler.NewHealthHandler(catalog, sellerDirectory),
		Discovery:   handler.NewDiscoveryHandler(discoverySvc),
		Catalog:     handler.NewCatalogHandler(catalogSvc),
		Seller:      handler.NewSellerHandler(sellerSvc),
		MarketPrice: handler.NewMarketPriceHandler(marketPriceSvc),
		SSE:         handler.NewSSEHandler(hub),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(cfg.JWTSecret)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewSnapshotWorker(catalogSvc, sellerSvc, cfg.Worker.SnapshotInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health      *handler.HealthHandler
	Discovery   *handler.DiscoveryHandler
	Catalog     *handler.CatalogHandler
	Seller      *handler.SellerHandler
	MarketPrice *handler.MarketPriceHandler
	SSE         *handler.SSEHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Buyer-facing discovery routes
	discovery := router.Group("/v1/discovery")
	{
		discovery.GET("/products", handlers.Discovery.GetProducts)
		discovery.GET("/products/:id", handlers.Discovery.GetProductDetail)
		discovery.GET("/markers", handlers.Discovery.GetMarkers)
		discovery.GET("/sellers/:id", handlers.Discovery.GetSellerDetail)
	}

	// Reference data
	router.GET("/v1/sellers/:id", handlers.Seller.GetSeller)
	router.GET("/v1/market-prices", handlers.MarketPrice.GetMarketPrices)
	router.GET("/v1/market-prices/regions", handlers.MarketPrice.GetRegions)

	// Catalog change stream
	router.GET("/v1/events", handlers.SSE.Stream)

	// Admin catalog management (JWT-protected; tokens issued externally)
	admin := router.Group("/v1/admin")
	admin.Use(jwtMiddleware.Handle())
	{
		admin.GET("/products", handlers.Catalog.ListProducts)
		admin.GET("/products/categories", handlers.Catalog.GetCategories)
		admin.POST("/products", handlers.Catalog.CreateProduct)
		admin.GET("/products/:id", handlers.Catalog.GetProduct)
		admin.PUT("/products/:id", handlers.Catalog.UpdateProduct)
		admin.DELETE("/products/:id", handlers.Catalog.DeleteProduct)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
