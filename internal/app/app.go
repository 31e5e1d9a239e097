package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/coinpulse/coinpulse/config"
	"github.com/coinpulse/coinpulse/internal/api"
	"github.com/coinpulse/coinpulse/internal/service"
	"github.com/coinpulse/coinpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (MarketRepository, BenchRepository).
//   - Creates the service and HTTP handler layers.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (DB access)
	marketRepo := storage.NewMarketRepository(db)
	benchRepo := storage.NewBenchRepository(db)

	// Service layer (business logic)
	marketSvc := service.NewMarketService(marketRepo)
	benchSvc := service.NewBenchService(benchRepo)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(marketSvc, cfg.API)
	benchHandler := api.NewBenchHandler(benchSvc, cfg.API)

	// Setup Gin router with routes
	router := api.NewRouter(handler, benchHandler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
