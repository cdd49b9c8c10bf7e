package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/coinpulse/config"
	"github.com/guttosm/coinpulse/internal/api"
	"github.com/guttosm/coinpulse/internal/service"
	"github.com/guttosm/coinpulse/internal/upstream"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the shared upstream HTTP client.
//   - Initializes the provider services (CoinMarketCap, CoinGecko).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers the banner and diagnostic endpoints.
//   - Provides a cleanup function to release idle upstream connections.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Shared outbound client for both providers
	client := upstream.NewClient()

	// Provider services
	market := service.NewMarketService(client, cfg.CoinMarketCap)
	history := service.NewHistoryService(client, cfg.CoinGecko)

	// HTTP handler layer (provider services to HTTP mapping)
	handler := api.NewHandler(market, history, cfg.CoinMarketCap)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register banner and diagnostic endpoints
	status := api.NewStatusHandler(func() bool { return cfg.CoinMarketCap.APIKey != "" })
	status.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}
