package api

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/coinpulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all provider services already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the proxy routes under /api.
//
// Note:
//   - Banner and diagnostic endpoints (/, /api/hello, /test) are registered
//     in app.InitializeApp().
//   - There is deliberately no global request timeout: the history path makes
//     two sequential upstream calls whose own deadlines (15s + 20s) bound the
//     worst case.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.CORS(),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API ──────────────────────────────────────
	api := router.Group("/api")
	{
		cmc := api.Group("/cmc")
		{
			cmc.GET("/global", handler.CMCGlobal)
			cmc.GET("/listings", handler.CMCListings)
			cmc.GET("/quotes", handler.CMCQuotes)
		}
		api.GET("/history", handler.History)
	}

	return router
}
