package api

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/coinpulse/internal/domain/dto"
)

// StatusHandler provides the banner and diagnostic endpoints for the service.
//
// Responsibilities:
//   - /:          Liveness banner.
//   - /api/hello: Secondary banner used by frontend smoke checks.
//   - /test:      Diagnostic object reporting backend liveness and whether
//     the CoinMarketCap key is configured.
type StatusHandler struct {
	keyConfigured func() bool // Reports whether CMC_API_KEY is set
}

// NewStatusHandler constructs a StatusHandler with the provided key check.
func NewStatusHandler(keyConfigured func() bool) *StatusHandler {
	return &StatusHandler{keyConfigured: keyConfigured}
}

// Register mounts the banner and diagnostic endpoints into the provided Gin router.
func (h *StatusHandler) Register(r *gin.Engine) {
	// Liveness banner
	// @Summary      Liveness banner
	// @Tags         status
	// @Produce      json
	// @Success      200  {object}  dto.MessageResponse
	// @Router       / [get]
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, dto.MessageResponse{Message: "Hello from the coinpulse backend!"})
	})

	// @Summary      API banner
	// @Tags         status
	// @Produce      json
	// @Success      200  {object}  dto.MessageResponse
	// @Router       /api/hello [get]
	r.GET("/api/hello", func(c *gin.Context) {
		c.JSON(200, dto.MessageResponse{Message: "Hello from the backend API!"})
	})

	// Diagnostic endpoint: reports liveness and key configuration
	// @Summary      Backend diagnostics
	// @Tags         status
	// @Produce      json
	// @Success      200  {object}  dto.StatusResponse
	// @Router       /test [get]
	r.GET("/test", func(c *gin.Context) {
		keyStatus := "❌ Not Set"
		if h.keyConfigured != nil && h.keyConfigured() {
			keyStatus = "✅ Set"
		}
		c.JSON(200, dto.StatusResponse{
			Backend:             "✅ Running",
			CoinMarketCapAPIKey: keyStatus,
		})
	})
}
