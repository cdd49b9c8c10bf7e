package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coinpulse/config"
	"github.com/guttosm/coinpulse/internal/domain/dto"
	"github.com/guttosm/coinpulse/internal/middleware"
	"github.com/guttosm/coinpulse/internal/service"
	"github.com/guttosm/coinpulse/internal/upstream"
)

// Handler provides HTTP handlers for the market-data proxy endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Pre-check the CoinMarketCap API key where required
//   - Delegate to the provider services
//   - Translate service errors into the uniform error envelope
type Handler struct {
	market  service.MarketService
	history service.HistoryService
	cmc     config.CoinMarketCapConfig
}

// NewHandler constructs a new Handler instance.
//
// The CoinMarketCap configuration is passed in explicitly (not read from
// ambient globals) so tests can substitute a key or its absence.
func NewHandler(market service.MarketService, history service.HistoryService, cmc config.CoinMarketCapConfig) *Handler {
	return &Handler{market: market, history: history, cmc: cmc}
}

// CMCGlobal handles GET /api/cmc/global requests.
//
// CMCGlobal godoc
// @Summary      Global market metrics
// @Description  Proxies CoinMarketCap global metrics; the upstream data object passes through unchanged
// @Tags         cmc
// @Produce      json
// @Param        convert  query     string  false  "Quote currency code (3-6 chars)"  default(USD)
// @Success      200      {object}  dto.DataResponse       "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream Unreachable"
// @Failure      503      {object}  dto.ErrorResponse      "API Key Missing"
// @Router       /api/cmc/global [get]
func (h *Handler) CMCGlobal(c *gin.Context) {
	convert, ok := h.convertParam(c)
	if !ok {
		return
	}
	if !h.requireAPIKey(c) {
		return
	}

	data, err := h.market.Global(c.Request.Context(), convert)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: data})
}

// CMCListings handles GET /api/cmc/listings requests.
//
// CMCListings godoc
// @Summary      Ranked listings
// @Description  Proxies CoinMarketCap listings sorted by market cap, capped at limit
// @Tags         cmc
// @Produce      json
// @Param        convert  query     string  false  "Quote currency code (3-6 chars)"  default(USD)
// @Param        limit    query     int     false  "Number of listings (1-500)"        default(100)
// @Success      200      {object}  dto.DataResponse       "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream Unreachable"
// @Failure      503      {object}  dto.ErrorResponse      "API Key Missing"
// @Router       /api/cmc/listings [get]
func (h *Handler) CMCListings(c *gin.Context) {
	convert, ok := h.convertParam(c)
	if !ok {
		return
	}

	// ─── Validate "limit" param before any upstream call ──────
	limit := 100
	if s := c.Query("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "limit must be an integer", err)
			return
		}
		limit = parsed
	}
	if limit < 1 || limit > 500 {
		middleware.AbortWithError(c, http.StatusBadRequest, "limit must be between 1 and 500", nil)
		return
	}

	if !h.requireAPIKey(c) {
		return
	}

	data, err := h.market.Listings(c.Request.Context(), convert, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: data})
}

// CMCQuotes handles GET /api/cmc/quotes requests.
//
// CMCQuotes godoc
// @Summary      Multi-symbol quotes
// @Description  Proxies CoinMarketCap latest quotes for a comma-separated symbol list
// @Tags         cmc
// @Produce      json
// @Param        symbols  query     string  true   "Comma-separated symbols, e.g. BTC,ETH"
// @Param        convert  query     string  false  "Quote currency code (3-6 chars)"  default(USD)
// @Success      200      {object}  dto.DataResponse       "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream Unreachable"
// @Failure      503      {object}  dto.ErrorResponse      "API Key Missing"
// @Router       /api/cmc/quotes [get]
func (h *Handler) CMCQuotes(c *gin.Context) {
	symbols := strings.TrimSpace(c.Query("symbols"))
	if symbols == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbols is required", nil)
		return
	}
	convert, ok := h.convertParam(c)
	if !ok {
		return
	}
	if !h.requireAPIKey(c) {
		return
	}

	data, err := h.market.Quotes(c.Request.Context(), symbols, convert)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: data})
}

// History handles GET /api/history requests.
//
// The CoinGecko-backed path needs no API key. Resolution and chart fetch are
// sequential; a failed resolution answers 404 without a chart call.
//
// History godoc
// @Summary      Historical price series
// @Description  Resolves the symbol against the CoinGecko catalog and returns the price chart
// @Tags         history
// @Produce      json
// @Param        symbol    query     string  true   "Ticker symbol, e.g. BTC"
// @Param        convert   query     string  false  "Quote currency code (3-6 chars)"  default(USD)
// @Param        days      query     string  false  "Positive integer or 'max'"         default(30)
// @Param        interval  query     string  false  "minutely, hourly or daily"
// @Success      200       {object}  dto.HistoryResponse    "Success"
// @Failure      400       {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404       {object}  dto.ErrorResponse      "Symbol Not Found"
// @Failure      502       {object}  dto.ErrorResponse      "Upstream Unreachable"
// @Router       /api/history [get]
func (h *Handler) History(c *gin.Context) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return
	}
	convert, ok := h.convertParam(c)
	if !ok {
		return
	}

	days := c.DefaultQuery("days", "30")
	if !validDays(days) {
		middleware.AbortWithError(c, http.StatusBadRequest, "days must be a positive integer or 'max'", nil)
		return
	}

	interval := c.Query("interval")
	if !validInterval(interval) {
		middleware.AbortWithError(c, http.StatusBadRequest, "interval must be one of minutely, hourly, daily", nil)
		return
	}

	series, err := h.history.History(c.Request.Context(), symbol, convert, days, interval)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{
		Symbol:  strings.ToUpper(symbol),
		Convert: strings.ToUpper(convert),
		Points:  series.Points,
	})
}

// convertParam reads and validates the "convert" query parameter.
// Writes a 400 response and returns ok=false when the code is malformed.
func (h *Handler) convertParam(c *gin.Context) (string, bool) {
	convert := c.DefaultQuery("convert", "USD")
	if len(convert) < 3 || len(convert) > 6 {
		middleware.AbortWithError(c, http.StatusBadRequest, "convert must be a 3-6 character currency code", nil)
		return "", false
	}
	return convert, true
}

// requireAPIKey performs the pre-flight configuration check for the
// CoinMarketCap-backed endpoints. Without a key the request is rejected with
// 503 before any network call is made.
func (h *Handler) requireAPIKey(c *gin.Context) bool {
	if h.cmc.APIKey == "" {
		middleware.AbortWithError(c, http.StatusServiceUnavailable, service.ErrAPIKeyMissing.Error(), nil)
		return false
	}
	return true
}

func validDays(days string) bool {
	if days == "max" {
		return true
	}
	n, err := strconv.Atoi(days)
	return err == nil && n > 0
}

func validInterval(interval string) bool {
	switch interval {
	case "", "minutely", "hourly", "daily":
		return true
	}
	return false
}

// respondServiceError maps service errors onto the uniform outward error shape:
//   - upstream rejection: the upstream's own status code, body verbatim
//   - symbol not found:   404, message naming the symbol
//   - transport failure:  502, underlying cause description
func respondServiceError(c *gin.Context, err error) {
	var upErr *service.UpstreamError
	var notFound *service.SymbolNotFoundError
	var netErr *upstream.NetworkError

	switch {
	case errors.As(err, &upErr):
		middleware.AbortWithError(c, upErr.Status, upErr.Body, nil)
	case errors.As(err, &notFound):
		middleware.AbortWithError(c, http.StatusNotFound, notFound.Error(), nil)
	case errors.As(err, &netErr):
		middleware.AbortWithError(c, http.StatusBadGateway, netErr.Cause.Error(), nil)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch market data", err)
	}
}
