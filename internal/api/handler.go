package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coinpulse/coinpulse/config"
	"github.com/coinpulse/coinpulse/internal/domain/dto"
	"github.com/coinpulse/coinpulse/internal/middleware"
	"github.com/coinpulse/coinpulse/internal/service"
)

// maxIntervalSec caps the OHLC bucket size a client may request (one day).
const maxIntervalSec = 86400

// Handler provides HTTP handlers for the market-data endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Interact with the service layer for data access
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	market service.MarketService
	api    config.APIConfig
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - market (service.MarketService): Market-data business logic.
//   - apiCfg (config.APIConfig): Query defaults and caps.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(market service.MarketService, apiCfg config.APIConfig) *Handler {
	return &Handler{market: market, api: apiCfg}
}

// parseLimit reads the "limit" query parameter, applying a default and a
// hard cap.
func parseLimit(c *gin.Context, def, maxLimit int) (int, bool) {
	s := c.Query("limit")
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid limit, expected positive integer", err)
		return 0, false
	}
	if n > maxLimit {
		n = maxLimit
	}
	return n, true
}

func (h *Handler) parseLimit(c *gin.Context) (int, bool) {
	return parseLimit(c, h.api.DefaultLimit, h.api.MaxLimit)
}

// parseInterval reads the "interval" query parameter (bucket size in seconds).
func (h *Handler) parseInterval(c *gin.Context) (int, bool) {
	s := c.Query("interval")
	if s == "" {
		return h.api.CandleIntervalSec, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxIntervalSec {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid interval, expected seconds in 1..86400", err)
		return 0, false
	}
	return n, true
}

// parseDate reads an optional YYYY-MM-DD query parameter.
func parseDate(c *gin.Context, name string) (*time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid "+name+" format, expected YYYY-MM-DD", err)
		return nil, false
	}
	return &parsed, true
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// GetOHLC handles GET /api/ohlc/ requests.
//
// GetOHLC godoc
// @Summary      Get OHLC candles
// @Description  Returns OHLC candles for a symbol (or all symbols), oldest first; limit keeps the newest buckets
// @Tags         ohlc
// @Produce      json
// @Param        symbol      query     string  false  "Trading symbol" example(BTCUSDT)
// @Param        start_date  query     string  false  "Start date YYYY-MM-DD" example(2025-08-20)
// @Param        end_date    query     string  false  "End date YYYY-MM-DD" example(2025-08-27)
// @Param        limit       query     int     false  "Maximum number of candles" example(1000)
// @Param        interval    query     int     false  "Bucket size in seconds" example(60)
// @Success      200         {object}  dto.OHLCResponse       "Success"
// @Failure      400         {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/ohlc/ [get]
func (h *Handler) GetOHLC(c *gin.Context) {
	symbol := normalizeSymbol(c.Query("symbol"))

	startDate, ok := parseDate(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDate(c, "end_date")
	if !ok {
		return
	}
	limit, ok := h.parseLimit(c)
	if !ok {
		return
	}
	interval, ok := h.parseInterval(c)
	if !ok {
		return
	}

	candles, err := h.market.GetOHLC(c.Request.Context(), symbol, startDate, endDate, interval, limit)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch OHLC data", err)
		return
	}

	c.JSON(http.StatusOK, dto.OHLCResponse{Data: candles, Count: len(candles), Symbol: symbol})
}

// GetLatestOHLC handles GET /api/ohlc/latest requests.
//
// GetLatestOHLC godoc
// @Summary      Get latest candle per symbol
// @Tags         ohlc
// @Produce      json
// @Param        symbol  query     string  false  "Trading symbol" example(BTCUSDT)
// @Success      200     {object}  dto.LatestOHLCResponse  "Success"
// @Failure      500     {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/ohlc/latest [get]
func (h *Handler) GetLatestOHLC(c *gin.Context) {
	symbol := normalizeSymbol(c.Query("symbol"))

	candles, err := h.market.GetLatestOHLC(c.Request.Context(), symbol, h.api.CandleIntervalSec)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch latest OHLC data", err)
		return
	}

	c.JSON(http.StatusOK, dto.LatestOHLCResponse{Data: candles})
}

// GetVolatility handles GET /api/volatility/ requests.
//
// GetVolatility godoc
// @Summary      Get rolling-window volatility
// @Description  Standard deviation of log returns of candle closes over a rolling window
// @Tags         volatility
// @Produce      json
// @Param        symbol      query     string  false  "Trading symbol" example(BTCUSDT)
// @Param        start_date  query     string  false  "Start date YYYY-MM-DD"
// @Param        end_date    query     string  false  "End date YYYY-MM-DD"
// @Param        limit       query     int     false  "Maximum number of points" example(1000)
// @Param        window      query     int     false  "Rolling window size in candles" example(20)
// @Success      200         {object}  dto.VolatilityResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500         {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/volatility/ [get]
func (h *Handler) GetVolatility(c *gin.Context) {
	symbol := normalizeSymbol(c.Query("symbol"))

	startDate, ok := parseDate(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDate(c, "end_date")
	if !ok {
		return
	}
	limit, ok := h.parseLimit(c)
	if !ok {
		return
	}
	interval, ok := h.parseInterval(c)
	if !ok {
		return
	}

	window := service.DefaultVolatilityWindow
	if s := c.Query("window"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 2 {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid window, expected integer >= 2", err)
			return
		}
		window = n
	}

	points, err := h.market.GetVolatility(c.Request.Context(), symbol, startDate, endDate, interval, window, limit)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch volatility data", err)
		return
	}

	c.JSON(http.StatusOK, dto.VolatilityResponse{Data: points, Count: len(points), Symbol: symbol})
}

// GetSymbols handles GET /api/symbols requests.
//
// GetSymbols godoc
// @Summary      List available symbols
// @Tags         symbols
// @Produce      json
// @Success      200  {object}  dto.SymbolsResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/symbols [get]
func (h *Handler) GetSymbols(c *gin.Context) {
	symbols, err := h.market.ListSymbols(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to list symbols", err)
		return
	}
	if symbols == nil {
		symbols = []string{}
	}
	c.JSON(http.StatusOK, dto.SymbolsResponse{Symbols: symbols})
}

// GetMetrics handles GET /api/metrics requests.
//
// GetMetrics godoc
// @Summary      Get 24h metrics for a symbol
// @Tags         metrics
// @Produce      json
// @Param        symbol  query     string  true  "Trading symbol" example(BTCUSDT)
// @Success      200     {object}  models.SymbolMetrics  "Success"
// @Failure      400     {object}  dto.ErrorResponse     "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse     "Not Found"
// @Failure      500     {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/metrics [get]
func (h *Handler) GetMetrics(c *gin.Context) {
	symbol := normalizeSymbol(c.Query("symbol"))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return
	}

	metrics, err := h.market.GetMetrics(c.Request.Context(), symbol, h.api.CandleIntervalSec)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute metrics", err)
		return
	}
	if metrics == nil {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found for symbol "+symbol, nil)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
