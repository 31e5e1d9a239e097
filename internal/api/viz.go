package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coinpulse/coinpulse/internal/domain/models"
	"github.com/coinpulse/coinpulse/internal/middleware"
	"github.com/coinpulse/coinpulse/internal/viz"
)

// requireSymbolCandles fetches candles for a single mandatory symbol; it
// writes the error response itself and returns ok=false when the caller
// should stop.
func (h *Handler) requireSymbolCandles(c *gin.Context) (string, []models.Candle, bool) {
	symbol := normalizeSymbol(c.Query("symbol"))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
		return "", nil, false
	}
	limit, ok := h.parseLimit(c)
	if !ok {
		return "", nil, false
	}
	interval, ok := h.parseInterval(c)
	if !ok {
		return "", nil, false
	}

	candles, err := h.market.GetOHLC(c.Request.Context(), symbol, nil, nil, interval, limit)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch OHLC data", err)
		return "", nil, false
	}
	if len(candles) == 0 {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found for symbol "+symbol, nil)
		return "", nil, false
	}
	return symbol, candles, true
}

// GetCandlestickChart handles GET /api/viz/candlestick requests.
//
// GetCandlestickChart godoc
// @Summary      Candlestick chart figure
// @Description  Returns a Plotly figure document ({"data": [...], "layout": {...}}) ready for plotly.js
// @Tags         viz
// @Produce      json
// @Param        symbol  query     string  true   "Trading symbol" example(BTCUSDT)
// @Param        limit   query     int     false  "Maximum number of candles" example(1000)
// @Success      200     {object}  viz.Figure         "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/viz/candlestick [get]
func (h *Handler) GetCandlestickChart(c *gin.Context) {
	symbol, candles, ok := h.requireSymbolCandles(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, viz.Candlestick(symbol, candles))
}

// GetPriceLineChart handles GET /api/viz/price-line requests.
//
// GetPriceLineChart godoc
// @Summary      Closing-price line chart figure
// @Tags         viz
// @Produce      json
// @Param        symbol  query     string  true   "Trading symbol" example(BTCUSDT)
// @Param        limit   query     int     false  "Maximum number of candles" example(1000)
// @Success      200     {object}  viz.Figure         "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/viz/price-line [get]
func (h *Handler) GetPriceLineChart(c *gin.Context) {
	symbol, candles, ok := h.requireSymbolCandles(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, viz.PriceLine(symbol, candles))
}

// GetVolumeChart handles GET /api/viz/volume requests.
//
// GetVolumeChart godoc
// @Summary      Traded-volume bar chart figure
// @Tags         viz
// @Produce      json
// @Param        symbol  query     string  true   "Trading symbol" example(BTCUSDT)
// @Param        limit   query     int     false  "Maximum number of candles" example(1000)
// @Success      200     {object}  viz.Figure         "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/viz/volume [get]
func (h *Handler) GetVolumeChart(c *gin.Context) {
	symbol, candles, ok := h.requireSymbolCandles(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, viz.VolumeBars(symbol, candles))
}

// GetVolatilityChart handles GET /api/viz/volatility requests.
//
// GetVolatilityChart godoc
// @Summary      Volatility area chart figure
// @Tags         viz
// @Produce      json
// @Param        symbol  query     string  true   "Trading symbol" example(BTCUSDT)
// @Param        limit   query     int     false  "Maximum number of points" example(1000)
// @Param        window  query     int     false  "Rolling window size in candles" example(20)
// @Success      200     {object}  viz.Figure         "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/viz/volatility [get]
func (h *Handler) GetVolatilityChart(c *gin.Context) {
	symbol := normalizeSymbol(c.Query("symbol"))
	if symbol == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbol is required", nil)
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

	points, err := h.market.GetVolatility(c.Request.Context(), symbol, nil, nil, interval, 0, limit)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch volatility data", err)
		return
	}
	if len(points) == 0 {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found for symbol "+symbol, nil)
		return
	}
	c.JSON(http.StatusOK, viz.VolatilityArea(symbol, points))
}

// GetMultiSymbolChart handles GET /api/viz/multi-symbol requests.
//
// GetMultiSymbolChart godoc
// @Summary      Multi-symbol price comparison figure
// @Tags         viz
// @Produce      json
// @Param        symbols  query     string  true   "Comma-separated symbols" example(BTCUSDT,ETHUSDT)
// @Param        limit    query     int     false  "Maximum number of candles per symbol" example(1000)
// @Success      200      {object}  viz.Figure         "Success"
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse  "Not Found"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/viz/multi-symbol [get]
func (h *Handler) GetMultiSymbolChart(c *gin.Context) {
	raw := c.Query("symbols")
	var symbols []string
	for _, part := range strings.Split(raw, ",") {
		if s := normalizeSymbol(part); s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		middleware.AbortWithError(c, http.StatusBadRequest, "symbols is required, expected comma-separated list", nil)
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

	series := make(map[string][]models.Candle, len(symbols))
	found := false
	for _, sym := range symbols {
		candles, err := h.market.GetOHLC(c.Request.Context(), sym, nil, nil, interval, limit)
		if err != nil {
			middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch OHLC data", err)
			return
		}
		if len(candles) > 0 {
			found = true
		}
		series[sym] = candles
	}
	if !found {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found for requested symbols", nil)
		return
	}
	c.JSON(http.StatusOK, viz.MultiSymbol(symbols, series))
}
