package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/coinpulse/coinpulse/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives handler instances with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, CORS, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Serves the dashboard page at "/".
//   - Configures the market-data and benchmark routes under /api.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The market-data HTTP handler.
//   - benchHandler (*BenchHandler): The benchmark-history HTTP handler.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, benchHandler *BenchHandler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	// Browser dashboards are served from other origins during development.
	// CORS runs before the rate limiter so 429 responses still carry the
	// CORS headers instead of surfacing as opaque network errors.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		cors.New(corsCfg),
		middleware.RateLimiter(),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Dashboard ────────────────────────────────
	router.GET("/", Dashboard)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API ──────────────────────────────────────
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/ohlc/", handler.GetOHLC)
		apiGroup.GET("/ohlc/latest", handler.GetLatestOHLC)
		apiGroup.GET("/volatility/", handler.GetVolatility)
		apiGroup.GET("/symbols", handler.GetSymbols)
		apiGroup.GET("/metrics", handler.GetMetrics)

		viz := apiGroup.Group("/viz")
		{
			viz.GET("/candlestick", handler.GetCandlestickChart)
			viz.GET("/price-line", handler.GetPriceLineChart)
			viz.GET("/volatility", handler.GetVolatilityChart)
			viz.GET("/volume", handler.GetVolumeChart)
			viz.GET("/multi-symbol", handler.GetMultiSymbolChart)
		}

		apiGroup.GET("/benchmarks", benchHandler.ListBenchRuns)
		apiGroup.POST("/benchmarks", benchHandler.CreateBenchRun)
	}

	return router
}
