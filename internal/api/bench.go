package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinpulse/coinpulse/config"
	"github.com/coinpulse/coinpulse/internal/benchreport"
	"github.com/coinpulse/coinpulse/internal/domain/dto"
	"github.com/coinpulse/coinpulse/internal/domain/models"
	"github.com/coinpulse/coinpulse/internal/middleware"
	"github.com/coinpulse/coinpulse/internal/service"
)

// defaultBenchLimit bounds GET /api/benchmarks when no limit is given.
const defaultBenchLimit = 50

// BenchHandler provides HTTP handlers for the benchmark-run history.
type BenchHandler struct {
	bench service.BenchService
	api   config.APIConfig
}

// NewBenchHandler constructs a new BenchHandler instance.
func NewBenchHandler(bench service.BenchService, apiCfg config.APIConfig) *BenchHandler {
	return &BenchHandler{bench: bench, api: apiCfg}
}

// ListBenchRuns handles GET /api/benchmarks requests.
//
// ListBenchRuns godoc
// @Summary      List recorded benchmark runs
// @Description  Newest first; filter by endpoint with the endpoint query parameter
// @Tags         benchmarks
// @Produce      json
// @Param        endpoint  query     string  false  "Exact endpoint filter" example(/api/ohlc/?symbol=BTCUSDT&limit=1000)
// @Param        limit     query     int     false  "Maximum number of runs" example(50)
// @Success      200       {array}   models.BenchRun    "Success"
// @Failure      400       {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500       {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/benchmarks [get]
func (h *BenchHandler) ListBenchRuns(c *gin.Context) {
	limit, ok := parseLimit(c, defaultBenchLimit, h.api.MaxLimit)
	if !ok {
		return
	}

	runs, err := h.bench.ListRuns(c.Request.Context(), c.Query("endpoint"), limit)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to list benchmark runs", err)
		return
	}
	if runs == nil {
		runs = []models.BenchRun{}
	}
	c.JSON(http.StatusOK, runs)
}

// CreateBenchRun handles POST /api/benchmarks requests.
//
// CreateBenchRun godoc
// @Summary      Record a benchmark run
// @Description  Validates internal consistency (percentile ordering, throughput arithmetic, zero failed requests) before persisting
// @Tags         benchmarks
// @Accept       json
// @Produce      json
// @Param        run     body      dto.BenchRunRequest  true  "Benchmark run"
// @Param        strict  query     bool                 false "Reject runs with nonzero failed requests" example(false)
// @Success      201     {object}  models.BenchRun    "Created"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422     {object}  dto.ErrorResponse  "Inconsistent run"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/benchmarks [post]
func (h *BenchHandler) CreateBenchRun(c *gin.Context) {
	var req dto.BenchRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	run := models.BenchRun{
		Endpoint:        req.Endpoint,
		Requests:        req.Requests,
		Concurrency:     req.Concurrency,
		TotalTimeSec:    req.TotalTimeSec,
		RequestsPerSec:  req.RequestsPerSec,
		P50:             req.P50,
		P75:             req.P75,
		P90:             req.P90,
		P95:             req.P95,
		P99:             req.P99,
		P100:            req.P100,
		FailedRequests:  req.FailedRequests,
		TransferRateKBs: req.TransferRateKBs,
	}

	strict := c.Query("strict") == "true"
	saved, err := h.bench.RecordRun(c.Request.Context(), run, strict)
	if err != nil {
		if errors.Is(err, benchreport.ErrInvalid) {
			middleware.AbortWithError(c, http.StatusUnprocessableEntity, "benchmark run failed validation", err)
			return
		}
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to record benchmark run", err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}
