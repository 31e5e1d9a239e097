package dto

// BenchRunRequest is the JSON body accepted by POST /api/benchmarks.
//
// Percentile latencies are milliseconds, ascending quantile order is
// enforced before the run is recorded.
type BenchRunRequest struct {
	Endpoint        string  `json:"endpoint" binding:"required" example:"/api/ohlc/?symbol=BTCUSDT&limit=1000"`
	Requests        int     `json:"requests" binding:"required" example:"10000"`
	Concurrency     int     `json:"concurrency" binding:"required" example:"100"`
	TotalTimeSec    float64 `json:"total_time_sec" example:"8.341"`
	RequestsPerSec  float64 `json:"requests_per_sec" example:"1198.9"`
	P50             int     `json:"p50" example:"78"`
	P75             int     `json:"p75" example:"92"`
	P90             int     `json:"p90" example:"110"`
	P95             int     `json:"p95" example:"131"`
	P99             int     `json:"p99" example:"186"`
	P100            int     `json:"p100" example:"240"`
	FailedRequests  int     `json:"failed_requests" example:"0"`
	TransferRateKBs float64 `json:"transfer_rate_kbs" example:"412.33"`
}
