package models

import "time"

// BenchRun is one recorded load-test execution against an API endpoint.
// Rows are immutable history: they are inserted once and never updated.
//
// Percentile latencies are in milliseconds, as reported by Apache Bench in
// the "Percentage of the requests served within a certain time" table.
//
// swagger:model BenchRun
type BenchRun struct {
	ID              int64     `json:"id"`
	Endpoint        string    `json:"endpoint" example:"/api/ohlc/?symbol=BTCUSDT&limit=1000"`
	Requests        int       `json:"requests" example:"10000"`
	Concurrency     int       `json:"concurrency" example:"100"`
	TotalTimeSec    float64   `json:"total_time_sec" example:"8.341"`
	RequestsPerSec  float64   `json:"requests_per_sec" example:"1198.9"`
	P50             int       `json:"p50" example:"78"`
	P75             int       `json:"p75" example:"92"`
	P90             int       `json:"p90" example:"110"`
	P95             int       `json:"p95" example:"131"`
	P99             int       `json:"p99" example:"186"`
	P100            int       `json:"p100" example:"240"`
	FailedRequests  int       `json:"failed_requests" example:"0"`
	TransferRateKBs float64   `json:"transfer_rate_kbs" example:"412.33"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// Percentiles returns the latency percentiles in ascending quantile order
// (50, 75, 90, 95, 99, 100).
func (b BenchRun) Percentiles() [6]int {
	return [6]int{b.P50, b.P75, b.P90, b.P95, b.P99, b.P100}
}
