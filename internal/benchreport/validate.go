package benchreport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coinpulse/coinpulse/internal/domain/models"
)

// ErrInvalid marks consistency violations; callers can errors.Is against it
// to distinguish bad input from infrastructure failures.
var ErrInvalid = errors.New("invalid benchmark run")

// rpsTolerance is the allowed relative deviation between the reported total
// time and requests / requests_per_sec. ab rounds both figures.
const rpsTolerance = 0.05

// Validate checks the internal arithmetic consistency of a recorded run:
//
//   - requests, concurrency, total time and requests/sec must be positive
//   - percentile latencies must be non-decreasing from p50 through p100
//   - total_time must agree with requests / requests_per_sec within tolerance
//   - with strict set, failed_requests must be zero
//
// All violations are reported in a single error.
func Validate(run *models.BenchRun, strict bool) error {
	var problems []string

	if run.Requests <= 0 {
		problems = append(problems, "requests must be positive")
	}
	if run.Concurrency <= 0 {
		problems = append(problems, "concurrency must be positive")
	}
	if run.TotalTimeSec <= 0 {
		problems = append(problems, "total_time_sec must be positive")
	}
	if run.RequestsPerSec <= 0 {
		problems = append(problems, "requests_per_sec must be positive")
	}
	if run.FailedRequests < 0 {
		problems = append(problems, "failed_requests must not be negative")
	}
	if strict && run.FailedRequests > 0 {
		problems = append(problems, fmt.Sprintf("failed_requests = %d, expected 0", run.FailedRequests))
	}

	ps := run.Percentiles()
	for i := 1; i < len(ps); i++ {
		if ps[i] < ps[i-1] {
			problems = append(problems, fmt.Sprintf(
				"percentiles not monotonic: p%d (%d ms) < p%d (%d ms)",
				trackedQuantiles[i], ps[i], trackedQuantiles[i-1], ps[i-1]))
		}
	}
	if ps[0] < 0 {
		problems = append(problems, "latencies must not be negative")
	}

	if run.Requests > 0 && run.RequestsPerSec > 0 && run.TotalTimeSec > 0 {
		expected := float64(run.Requests) / run.RequestsPerSec
		diff := run.TotalTimeSec - expected
		if diff < 0 {
			diff = -diff
		}
		if diff/run.TotalTimeSec > rpsTolerance {
			problems = append(problems, fmt.Sprintf(
				"total_time_sec %.3f inconsistent with requests/requests_per_sec = %.3f",
				run.TotalTimeSec, expected))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
