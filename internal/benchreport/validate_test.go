package benchreport

import (
	"strings"
	"testing"

	"github.com/coinpulse/coinpulse/internal/domain/models"
)

func validRun() models.BenchRun {
	return models.BenchRun{
		Endpoint:       "/api/ohlc/?symbol=BTCUSDT&limit=1000",
		Requests:       10000,
		Concurrency:    100,
		TotalTimeSec:   8.341,
		RequestsPerSec: 1198.90,
		P50:            78, P75: 92, P90: 110, P95: 131, P99: 186, P100: 240,
		FailedRequests:  0,
		TransferRateKBs: 412.33,
	}
}

func TestValidate_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.BenchRun)
		strict  bool
		wantErr string
	}{
		{name: "valid strict", mutate: func(r *models.BenchRun) {}, strict: true},
		{
			name:    "non-monotonic percentiles",
			mutate:  func(r *models.BenchRun) { r.P95 = 90 },
			strict:  true,
			wantErr: "not monotonic",
		},
		{
			name:    "total time inconsistent with rps",
			mutate:  func(r *models.BenchRun) { r.TotalTimeSec = 20.0 },
			strict:  true,
			wantErr: "inconsistent",
		},
		{
			name:    "failed requests rejected in strict mode",
			mutate:  func(r *models.BenchRun) { r.FailedRequests = 3 },
			strict:  true,
			wantErr: "expected 0",
		},
		{
			name:   "failed requests tolerated when not strict",
			mutate: func(r *models.BenchRun) { r.FailedRequests = 3 },
			strict: false,
		},
		{
			name:    "zero requests",
			mutate:  func(r *models.BenchRun) { r.Requests = 0 },
			strict:  true,
			wantErr: "requests must be positive",
		},
		{
			name: "multiple violations reported together",
			mutate: func(r *models.BenchRun) {
				r.Concurrency = 0
				r.P100 = 1
			},
			strict:  true,
			wantErr: "; ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			run := validRun()
			tc.mutate(&run)
			err := Validate(&run, tc.strict)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidate_RoundingTolerance(t *testing.T) {
	// 10000 / 1198.90 = 8.3409...; small reporting drift must pass.
	run := validRun()
	run.TotalTimeSec = 8.30
	if err := Validate(&run, true); err != nil {
		t.Fatalf("tolerance too tight: %v", err)
	}
}
