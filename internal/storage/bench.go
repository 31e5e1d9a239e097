package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coinpulse/coinpulse/internal/domain/models"
)

// BenchRepository persists load-test results. Runs are append-only history:
// there is intentionally no update or delete.
type BenchRepository interface {
	InsertRun(ctx context.Context, run models.BenchRun) (*models.BenchRun, error)
	ListRuns(ctx context.Context, endpoint string, limit int) ([]models.BenchRun, error)
}

type benchRepository struct {
	db *sql.DB
}

func NewBenchRepository(db *sql.DB) BenchRepository {
	return &benchRepository{db: db}
}

// InsertRun records one benchmark run and returns it with ID and
// recorded_at populated by the database.
func (r *benchRepository) InsertRun(ctx context.Context, run models.BenchRun) (*models.BenchRun, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bench_runs (
			endpoint, requests, concurrency, total_time_sec, requests_per_sec,
			p50, p75, p90, p95, p99, p100, failed_requests, transfer_rate_kbs
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, recorded_at
	`,
		run.Endpoint, run.Requests, run.Concurrency, run.TotalTimeSec, run.RequestsPerSec,
		run.P50, run.P75, run.P90, run.P95, run.P99, run.P100,
		run.FailedRequests, run.TransferRateKBs,
	).Scan(&run.ID, &run.RecordedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRuns returns recorded runs newest first, optionally filtered by endpoint.
func (r *benchRepository) ListRuns(ctx context.Context, endpoint string, limit int) ([]models.BenchRun, error) {
	conditions := "TRUE"
	var args []interface{}
	if endpoint != "" {
		args = append(args, endpoint)
		conditions += fmt.Sprintf(" AND endpoint = $%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT id, endpoint, requests, concurrency, total_time_sec, requests_per_sec,
			   p50, p75, p90, p95, p99, p100, failed_requests, transfer_rate_kbs, recorded_at
		FROM bench_runs
		WHERE %s
		ORDER BY recorded_at DESC, id DESC`, conditions)
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.BenchRun
	for rows.Next() {
		var b models.BenchRun
		if err := rows.Scan(
			&b.ID, &b.Endpoint, &b.Requests, &b.Concurrency, &b.TotalTimeSec, &b.RequestsPerSec,
			&b.P50, &b.P75, &b.P90, &b.P95, &b.P99, &b.P100,
			&b.FailedRequests, &b.TransferRateKBs, &b.RecordedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
