package service

import (
	"context"

	"github.com/coinpulse/coinpulse/internal/benchreport"
	"github.com/coinpulse/coinpulse/internal/domain/models"
	"github.com/coinpulse/coinpulse/internal/storage"
)

// BenchService records and lists load-test results.
type BenchService interface {
	RecordRun(ctx context.Context, run models.BenchRun, strict bool) (*models.BenchRun, error)
	ListRuns(ctx context.Context, endpoint string, limit int) ([]models.BenchRun, error)
}

type benchService struct {
	repo storage.BenchRepository
}

func NewBenchService(repo storage.BenchRepository) BenchService {
	return &benchService{repo: repo}
}

// RecordRun validates the run's internal consistency before persisting it.
func (s *benchService) RecordRun(ctx context.Context, run models.BenchRun, strict bool) (*models.BenchRun, error) {
	if err := benchreport.Validate(&run, strict); err != nil {
		return nil, err
	}
	return s.repo.InsertRun(ctx, run)
}

func (s *benchService) ListRuns(ctx context.Context, endpoint string, limit int) ([]models.BenchRun, error) {
	return s.repo.ListRuns(ctx, endpoint, limit)
}
