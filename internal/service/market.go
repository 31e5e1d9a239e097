package service

import (
	"context"
	"math"
	"time"

	"github.com/coinpulse/coinpulse/internal/domain/models"
	"github.com/coinpulse/coinpulse/internal/storage"
)

// MarketService defines business logic over aggregated trade data.
type MarketService interface {
	GetOHLC(ctx context.Context, symbol string, startDate *time.Time, endDate *time.Time, intervalSec int, limit int) ([]models.Candle, error)
	GetLatestOHLC(ctx context.Context, symbol string, intervalSec int) ([]models.Candle, error)
	GetVolatility(ctx context.Context, symbol string, startDate *time.Time, endDate *time.Time, intervalSec int, window int, limit int) ([]models.VolatilityPoint, error)
	ListSymbols(ctx context.Context) ([]string, error)
	GetMetrics(ctx context.Context, symbol string, intervalSec int) (*models.SymbolMetrics, error)
}

type marketService struct {
	repo storage.MarketRepository
}

func NewMarketService(repo storage.MarketRepository) MarketService {
	return &marketService{repo: repo}
}

func (s *marketService) GetOHLC(ctx context.Context, symbol string, startDate *time.Time, endDate *time.Time, intervalSec int, limit int) ([]models.Candle, error) {
	return s.repo.GetCandles(ctx, symbol, startDate, endDate, intervalSec, limit)
}

// GetLatestOHLC returns the most recent candle per symbol; an empty symbol
// means every symbol with data.
func (s *marketService) GetLatestOHLC(ctx context.Context, symbol string, intervalSec int) ([]models.Candle, error) {
	var symbols []string
	if symbol != "" {
		symbols = []string{symbol}
	}
	return s.repo.GetLatestCandles(ctx, symbols, intervalSec)
}

// GetVolatility derives the rolling-window volatility series from candle
// closes. The window consumes candles before the requested range produces
// points, so extra candles are fetched to fill the tail.
func (s *marketService) GetVolatility(ctx context.Context, symbol string, startDate *time.Time, endDate *time.Time, intervalSec int, window int, limit int) ([]models.VolatilityPoint, error) {
	if window < 2 {
		window = DefaultVolatilityWindow
	}

	fetch := 0
	if limit > 0 {
		fetch = limit + window
	}
	candles, err := s.repo.GetCandles(ctx, symbol, startDate, endDate, intervalSec, fetch)
	if err != nil {
		return nil, err
	}

	points := RollingVolatility(candles, window)
	if limit > 0 && len(points) > limit {
		points = points[len(points)-limit:]
	}
	return points, nil
}

func (s *marketService) ListSymbols(ctx context.Context) ([]string, error) {
	return s.repo.ListSymbols(ctx)
}

// GetMetrics combines 24h price statistics from the repository with
// volatility aggregates computed from the last 24h of candles.
// Returns (nil, nil) when the symbol has no data.
func (s *marketService) GetMetrics(ctx context.Context, symbol string, intervalSec int) (*models.SymbolMetrics, error) {
	now := time.Now().UTC()

	stats, err := s.repo.Get24hStats(ctx, symbol, now)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, nil
	}

	// Candles covering the last 24h (two calendar dates at most).
	start := truncateToDate(now.Add(-24 * time.Hour))
	candles, err := s.repo.GetCandles(ctx, symbol, &start, nil, intervalSec, 0)
	if err != nil {
		return nil, err
	}
	points := RollingVolatility(candles, DefaultVolatilityWindow)

	var sum, maxVol float64
	n := 0
	for _, p := range points {
		if p.BucketStart.Before(now.Add(-24 * time.Hour)) {
			continue
		}
		sum += p.Volatility
		maxVol = math.Max(maxVol, p.Volatility)
		n++
	}
	if n > 0 {
		stats.AvgVolatility24h = sum / float64(n)
		stats.MaxVolatility24h = maxVol
	}
	return stats, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
