package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coinpulse/coinpulse/internal/domain/models"
)

type stubRepo struct {
	candles []models.Candle
	latest  []models.Candle
	symbols []string
	stats   *models.SymbolMetrics
	err     error

	gotLimit   int
	gotSymbols []string
}

func (s *stubRepo) InsertTradesBatch(_ []models.Trade) error { return nil }
func (s *stubRepo) GetCandles(_ context.Context, _ string, _ *time.Time, _ *time.Time, _ int, limit int) ([]models.Candle, error) {
	s.gotLimit = limit
	return s.candles, s.err
}
func (s *stubRepo) GetLatestCandles(_ context.Context, symbols []string, _ int) ([]models.Candle, error) {
	s.gotSymbols = symbols
	return s.latest, s.err
}
func (s *stubRepo) ListSymbols(_ context.Context) ([]string, error) { return s.symbols, s.err }
func (s *stubRepo) Get24hStats(_ context.Context, _ string, _ time.Time) (*models.SymbolMetrics, error) {
	return s.stats, s.err
}
func (s *stubRepo) HasIngestionForDate(_ time.Time) (bool, error)         { return false, nil }
func (s *stubRepo) UpsertIngestionLog(_ time.Time, _ string, _ int) error { return nil }
func (s *stubRepo) DeleteTradesByDate(_ time.Time) error                  { return nil }

func TestMarketService_GetOHLC(t *testing.T) {
	cases := []struct {
		name    string
		repo    *stubRepo
		wantErr bool
	}{
		{
			name: "success",
			repo: &stubRepo{candles: candlesFromCloses([]float64{100, 101})},
		},
		{
			name:    "repo error",
			repo:    &stubRepo{err: errors.New("boom")},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewMarketService(tc.repo)
			out, err := svc.GetOHLC(context.Background(), "BTCUSDT", nil, nil, 60, 100)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", out)
				}
			} else if err != nil || len(out) != 2 {
				t.Fatalf("unexpected: out=%+v err=%v", out, err)
			}
		})
	}
}

func TestMarketService_GetLatestOHLC_SymbolFilter(t *testing.T) {
	repo := &stubRepo{latest: candlesFromCloses([]float64{100})}
	svc := NewMarketService(repo)

	if _, err := svc.GetLatestOHLC(context.Background(), "BTCUSDT", 60); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(repo.gotSymbols) != 1 || repo.gotSymbols[0] != "BTCUSDT" {
		t.Fatalf("symbol filter not passed: %v", repo.gotSymbols)
	}

	if _, err := svc.GetLatestOHLC(context.Background(), "", 60); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if repo.gotSymbols != nil {
		t.Fatalf("expected nil symbols for all-symbols query, got %v", repo.gotSymbols)
	}
}

func TestMarketService_GetVolatility(t *testing.T) {
	repo := &stubRepo{candles: candlesFromCloses([]float64{100, 105, 102, 108, 110, 107, 112})}
	svc := NewMarketService(repo)

	points, err := svc.GetVolatility(context.Background(), "BTCUSDT", nil, nil, 60, 3, 2)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	// Extra candles are fetched so the window can warm up.
	if repo.gotLimit != 5 {
		t.Fatalf("expected fetch limit 5 (limit+window), got %d", repo.gotLimit)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points after tail cut, got %d", len(points))
	}
}

func TestMarketService_GetMetrics(t *testing.T) {
	cases := []struct {
		name    string
		repo    *stubRepo
		wantNil bool
		wantErr bool
	}{
		{
			name: "success with volatility",
			repo: &stubRepo{
				stats:   &models.SymbolMetrics{Symbol: "BTCUSDT", CurrentPrice: 50050},
				candles: candlesFromCloses([]float64{100, 105, 102, 108, 110}),
			},
		},
		{
			name:    "no data",
			repo:    &stubRepo{stats: nil},
			wantNil: true,
		},
		{
			name:    "repo error",
			repo:    &stubRepo{err: errors.New("db down")},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewMarketService(tc.repo)
			out, err := svc.GetMetrics(context.Background(), "BTCUSDT", 60)
			switch {
			case tc.wantErr:
				if err == nil {
					t.Fatalf("expected error")
				}
			case tc.wantNil:
				if err != nil || out != nil {
					t.Fatalf("want nil,nil got out=%+v err=%v", out, err)
				}
			default:
				if err != nil || out == nil {
					t.Fatalf("unexpected: out=%+v err=%v", out, err)
				}
				if out.CurrentPrice != 50050 {
					t.Fatalf("stats lost: %+v", out)
				}
			}
		})
	}
}
