package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/coinpulse/coinpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// MarketRepository defines contract for trade and candle DB operations.
type MarketRepository interface {
	InsertTradesBatch(trades []models.Trade) error
	GetCandles(ctx context.Context, symbol string, startDate *time.Time, endDate *time.Time, intervalSec int, limit int) ([]models.Candle, error)
	GetLatestCandles(ctx context.Context, symbols []string, intervalSec int) ([]models.Candle, error)
	ListSymbols(ctx context.Context) ([]string, error)
	Get24hStats(ctx context.Context, symbol string, now time.Time) (*models.SymbolMetrics, error)
	HasIngestionForDate(date time.Time) (bool, error)
	UpsertIngestionLog(date time.Time, filename string, rowCount int) error
	DeleteTradesByDate(date time.Time) error
}

type marketRepository struct {
	db *sql.DB
}

func NewMarketRepository(db *sql.DB) MarketRepository {
	return &marketRepository{db: db}
}

// InsertTradesBatch inserts multiple trades into DB in a single transaction.
func (r *marketRepository) InsertTradesBatch(trades []models.Trade) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"trades",
		"symbol",
		"price",
		"quantity",
		"trade_time",
		"buyer_maker",
		"trade_id",
		"trade_date",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range trades {
		if _, err := stmt.Exec(
			rec.Symbol,
			rec.Price,
			rec.Quantity,
			rec.Time,
			rec.IsBuyerMaker,
			rec.TradeID,
			rec.TradeDate,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasIngestionForDate checks if an ingestion was already recorded for a given day.
func (r *marketRepository) HasIngestionForDate(date time.Time) (bool, error) {
	var exists bool
	// ingestion_log.file_date is the canonical per-file day
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE file_date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) an ingestion entry for a given day.
func (r *marketRepository) UpsertIngestionLog(date time.Time, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (file_date, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (file_date)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, date, filename, rowCount)
	return err
}

// DeleteTradesByDate removes all trades for a given trade_date.
func (r *marketRepository) DeleteTradesByDate(date time.Time) error {
	_, err := r.db.Exec(`DELETE FROM trades WHERE trade_date = $1`, date)
	return err
}

// candleBucketsCTE aggregates trades into OHLC buckets of intervalSec seconds.
// The interval is interpolated directly (a validated integer, never user text)
// because the same value appears twice inside to_timestamp.
func candleBucketsCTE(intervalSec int, conditions string) string {
	return fmt.Sprintf(`
		WITH buckets AS (
			SELECT symbol,
				   to_timestamp(floor(extract(epoch FROM trade_time) / %d) * %d) AS bucket_start,
				   (array_agg(price ORDER BY trade_time, trade_id))[1] AS open,
				   MAX(price) AS high,
				   MIN(price) AS low,
				   (array_agg(price ORDER BY trade_time DESC, trade_id DESC))[1] AS close,
				   SUM(quantity) AS volume
			FROM trades
			WHERE %s
			GROUP BY symbol, bucket_start
		)`, intervalSec, intervalSec, conditions)
}

// GetCandles returns OHLC candles bucketed by intervalSec, oldest first.
// A positive limit keeps only the newest limit buckets (tail semantics).
func (r *marketRepository) GetCandles(ctx context.Context, symbol string, startDate *time.Time, endDate *time.Time, intervalSec int, limit int) ([]models.Candle, error) {
	if intervalSec < 1 {
		intervalSec = 1
	}

	// Build dynamic conditions for symbol and date range filters.
	conditions := "TRUE"
	var args []interface{}
	if symbol != "" {
		args = append(args, symbol)
		conditions += fmt.Sprintf(" AND symbol = $%d", len(args))
	}
	if startDate != nil {
		args = append(args, *startDate)
		conditions += fmt.Sprintf(" AND trade_date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		conditions += fmt.Sprintf(" AND trade_date <= $%d", len(args))
	}

	query := candleBucketsCTE(intervalSec, conditions) + `
		SELECT symbol, bucket_start, open, high, low, close, volume
		FROM buckets
		ORDER BY bucket_start DESC, symbol`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Candle
	for rows.Next() {
		var c models.Candle
		if err := rows.Scan(&c.Symbol, &c.BucketStart, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The query returns newest first so LIMIT keeps the tail; callers
	// expect oldest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// GetLatestCandles returns the most recent candle per symbol.
// An empty symbols slice means every symbol with data.
func (r *marketRepository) GetLatestCandles(ctx context.Context, symbols []string, intervalSec int) ([]models.Candle, error) {
	if intervalSec < 1 {
		intervalSec = 1
	}

	conditions := "TRUE"
	var args []interface{}
	if len(symbols) > 0 {
		args = append(args, pq.Array(symbols))
		conditions += fmt.Sprintf(" AND symbol = ANY($%d)", len(args))
	}

	query := candleBucketsCTE(intervalSec, conditions) + `
		SELECT DISTINCT ON (symbol) symbol, bucket_start, open, high, low, close, volume
		FROM buckets
		ORDER BY symbol, bucket_start DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Candle
	for rows.Next() {
		var c models.Candle
		if err := rows.Scan(&c.Symbol, &c.BucketStart, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListSymbols returns the distinct symbols present in the trades table.
func (r *marketRepository) ListSymbols(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT symbol FROM trades ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Get24hStats returns price and volume statistics for the 24 hours before now.
// Returns (nil, nil) when no trades exist for the symbol.
func (r *marketRepository) Get24hStats(ctx context.Context, symbol string, now time.Time) (*models.SymbolMetrics, error) {
	since := now.Add(-24 * time.Hour)

	query := `
		SELECT
			(SELECT price FROM trades WHERE symbol = $1 ORDER BY trade_time DESC, trade_id DESC LIMIT 1) AS last_price,
			(SELECT price FROM trades WHERE symbol = $1 AND trade_time <= $2 ORDER BY trade_time DESC, trade_id DESC LIMIT 1) AS price_24h_ago,
			(SELECT MAX(price) FROM trades WHERE symbol = $1 AND trade_time > $2) AS high_24h,
			(SELECT MIN(price) FROM trades WHERE symbol = $1 AND trade_time > $2) AS low_24h,
			(SELECT SUM(quantity) FROM trades WHERE symbol = $1 AND trade_time > $2) AS volume_24h`

	var lastPrice, prevPrice, high, low, volume sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, symbol, since).Scan(&lastPrice, &prevPrice, &high, &low, &volume); err != nil {
		return nil, err
	}

	// No trades at all for this symbol.
	if !lastPrice.Valid {
		return nil, nil
	}

	m := &models.SymbolMetrics{
		Symbol:       symbol,
		CurrentPrice: lastPrice.Float64,
	}
	if prevPrice.Valid && prevPrice.Float64 > 0 {
		m.PriceChange24h = lastPrice.Float64 - prevPrice.Float64
		m.PriceChangePct24h = m.PriceChange24h / prevPrice.Float64 * 100
	}
	if high.Valid {
		m.High24h = high.Float64
	}
	if low.Valid {
		m.Low24h = low.Float64
	}
	if volume.Valid {
		m.Volume24h = volume.Float64
	}
	return m, nil
}
