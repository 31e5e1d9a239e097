package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coinpulse/coinpulse/internal/domain/models"
	"github.com/coinpulse/coinpulse/internal/logger"
	"github.com/coinpulse/coinpulse/internal/storage"
)

// expectedHeaders enforces strict column ordering for daily trade dumps.
// If the header doesn't match EXACTLY (order + count), ingestion must fail.
var expectedHeaders = []string{
	"timestamp",
	"symbol",
	"price",
	"quantity",
	"is_buyer_maker",
	"trade_id",
}

// parseAndPersistFile opens, validates, parses, and persists one file in batches.
// It fails on:
//   - header not matching expected order/length
//   - unrecoverable I/O errors
//
// It tolerates:
//   - rows with malformed timestamps or non-positive price/quantity
//     (skipped and counted, like the original stream cleaner)
//
// Parameters:
//   - ctx:    context for cancellation/timeouts.
//   - path:   file path.
//   - repo:   repository for DB insertion.
//   - batch:  batch size for inserts (e.g., 5000).
//
// Returns the number of persisted rows.
func parseAndPersistFile(ctx context.Context, path string, repo storage.MarketRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // allow variable but we'll check explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	// Parse rows streaming; flush batches to DB.
	buf := make([]models.Trade, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertTradesBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0
	skipped := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read line %d: %w", lineNumber+1, err)
		}
		lineNumber++

		if len(record) != len(expectedHeaders) {
			skipped++
			continue
		}

		trade, ok := parseTrade(record)
		if !ok {
			skipped++
			continue
		}

		buf = append(buf, trade)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("insert batch (through line %d): %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("insert final batch: %w", err)
	}

	if skipped > 0 {
		logger.L().Warn().Str("file", path).Int("skipped", skipped).Msg("rows skipped during parse")
	}
	return total, nil
}

// parseTrade converts one CSV record into a Trade. A false return means
// the record is invalid and should be skipped.
func parseTrade(record []string) (models.Trade, bool) {
	ms, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil || ms <= 0 {
		return models.Trade{}, false
	}
	ts := time.UnixMilli(ms).UTC()

	symbol := strings.ToUpper(strings.TrimSpace(record[1]))
	if symbol == "" {
		return models.Trade{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil || price <= 0 {
		return models.Trade{}, false
	}
	quantity, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil || quantity <= 0 {
		return models.Trade{}, false
	}

	buyerMaker, err := strconv.ParseBool(strings.TrimSpace(record[4]))
	if err != nil {
		return models.Trade{}, false
	}

	tradeID, err := strconv.ParseInt(strings.TrimSpace(record[5]), 10, 64)
	if err != nil {
		return models.Trade{}, false
	}

	y, m, d := ts.Date()
	return models.Trade{
		Time:         ts,
		Symbol:       symbol,
		Price:        price,
		Quantity:     quantity,
		IsBuyerMaker: buyerMaker,
		TradeID:      tradeID,
		TradeDate:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}, true
}
