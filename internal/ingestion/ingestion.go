package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coinpulse/coinpulse/internal/logger"
	"github.com/coinpulse/coinpulse/internal/storage"
)

const (
	fileDateLayout   = "2006-01-02"
	fileSuffix       = "_trades.csv"
	defaultBatchSize = 5000
	maxDays          = 30
	maxParallelCap   = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.MarketRepository {
	return storage.NewMarketRepository(db)
}

// LastNDays returns the last n calendar days ending yesterday, most recent
// first. Crypto markets trade around the clock, so every day counts.
func LastNDays(n int, from time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	y, m, d := from.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	for len(out) < n {
		out = append(out, day)
		day = day.AddDate(0, 0, -1)
	}
	return out
}

// ProcessDirectory ingests the daily trade dumps for the last nDays days.
//
// Behavior:
//   - Expects exactly one file per day with name "YYYY-MM-DD_trades.csv".
//   - Uses a concurrency limit based on CPU count (min(8, NumCPU)).
//   - For each file, parses & inserts trades in batches via repository.
//   - If any file returns error, cancels the rest and returns that error.
//
// Returns:
//   - error: first error encountered (if any).
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, nDays int, parallel int, force bool) error {
	// use indirection to allow tests to swap repository constructor
	repo := repoCtor(db)

	if nDays < 1 {
		nDays = 1
	}
	if nDays > maxDays {
		nDays = maxDays
	}
	dates := LastNDays(nDays, time.Now())

	// Build expected filenames & validate presence upfront.
	var files []string
	var missing []string

	for _, d := range dates {
		name := d.Format(fileDateLayout) + fileSuffix
		full := filepath.Join(dir, name)
		files = append(files, full)

		if _, err := os.Stat(full); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, name)
			} else {
				return fmt.Errorf("stat failed for %s: %w", full, err)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required files: %s", strings.Join(missing, ", "))
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("ingestion start")

	// Concurrency: default to min(8, NumCPU), or use provided clamp(1..8)
	maxParallel := maxParallelCap
	if parallel > 0 {
		if parallel > maxParallelCap {
			parallel = maxParallelCap
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("ingestion configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			// Determine the day from the filename (YYYY-MM-DD_...)
			datePart := strings.TrimSuffix(base, fileSuffix)
			d, err := time.Parse(fileDateLayout, datePart)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("invalid date in filename")
				return fmt.Errorf("file %s: parse date from filename: %w", f, err)
			}

			// Idempotency: skip if already ingested, unless force
			exists, err := repo.HasIngestionForDate(d)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("check ingestion log failed")
				return fmt.Errorf("file %s: check ingestion log: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already ingested")
				return nil
			}
			if exists && force {
				// Delete existing data for that date and reprocess
				if err := repo.DeleteTradesByDate(d); err != nil {
					logger.L().Error().Str("file", base).Err(err).Msg("delete existing failed")
					return fmt.Errorf("file %s: delete existing: %w", f, err)
				}
			}

			// Process each file; this function:
			// - validates header/order/columns strictly
			// - parses rows tolerantly (bad rows skipped and counted)
			// - inserts in batches (defaultBatchSize)
			total, err := parseAndPersistFile(gctx, f, repo, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertIngestionLog(d, base, total); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("update ingestion log failed")
				return fmt.Errorf("file %s: upsert ingestion log: %w", f, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return nil
}
