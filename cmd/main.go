package main

//
//  @title           CoinPulse API
//  @version         1.0
//  @description     Cryptocurrency trade ingestion, OHLC aggregation and volatility analytics service.
//  @termsOfService  https://github.com/coinpulse/coinpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/coinpulse/coinpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        ohlc
//  @tag.description OHLC candle queries
//
//  @tag.name        volatility
//  @tag.description Rolling-window volatility series
//
//  @tag.name        symbols
//  @tag.description Symbol discovery
//
//  @tag.name        metrics
//  @tag.description 24h per-symbol statistics
//
//  @tag.name        viz
//  @tag.description Plotly figure documents for charts
//
//  @tag.name        benchmarks
//  @tag.description Recorded load-test runs
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coinpulse/coinpulse/config"
	_ "github.com/coinpulse/coinpulse/docs" // swagger docs
	"github.com/coinpulse/coinpulse/internal/app"
	"github.com/coinpulse/coinpulse/internal/benchreport"
	"github.com/coinpulse/coinpulse/internal/ingestion"
	"github.com/coinpulse/coinpulse/internal/logger"
	"github.com/coinpulse/coinpulse/internal/service"
	"github.com/coinpulse/coinpulse/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runBench parses an Apache Bench transcript, validates it and, unless
// dryRun is set, records it against the configured database.
func runBench(ctx context.Context, file string, dryRun, strict bool) error {
	run, err := benchreport.ParseFile(file)
	if err != nil {
		return err
	}

	if !strict && run.FailedRequests > 0 {
		logger.L().Warn().
			Int("failed_requests", run.FailedRequests).
			Str("endpoint", run.Endpoint).
			Msg("recording run with failed requests")
	}

	if dryRun {
		if err := benchreport.Validate(run, strict); err != nil {
			return err
		}
		logger.L().Info().
			Str("endpoint", run.Endpoint).
			Int("requests", run.Requests).
			Float64("rps", run.RequestsPerSec).
			Int("p99_ms", run.P99).
			Msg("benchmark transcript is valid (dry run, not recorded)")
		return nil
	}

	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	svc := service.NewBenchService(storage.NewBenchRepository(db))
	saved, err := svc.RecordRun(ctx, *run, strict)
	if err != nil {
		return err
	}

	logger.L().Info().
		Int64("id", saved.ID).
		Str("endpoint", saved.Endpoint).
		Float64("rps", saved.RequestsPerSec).
		Int("p99_ms", saved.P99).
		Msg("benchmark run recorded")
	return nil
}

// main is the entry point of the coinpulse application.
//
// Modes (selected via --mode flag):
//   - ingest: Processes the last N days of trade CSV files from ./data/input/.
//   - api:    Starts the REST API exposing OHLC, volatility and chart endpoints.
//   - bench:  Parses an Apache Bench transcript and records the run.
//
// Flags:
//   - --mode:     Execution mode ("ingest", "api" or "bench"). Default: "ingest".
//   - --dir:      Directory containing trade CSV files. Default: "./data/input".
//   - --days:     Number of last calendar days to ingest (1-30). Default: 7.
//   - --parallel: How many files to process concurrently (0=auto up to CPU, max 8).
//   - --force:    Reprocess days even if already ingested.
//   - --port:     Port for API mode. Defaults to value from config (SERVER_PORT).
//   - --file:     Apache Bench transcript for bench mode.
//   - --dry-run:  Parse and validate the transcript without recording it.
//   - --strict:   Reject runs with nonzero failed requests (default true).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "ingest", "Mode: ingest, api or bench")
	dir := flag.String("dir", "./data/input", "Directory with trade CSV files")
	days := flag.Int("days", 7, "Number of last calendar days to ingest (1-30)")
	parallel := flag.Int("parallel", 0, "How many files to process concurrently (0=auto up to CPU, max 8)")
	force := flag.Bool("force", false, "Reprocess days even if already ingested (deletes existing trades for that day)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	benchFile := flag.String("file", "", "Apache Bench transcript to record (bench mode)")
	dryRun := flag.Bool("dry-run", false, "Validate the transcript without recording it (bench mode)")
	strict := flag.Bool("strict", true, "Reject runs with nonzero failed requests (bench mode)")
	flag.Parse()

	switch *mode {
	case "ingest":
		// Ingestion mode: process trade CSV files and persist trades
		logger.L().Info().Msg("running ingestion")
		if *days < 1 {
			*days = 1
		}
		if *days > 30 {
			*days = 30
		}

		// Direct DB connection for ingestion
		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := ingestion.ProcessDirectory(ctx, *dir, db, *days, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "bench":
		// Bench mode: parse an ab transcript and record the run
		if *benchFile == "" {
			logger.L().Fatal().Msg("bench mode requires --file")
		}
		if err := runBench(ctx, *benchFile, *dryRun, *strict); err != nil {
			logger.L().Fatal().Err(err).Str("file", *benchFile).Msg("bench recording failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
