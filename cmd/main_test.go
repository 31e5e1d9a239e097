package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/coinpulse/coinpulse/internal/benchreport"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
		// success
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

const benchTranscript = `This is ApacheBench, Version 2.3 <$Revision: 1903618 $>

Server Software:
Server Hostname:        localhost
Server Port:            8080

Document Path:          /api/symbols
Document Length:        64 bytes

Concurrency Level:      50
Time taken for tests:   2.500 seconds
Complete requests:      5000
Failed requests:        0
Total transferred:      1000000 bytes
Requests per second:    2000.00 [#/sec] (mean)
Time per request:       25.000 [ms] (mean)
Transfer rate:          390.62 [Kbytes/sec] received

Percentage of the requests served within a certain time (ms)
  50%     20
  66%     23
  75%     25
  80%     27
  90%     31
  95%     38
  98%     45
  99%     52
 100%     80 (longest request)
`

func TestRunBench_DryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.txt")
	if err := os.WriteFile(path, []byte(benchTranscript), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	if err := runBench(context.Background(), path, true, false); err != nil {
		t.Fatalf("dry run should not touch the database: %v", err)
	}
}

func TestRunBench_DryRunInvalid(t *testing.T) {
	// A p50 above p75 makes the transcript internally inconsistent.
	bad := strings.Replace(benchTranscript, "  50%     20", "  50%     90", 1)

	path := filepath.Join(t.TempDir(), "ab.txt")
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("write transcript: %v", err)
	}

	err := runBench(context.Background(), path, true, false)
	if !errors.Is(err, benchreport.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRunBench_MissingFile(t *testing.T) {
	if err := runBench(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), true, false); err == nil {
		t.Fatalf("expected error for missing transcript")
	}
}
