package ingestion

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/coinpulse/coinpulse/internal/storage"
)

func TestLastNDays(t *testing.T) {
	from := time.Date(2025, 8, 28, 15, 30, 0, 0, time.UTC)

	days := LastNDays(3, from)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	// Ends yesterday, most recent first, consecutive calendar days.
	want := []time.Time{
		time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
	}
	for i := range want {
		if !days[i].Equal(want[i]) {
			t.Fatalf("day %d: got %v want %v", i, days[i], want[i])
		}
	}
}

func TestLastNDays_WeekendsIncluded(t *testing.T) {
	// Monday; crypto trades through the weekend so Sat/Sun must appear.
	from := time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC)
	days := LastNDays(2, from)

	if days[0].Weekday() != time.Sunday || days[1].Weekday() != time.Saturday {
		t.Fatalf("weekend days missing: %v", days)
	}
}

func TestProcessDirectory_MissingFiles(t *testing.T) {
	dir := t.TempDir()

	err := ProcessDirectory(context.Background(), dir, nil, 2, 1, false)
	if err == nil {
		t.Fatalf("expected missing files error")
	}
	if !strings.Contains(err.Error(), "missing required files") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessDirectory_IngestsAndSkips(t *testing.T) {
	dir := t.TempDir()

	// One file for each of the last 2 days.
	days := LastNDays(2, time.Now())
	for _, d := range days {
		writeFile(t, dir, d.Format(fileDateLayout)+fileSuffix,
			validHeader+"1756296000000,BTCUSDT,50000.5,0.1,true,1001\n")
	}

	repo := newFakeRepo()
	// Mark the older day as already ingested.
	repo.ingested[days[1].Format(fileDateLayout)] = true

	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.MarketRepository { return repo }
	t.Cleanup(func() { repoCtor = old })

	if err := ProcessDirectory(context.Background(), dir, nil, 2, 1, false); err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}

	// Only the fresh day was parsed and logged.
	if len(repo.logged) != 1 {
		t.Fatalf("expected 1 ingestion log entry, got %v", repo.logged)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("no deletions expected without force: %v", repo.deleted)
	}
}

func TestProcessDirectory_ForceReprocesses(t *testing.T) {
	dir := t.TempDir()

	days := LastNDays(1, time.Now())
	writeFile(t, dir, days[0].Format(fileDateLayout)+fileSuffix,
		validHeader+"1756296000000,BTCUSDT,50000.5,0.1,true,1001\n")

	repo := newFakeRepo()
	repo.ingested[days[0].Format(fileDateLayout)] = true

	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.MarketRepository { return repo }
	t.Cleanup(func() { repoCtor = old })

	if err := ProcessDirectory(context.Background(), dir, nil, 1, 1, true); err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatalf("expected existing day deleted under force: %v", repo.deleted)
	}
	if len(repo.logged) != 1 {
		t.Fatalf("expected ingestion log updated: %v", repo.logged)
	}
}
