package benchreport

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFile_RawTranscript(t *testing.T) {
	run, err := ParseFile(filepath.Join("testdata", "ab_ohlc.txt"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	if run.Endpoint != "/api/ohlc/?symbol=BTCUSDT&limit=1000" {
		t.Fatalf("endpoint: %q", run.Endpoint)
	}
	if run.Requests != 10000 || run.Concurrency != 100 || run.FailedRequests != 0 {
		t.Fatalf("counts: %+v", run)
	}
	if run.TotalTimeSec != 8.341 || run.RequestsPerSec != 1198.90 {
		t.Fatalf("timing: %+v", run)
	}
	if run.TransferRateKBs != 412.33 {
		t.Fatalf("transfer rate: %v", run.TransferRateKBs)
	}
	want := [6]int{78, 92, 110, 131, 186, 240}
	if run.Percentiles() != want {
		t.Fatalf("percentiles: got %v want %v", run.Percentiles(), want)
	}
}

func TestParseFile_MarkdownReport(t *testing.T) {
	run, err := ParseFile(filepath.Join("testdata", "report.md"))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if run.Endpoint != "/api/symbols" || run.Concurrency != 50 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.P50 != 18 || run.P100 != 61 {
		t.Fatalf("percentiles: %+v", run)
	}
}

func TestParse_Incomplete(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		missing string
	}{
		{
			name:    "empty",
			input:   "",
			missing: "endpoint",
		},
		{
			name: "no percentile table",
			input: `Document Path:          /api/symbols
Concurrency Level:      50
Time taken for tests:   4.200 seconds
Complete requests:      10000
Failed requests:        0
Requests per second:    2380.95 [#/sec] (mean)
`,
			missing: "p50",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Fatalf("error %q does not mention %q", err, tc.missing)
			}
		})
	}
}

func TestParse_MalformedNumbers(t *testing.T) {
	input := `Document Path:          /api/symbols
Concurrency Level:      fifty
`
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for malformed concurrency")
	}
}

func TestParsePercentileRow(t *testing.T) {
	cases := []struct {
		line string
		q    int
		ms   int
		ok   bool
	}{
		{line: "  50%     78", q: 50, ms: 78, ok: true},
		{line: " 100%    240 (longest request)", q: 100, ms: 240, ok: true},
		{line: "Connect:        0    0   0.4", ok: false},
		{line: "", ok: false},
	}
	for _, tc := range cases {
		q, ms, ok := parsePercentileRow(tc.line)
		if ok != tc.ok || q != tc.q || ms != tc.ms {
			t.Fatalf("line %q: got (%d,%d,%v)", tc.line, q, ms, ok)
		}
	}
}
