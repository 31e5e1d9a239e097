package benchreport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coinpulse/coinpulse/internal/domain/models"
)

// trackedQuantiles are the percentile rows extracted from the
// "Percentage of the requests served within a certain time (ms)" table.
// ab prints more rows (66, 80, 98); those are ignored.
var trackedQuantiles = [6]int{50, 75, 90, 95, 99, 100}

// ParseFile reads an Apache Bench transcript from path. The file may be the
// raw ab output or a Markdown report with the transcript inside fenced code
// blocks; parsing is line-based either way.
func ParseFile(path string) (*models.BenchRun, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse extracts a BenchRun from an ab transcript.
//
// Recognized lines:
//   - Document Path:          <endpoint>
//   - Concurrency Level:      <n>
//   - Time taken for tests:   <x> seconds
//   - Complete requests:      <n>
//   - Failed requests:        <n>
//   - Requests per second:    <x> [#/sec] (mean)
//   - Transfer rate:          <x> [Kbytes/sec] received
//   - the percentile table rows ("  50%     78")
//
// Missing required fields are an error; the percentile table must contain
// every tracked quantile.
func Parse(r io.Reader) (*models.BenchRun, error) {
	var run models.BenchRun
	seen := map[string]bool{}
	percentiles := map[int]int{}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(line, "Document Path:"):
			run.Endpoint = fieldValue(line)
			seen["endpoint"] = run.Endpoint != ""

		case strings.HasPrefix(line, "Concurrency Level:"):
			n, err := strconv.Atoi(fieldValue(line))
			if err != nil {
				return nil, fmt.Errorf("concurrency level: %w", err)
			}
			run.Concurrency = n
			seen["concurrency"] = true

		case strings.HasPrefix(line, "Time taken for tests:"):
			x, err := firstFloat(fieldValue(line))
			if err != nil {
				return nil, fmt.Errorf("time taken: %w", err)
			}
			run.TotalTimeSec = x
			seen["total_time"] = true

		case strings.HasPrefix(line, "Complete requests:"):
			n, err := strconv.Atoi(fieldValue(line))
			if err != nil {
				return nil, fmt.Errorf("complete requests: %w", err)
			}
			run.Requests = n
			seen["requests"] = true

		case strings.HasPrefix(line, "Failed requests:"):
			n, err := strconv.Atoi(fieldValue(line))
			if err != nil {
				return nil, fmt.Errorf("failed requests: %w", err)
			}
			run.FailedRequests = n
			seen["failed"] = true

		case strings.HasPrefix(line, "Requests per second:"):
			x, err := firstFloat(fieldValue(line))
			if err != nil {
				return nil, fmt.Errorf("requests per second: %w", err)
			}
			run.RequestsPerSec = x
			seen["rps"] = true

		case strings.HasPrefix(line, "Transfer rate:"):
			x, err := firstFloat(fieldValue(line))
			if err != nil {
				return nil, fmt.Errorf("transfer rate: %w", err)
			}
			run.TransferRateKBs = x

		default:
			if q, ms, ok := parsePercentileRow(line); ok {
				percentiles[q] = ms
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	required := []string{"endpoint", "concurrency", "total_time", "requests", "failed", "rps"}
	var missing []string
	for _, k := range required {
		if !seen[k] {
			missing = append(missing, k)
		}
	}
	for _, q := range trackedQuantiles {
		if _, ok := percentiles[q]; !ok {
			missing = append(missing, fmt.Sprintf("p%d", q))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("incomplete ab transcript, missing: %s", strings.Join(missing, ", "))
	}

	run.P50 = percentiles[50]
	run.P75 = percentiles[75]
	run.P90 = percentiles[90]
	run.P95 = percentiles[95]
	run.P99 = percentiles[99]
	run.P100 = percentiles[100]
	return &run, nil
}

// fieldValue returns the trimmed text after the first colon.
func fieldValue(line string) string {
	_, after, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(after)
}

// firstFloat parses the leading float of a value like "1198.90 [#/sec] (mean)".
func firstFloat(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty value")
	}
	return strconv.ParseFloat(fields[0], 64)
}

// parsePercentileRow matches rows like "  95%    131" or " 100%    240 (longest request)".
func parsePercentileRow(line string) (quantile, ms int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || !strings.HasSuffix(fields[0], "%") {
		return 0, 0, false
	}
	q, err := strconv.Atoi(strings.TrimSuffix(fields[0], "%"))
	if err != nil {
		return 0, 0, false
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	return q, v, true
}
