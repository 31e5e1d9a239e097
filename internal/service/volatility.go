package service

import (
	"math"

	"github.com/coinpulse/coinpulse/internal/domain/models"
)

// DefaultVolatilityWindow is the number of candles in the rolling window
// used when the caller does not ask for a specific one.
const DefaultVolatilityWindow = 20

// RollingVolatility computes per-bucket volatility from a series of candles
// ordered oldest first: the standard deviation of the log returns of the
// close prices over a rolling window ending at each bucket.
//
// The first point is emitted once at least two returns exist inside the
// window. Candles with non-positive closes contribute no return.
func RollingVolatility(candles []models.Candle, window int) []models.VolatilityPoint {
	if window < 2 {
		window = DefaultVolatilityWindow
	}

	// Log returns aligned with candles[1:].
	returns := make([]float64, 0, len(candles))
	valid := make([]bool, 0, len(candles))
	for i := 1; i < len(candles); i++ {
		prev, cur := candles[i-1].Close, candles[i].Close
		if prev > 0 && cur > 0 {
			returns = append(returns, math.Log(cur/prev))
			valid = append(valid, true)
		} else {
			returns = append(returns, 0)
			valid = append(valid, false)
		}
	}

	var out []models.VolatilityPoint
	for i := range returns {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		var sample []float64
		for j := lo; j <= i; j++ {
			if valid[j] {
				sample = append(sample, returns[j])
			}
		}
		if len(sample) < 2 {
			continue
		}
		out = append(out, models.VolatilityPoint{
			Symbol:      candles[i+1].Symbol,
			BucketStart: candles[i+1].BucketStart,
			Volatility:  stddev(sample),
		})
	}
	return out
}

// stddev is the sample standard deviation.
func stddev(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
