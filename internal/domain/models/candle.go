package models

import "time"

// Candle is one OHLC bucket aggregated from trades.
//
// Fields:
//   - Symbol: trading symbol (e.g., "BTCUSDT").
//   - BucketStart: start of the aggregation bucket (UTC).
//   - Open/High/Low/Close: first/max/min/last trade price in the bucket.
//   - Volume: sum of traded quantities in the bucket.
//
// swagger:model Candle
type Candle struct {
	Symbol      string    `json:"symbol" example:"BTCUSDT"`
	BucketStart time.Time `json:"timestamp"`
	Open        float64   `json:"open" example:"50000.0"`
	High        float64   `json:"high" example:"50100.0"`
	Low         float64   `json:"low" example:"49900.0"`
	Close       float64   `json:"close" example:"50050.0"`
	Volume      float64   `json:"volume" example:"1.5"`
}

// VolatilityPoint is the rolling-window volatility of a symbol at a bucket:
// the standard deviation of log returns of candle closes over the window
// ending at BucketStart.
//
// swagger:model VolatilityPoint
type VolatilityPoint struct {
	Symbol      string    `json:"symbol" example:"BTCUSDT"`
	BucketStart time.Time `json:"timestamp"`
	Volatility  float64   `json:"volatility" example:"0.0012"`
}

// SymbolMetrics summarizes the last 24 hours of activity for a symbol.
//
// swagger:model SymbolMetrics
type SymbolMetrics struct {
	Symbol            string  `json:"symbol" example:"BTCUSDT"`
	CurrentPrice      float64 `json:"current_price"`
	PriceChange24h    float64 `json:"price_change_24h"`
	PriceChangePct24h float64 `json:"price_change_percent_24h"`
	High24h           float64 `json:"high_24h"`
	Low24h            float64 `json:"low_24h"`
	Volume24h         float64 `json:"volume_24h"`
	AvgVolatility24h  float64 `json:"avg_volatility_24h"`
	MaxVolatility24h  float64 `json:"max_volatility_24h"`
}
