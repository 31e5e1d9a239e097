package dto

import "github.com/coinpulse/coinpulse/internal/domain/models"

// OHLCResponse is the JSON structure returned by GET /api/ohlc/.
//
// Data is ordered oldest to newest; Count always equals len(Data).
// Symbol echoes the requested filter and is empty when all symbols were
// queried.
type OHLCResponse struct {
	Data   []models.Candle `json:"data"`
	Count  int             `json:"count" example:"1000"`
	Symbol string          `json:"symbol,omitempty" example:"BTCUSDT"`
}

// VolatilityResponse is the JSON structure returned by GET /api/volatility/.
type VolatilityResponse struct {
	Data   []models.VolatilityPoint `json:"data"`
	Count  int                      `json:"count" example:"1000"`
	Symbol string                   `json:"symbol,omitempty" example:"BTCUSDT"`
}

// SymbolsResponse lists the symbols for which trade data exists.
type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
}

// LatestOHLCResponse is returned by GET /api/ohlc/latest: the most recent
// candle for each requested symbol.
type LatestOHLCResponse struct {
	Data []models.Candle `json:"data"`
}
