package models

import "time"

// Trade represents a single normalized exchange trade, one row in the
// daily dump file.
//
// Column order in the dump:
//  1. Timestamp (epoch milliseconds)
//  2. Symbol
//  3. Price
//  4. Quantity
//  5. IsBuyerMaker
//  6. TradeID
type Trade struct {
	Time         time.Time
	Symbol       string
	Price        float64
	Quantity     float64
	IsBuyerMaker bool
	TradeID      int64
	TradeDate    time.Time // date-only partition key, derived from Time
}
