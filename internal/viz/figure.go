// Package viz builds Plotly figure documents for the chart endpoints.
// The output matches what plotly.js expects: {"data": [traces], "layout": {...}}.
package viz

import (
	"fmt"
	"time"

	"github.com/coinpulse/coinpulse/internal/domain/models"
)

// Figure is a renderable Plotly document.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace and Layout are free-form Plotly objects; their keys follow the
// plotly.js schema, not a Go API.
type (
	Trace  map[string]interface{}
	Layout map[string]interface{}
)

// multiSymbolColors cycles over comparison traces.
var multiSymbolColors = []string{"#00d4ff", "#ff6b6b", "#4ecdc4", "#ffe66d", "#a8e6cf"}

// plotly_dark theme colors, inlined in the layout because plotly.js does
// not resolve template names on its own.
const (
	darkBackground = "rgb(17,17,17)"
	darkFontColor  = "#f2f5fa"
)

func axisTitle(text string) map[string]interface{} {
	return map[string]interface{}{"title": map[string]interface{}{"text": text}}
}

func baseLayout(title, yTitle string, height int) Layout {
	return Layout{
		"title":         map[string]interface{}{"text": title},
		"xaxis":         axisTitle("Time"),
		"yaxis":         axisTitle(yTitle),
		"paper_bgcolor": darkBackground,
		"plot_bgcolor":  darkBackground,
		"font":          map[string]interface{}{"color": darkFontColor},
		"height":        height,
	}
}

func timestamps(candles []models.Candle) []string {
	out := make([]string, len(candles))
	for i, c := range candles {
		out[i] = c.BucketStart.UTC().Format(time.RFC3339)
	}
	return out
}

// Candlestick builds an OHLC candlestick chart for one symbol.
func Candlestick(symbol string, candles []models.Candle) Figure {
	open := make([]float64, len(candles))
	high := make([]float64, len(candles))
	low := make([]float64, len(candles))
	closes := make([]float64, len(candles))
	for i, c := range candles {
		open[i], high[i], low[i], closes[i] = c.Open, c.High, c.Low, c.Close
	}

	return Figure{
		Data: []Trace{{
			"type":  "candlestick",
			"x":     timestamps(candles),
			"open":  open,
			"high":  high,
			"low":   low,
			"close": closes,
			"name":  symbol,
		}},
		Layout: baseLayout(fmt.Sprintf("%s Price Chart (Candlestick)", symbol), "Price (USD)", 600),
	}
}

// PriceLine builds a line chart of closing prices.
func PriceLine(symbol string, candles []models.Candle) Figure {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	return Figure{
		Data: []Trace{{
			"type": "scatter",
			"mode": "lines",
			"x":    timestamps(candles),
			"y":    closes,
			"name": "Close Price",
			"line": map[string]interface{}{"color": "#00d4ff", "width": 2},
		}},
		Layout: baseLayout(fmt.Sprintf("%s Closing Price Over Time", symbol), "Price (USD)", 500),
	}
}

// VolatilityArea builds a filled line chart of the volatility series.
func VolatilityArea(symbol string, points []models.VolatilityPoint) Figure {
	x := make([]string, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i] = p.BucketStart.UTC().Format(time.RFC3339)
		y[i] = p.Volatility
	}

	return Figure{
		Data: []Trace{{
			"type": "scatter",
			"mode": "lines",
			"x":    x,
			"y":    y,
			"name": "Volatility",
			"fill": "tozeroy",
			"line": map[string]interface{}{"color": "#ff6b6b", "width": 2},
		}},
		Layout: baseLayout(fmt.Sprintf("%s Volatility Over Time", symbol), "Volatility", 500),
	}
}

// VolumeBars builds a bar chart of traded volume.
func VolumeBars(symbol string, candles []models.Candle) Figure {
	vols := make([]float64, len(candles))
	for i, c := range candles {
		vols[i] = c.Volume
	}

	return Figure{
		Data: []Trace{{
			"type":   "bar",
			"x":      timestamps(candles),
			"y":      vols,
			"name":   "Volume",
			"marker": map[string]interface{}{"color": "#4ecdc4"},
		}},
		Layout: baseLayout(fmt.Sprintf("%s Trading Volume", symbol), "Volume", 400),
	}
}

// MultiSymbol overlays closing prices for several symbols; series order
// follows the symbols slice. Symbols without candles produce no trace.
func MultiSymbol(symbols []string, series map[string][]models.Candle) Figure {
	fig := Figure{
		Data:   []Trace{},
		Layout: baseLayout("Multi-Symbol Price Comparison", "Price (USD)", 600),
	}

	for i, sym := range symbols {
		candles := series[sym]
		if len(candles) == 0 {
			continue
		}
		closes := make([]float64, len(candles))
		for j, c := range candles {
			closes[j] = c.Close
		}
		fig.Data = append(fig.Data, Trace{
			"type": "scatter",
			"mode": "lines",
			"x":    timestamps(candles),
			"y":    closes,
			"name": sym,
			"line": map[string]interface{}{"color": multiSymbolColors[i%len(multiSymbolColors)], "width": 2},
		})
	}
	return fig
}
