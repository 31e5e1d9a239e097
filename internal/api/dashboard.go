package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the single-page chart dashboard. The page is
// self-contained: plotly.js from CDN, symbols loaded from /api/symbols,
// figures fetched from the /api/viz endpoints.
//
// Dashboard godoc
// @Summary      Chart dashboard
// @Tags         dashboard
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Router       / [get]
func Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardHTML))
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
    <title>CoinPulse Dashboard</title>
    <script src="https://cdn.plot.ly/plotly-latest.min.js"></script>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background: #1e1e1e; color: #fff; }
        .container { max-width: 1400px; margin: 0 auto; }
        .header { text-align: center; margin-bottom: 30px; }
        .controls { background: #2d2d2d; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
        .controls input, .controls select, .controls button {
            padding: 10px; margin: 5px; border-radius: 4px; border: 1px solid #444;
            background: #1e1e1e; color: #fff;
        }
        .controls button { background: #00d4ff; color: #000; cursor: pointer; }
        .controls button:hover { background: #00b8e6; }
        .chart-container { background: #2d2d2d; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>CoinPulse Dashboard</h1>
            <p>OHLC Data &amp; Volatility Analytics</p>
        </div>

        <div class="controls">
            <label>Symbol:</label>
            <select id="symbolSelect"></select>

            <label>Chart Type:</label>
            <select id="chartType">
                <option value="candlestick">Candlestick</option>
                <option value="price-line">Price Line</option>
                <option value="volatility">Volatility</option>
                <option value="volume">Volume</option>
            </select>

            <label>Limit:</label>
            <input type="number" id="limit" value="500" min="100" max="5000">

            <button onclick="loadChart()">Load Chart</button>
            <button onclick="loadMultiSymbol()">Compare Symbols</button>
        </div>

        <div class="chart-container">
            <div id="chart"></div>
        </div>
    </div>

    <script>
        let allSymbols = [];

        async function loadSymbols() {
            const response = await fetch('/api/symbols');
            const data = await response.json();
            allSymbols = data.symbols || [];
            const select = document.getElementById('symbolSelect');
            select.innerHTML = '';
            for (const s of allSymbols) {
                const opt = document.createElement('option');
                opt.value = s;
                opt.textContent = s;
                select.appendChild(opt);
            }
        }

        async function loadChart() {
            const symbol = document.getElementById('symbolSelect').value;
            const chartType = document.getElementById('chartType').value;
            const limit = document.getElementById('limit').value;

            try {
                const response = await fetch('/api/viz/' + chartType + '?symbol=' + symbol + '&limit=' + limit);
                const data = await response.json();
                Plotly.newPlot('chart', data.data, data.layout);
            } catch (error) {
                console.error('Error loading chart:', error);
                document.getElementById('chart').innerHTML = '<p style="color: red;">Error loading chart. Make sure data exists for this symbol.</p>';
            }
        }

        async function loadMultiSymbol() {
            const limit = document.getElementById('limit').value;
            try {
                const response = await fetch('/api/viz/multi-symbol?symbols=' + allSymbols.join(',') + '&limit=' + limit);
                const data = await response.json();
                Plotly.newPlot('chart', data.data, data.layout);
            } catch (error) {
                console.error('Error loading multi-symbol chart:', error);
            }
        }

        window.onload = async () => {
            await loadSymbols();
            if (allSymbols.length > 0) {
                loadChart();
            }
        };
    </script>
</body>
</html>
`
