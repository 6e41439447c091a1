package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mhollan/solstice/pkg/portfolio"
)

// WriteEquityCurve renders the equity series as a standalone HTML line
// chart.
func WriteEquityCurve(w io.Writer, history portfolio.History) error {
	if len(history) == 0 {
		return fmt.Errorf("no snapshots to chart")
	}

	xAxis := make([]string, 0, len(history))
	equity := make([]opts.LineData, 0, len(history))
	for _, snap := range history {
		xAxis = append(xAxis, snap.TimeStamp.Format(time.RFC3339))
		value, _ := snap.Equity.Float64()
		equity = append(equity, opts.LineData{Value: value})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Equity Curve"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	line.SetXAxis(xAxis)
	line.AddSeries("Equity", equity)

	return line.Render(w)
}
