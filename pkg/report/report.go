package report

import (
	"time"

	"go.uber.org/zap"

	"github.com/mhollan/solstice/pkg/portfolio"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Report is the end-of-run account view derived from the snapshot series.
type Report struct {
	StartDate            time.Time
	EndDate              time.Time
	InitialEquity        fixed.Point
	FinalEquity          fixed.Point
	CumulativeReturn     fixed.Point
	AnnualizedVolatility fixed.Point
	SharpeRatio          fixed.Point
	MaxDrawdown          fixed.Point
	Snapshots            int
}

func Generate(history portfolio.History) Report {
	if len(history) == 0 {
		return Report{}
	}

	summary := history.Summarize()
	return Report{
		StartDate:            history[0].TimeStamp,
		EndDate:              history[len(history)-1].TimeStamp,
		InitialEquity:        history[0].Equity,
		FinalEquity:          history[len(history)-1].Equity,
		CumulativeReturn:     summary.CumulativeReturn,
		AnnualizedVolatility: summary.AnnualizedVolatility,
		SharpeRatio:          summary.SharpeRatio,
		MaxDrawdown:          summary.MaxDrawdown,
		Snapshots:            len(history),
	}
}

func (report Report) Print(logger *zap.Logger) {
	logger.Info("performance report",
		zap.Time("start_date", report.StartDate),
		zap.Time("end_date", report.EndDate),
		zap.Int("snapshots", report.Snapshots),
		zap.String("initial_equity", report.InitialEquity.String()),
		zap.String("final_equity", report.FinalEquity.String()),
	)

	logger.Info("risk metrics",
		zap.String("cumulative_return", report.CumulativeReturn.String()),
		zap.String("annualized_volatility", report.AnnualizedVolatility.String()),
		zap.String("sharpe_ratio", report.SharpeRatio.String()),
		zap.String("max_drawdown", report.MaxDrawdown.String()),
	)
}
