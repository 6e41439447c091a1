package portfolio

import (
	"time"

	"go.uber.org/zap"

	"github.com/mhollan/solstice/pkg/calc"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Snapshot captures the account after one bar has been processed. A bar
// for every subscribed symbol produces a snapshot, so timestamps repeat
// within one replay tick.
type Snapshot struct {
	TimeStamp time.Time   `json:"ts"`
	Cash      fixed.Point `json:"cash"`
	Holdings  fixed.Point `json:"holdings"`
	Equity    fixed.Point `json:"equity"`
}

type History []Snapshot

// AssetSnapshot captures one symbol's position after one bar has been
// processed. Every tracked symbol gets a row per bar, flat positions
// included.
type AssetSnapshot struct {
	TimeStamp   time.Time   `json:"ts"`
	Quantity    int64       `json:"quantity"`
	AverageCost fixed.Point `json:"average_cost"`
	MarketPrice fixed.Point `json:"market_price"`
}

// AssetHistory holds the per-symbol snapshot series, keyed by symbol.
type AssetHistory map[string][]AssetSnapshot

// PeriodReturns is the percentage change of equity between consecutive
// snapshots. The first period has no predecessor and reports zero.
func (h History) PeriodReturns() []fixed.Point {
	returns := make([]fixed.Point, len(h))
	for i := range h {
		if i == 0 {
			returns[i] = fixed.Zero
			continue
		}
		prev := h[i-1].Equity
		if prev.IsZero() {
			returns[i] = fixed.Zero
			continue
		}
		returns[i] = h[i].Equity.Sub(prev).Div(prev)
	}
	return returns
}

func (h History) timeStamps() []time.Time {
	stamps := make([]time.Time, len(h))
	for i := range h {
		stamps[i] = h[i].TimeStamp
	}
	return stamps
}

type Summary struct {
	CumulativeReturn     fixed.Point
	AnnualizedVolatility fixed.Point
	SharpeRatio          fixed.Point
	MaxDrawdown          fixed.Point
}

// Summarize derives the performance metrics from the snapshot series. The
// annualization factor is inferred from the snapshot timestamps.
func (h History) Summarize() Summary {
	returns := h.PeriodReturns()
	periodsPerYear := calc.PeriodsPerYear(h.timeStamps())

	return Summary{
		CumulativeReturn:     calc.Sum(returns),
		AnnualizedVolatility: calc.Volatility(returns, periodsPerYear),
		SharpeRatio:          calc.SharpeRatio(returns, fixed.Zero, periodsPerYear),
		MaxDrawdown:          calc.MaxDrawdown(returns),
	}
}

func (s Summary) Fields() []zap.Field {
	return []zap.Field{
		zap.String("cumulative_return", s.CumulativeReturn.String()),
		zap.String("annualized_volatility", s.AnnualizedVolatility.String()),
		zap.String("sharpe_ratio", s.SharpeRatio.String()),
		zap.String("max_drawdown", s.MaxDrawdown.String()),
	}
}
