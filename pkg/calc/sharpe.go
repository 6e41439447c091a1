package calc

import (
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// SharpeRatio is the annualized mean excess return over annualized
// volatility. A flat series has no defined ratio and yields zero.
func SharpeRatio(returns []fixed.Point, riskFree, periodsPerYear fixed.Point) fixed.Point {
	volatility := Volatility(returns, periodsPerYear)
	if volatility.IsZero() {
		return fixed.Zero
	}

	excess := make([]fixed.Point, len(returns))
	for i, r := range returns {
		excess[i] = r.Sub(riskFree)
	}
	return Mean(excess).Div(volatility).Mul(periodsPerYear.Sqrt())
}
