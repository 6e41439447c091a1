package calc

import (
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Volatility annualizes the sample standard deviation of a period-return
// series by sqrt(periodsPerYear).
func Volatility(returns []fixed.Point, periodsPerYear fixed.Point) fixed.Point {
	return SampleStandardDeviation(returns).Mul(periodsPerYear.Sqrt())
}
