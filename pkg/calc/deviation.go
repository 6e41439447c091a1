package calc

import (
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// SampleStandardDeviation is the n-1 estimator, matching what return series
// conventionally use.
func SampleStandardDeviation(returns []fixed.Point) fixed.Point {
	if len(returns) <= 1 {
		return fixed.Zero
	}

	mean := Mean(returns)
	sum := fixed.Zero
	for _, r := range returns {
		diff := r.Sub(mean)
		sum = sum.Add(diff.Mul(diff))
	}
	return sum.DivInt(len(returns) - 1).Sqrt()
}
