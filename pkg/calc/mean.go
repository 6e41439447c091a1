package calc

import (
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

func Mean(returns []fixed.Point) fixed.Point {
	if len(returns) == 0 {
		return fixed.Zero
	}
	sum := fixed.Zero
	for _, r := range returns {
		sum = sum.Add(r)
	}
	return sum.DivInt(len(returns))
}

func Sum(returns []fixed.Point) fixed.Point {
	sum := fixed.Zero
	for _, r := range returns {
		sum = sum.Add(r)
	}
	return sum
}
