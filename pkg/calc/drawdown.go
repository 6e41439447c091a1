package calc

import (
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Drawdowns maps a period-return series to the drawdown at each period:
// the fractional distance of compounded equity below its running peak.
func Drawdowns(returns []fixed.Point) []fixed.Point {
	if len(returns) == 0 {
		return nil
	}

	drawdowns := make([]fixed.Point, len(returns))
	cumulative := fixed.One
	peak := fixed.Zero

	for i, r := range returns {
		cumulative = cumulative.Mul(fixed.One.Add(r))
		if cumulative.Gt(peak) {
			peak = cumulative
		}
		if peak.IsZero() {
			drawdowns[i] = fixed.Zero
			continue
		}
		drawdowns[i] = cumulative.Sub(peak).Div(peak)
	}
	return drawdowns
}

// MaxDrawdown is the most negative drawdown, as a negative fraction.
func MaxDrawdown(returns []fixed.Point) fixed.Point {
	worst := fixed.Zero
	for _, dd := range Drawdowns(returns) {
		if dd.Lt(worst) {
			worst = dd
		}
	}
	return worst
}
