package calc

import (
	"sort"
	"time"

	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// tradingYear is the conventional 252-day annualization basis.
const tradingYear = 252 * 24 * time.Hour

// defaultPeriodsPerYear is used when the spacing of a series cannot be
// inferred, i.e. fewer than two distinct timestamps.
var defaultPeriodsPerYear = fixed.FromInt(252, 0)

// PeriodsPerYear infers the annualization factor of a series from the median
// spacing of its timestamps. Zero deltas (several snapshots sharing one
// timestamp) are ignored.
func PeriodsPerYear(stamps []time.Time) fixed.Point {
	var deltas []time.Duration
	for i := 1; i < len(stamps); i++ {
		if d := stamps[i].Sub(stamps[i-1]); d > 0 {
			deltas = append(deltas, d)
		}
	}
	if len(deltas) == 0 {
		return defaultPeriodsPerYear
	}

	sort.Slice(deltas, func(i, j int) bool { return deltas[i] < deltas[j] })
	median := deltas[len(deltas)/2]
	if len(deltas)%2 == 0 {
		median = (deltas[len(deltas)/2-1] + deltas[len(deltas)/2]) / 2
	}

	return fixed.FromFloat64(float64(tradingYear) / float64(median))
}
