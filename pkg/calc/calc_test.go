package calc

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mhollan/solstice/pkg/utility/fixed"
)

func points(values ...float64) []fixed.Point {
	out := make([]fixed.Point, len(values))
	for i, v := range values {
		out[i] = fixed.FromFloat64(v)
	}
	return out
}

func asFloat(t *testing.T, p fixed.Point) float64 {
	t.Helper()
	f, ok := p.Float64()
	if !ok {
		t.Fatalf("cannot represent %s as float64", p)
	}
	return f
}

func TestCalc_Mean(t *testing.T) {
	assert.True(t, Mean(nil).IsZero())
	assert.True(t, Mean(points(1, 2, 3)).Eq(fixed.FromInt(2, 0)))
}

func TestCalc_SampleStandardDeviation(t *testing.T) {
	assert.True(t, SampleStandardDeviation(points(5)).IsZero())

	// {2,4,4,4,6}: sample variance 2.
	got := asFloat(t, SampleStandardDeviation(points(2, 4, 4, 4, 6)))
	assert.InDelta(t, math.Sqrt(2), got, 1e-9)
}

func TestCalc_Volatility(t *testing.T) {
	returns := points(0.01, -0.02, 0.03, 0.01)
	ppy := fixed.FromInt(252, 0)

	want := asFloat(t, SampleStandardDeviation(returns)) * math.Sqrt(252)
	got := asFloat(t, Volatility(returns, ppy))
	assert.InDelta(t, want, got, 1e-9)
}

func TestCalc_SharpeRatio(t *testing.T) {
	returns := points(0.01, 0.02, -0.01, 0.03)
	ppy := fixed.FromInt(252, 0)

	vol := asFloat(t, Volatility(returns, ppy))
	want := asFloat(t, Mean(returns)) / vol * math.Sqrt(252)
	got := asFloat(t, SharpeRatio(returns, fixed.Zero, ppy))
	assert.InDelta(t, want, got, 1e-9)

	// Flat series has zero volatility and a zero ratio.
	assert.True(t, SharpeRatio(points(0.01, 0.01), fixed.Zero, ppy).IsZero())
}

func TestCalc_MaxDrawdown(t *testing.T) {
	// Equity path 1.0 -> 1.1 -> 0.88 -> 0.968: worst drawdown -20% from the 1.1 peak.
	returns := points(0.10, -0.20, 0.10)

	got := asFloat(t, MaxDrawdown(returns))
	assert.InDelta(t, -0.20, got, 1e-9)

	// Monotonic growth never draws down.
	assert.True(t, MaxDrawdown(points(0.01, 0.02, 0.03)).IsZero())
}

func TestCalc_Drawdowns(t *testing.T) {
	dds := Drawdowns(points(0.10, -0.20))
	assert.Len(t, dds, 2)
	assert.True(t, dds[0].IsZero())
	assert.InDelta(t, -0.20, asFloat(t, dds[1]), 1e-9)
}

func TestCalc_Percentile(t *testing.T) {
	values := []float64{-0.10, 0.20}

	assert.InDelta(t, -0.07, Percentile(values, 10), 1e-9)
	assert.InDelta(t, 0.17, Percentile(values, 90), 1e-9)
	assert.InDelta(t, -0.10, Percentile(values, 0), 1e-9)
	assert.InDelta(t, 0.20, Percentile(values, 100), 1e-9)
	assert.Equal(t, 0.0, Percentile(nil, 50))

	assert.InDelta(t, 2.5, Percentile([]float64{1, 2, 3, 4}, 50), 1e-9)
}

func TestCalc_PeriodsPerYear(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	daily := []time.Time{start, start.Add(24 * time.Hour), start.Add(48 * time.Hour)}
	assert.InDelta(t, 252, asFloat(t, PeriodsPerYear(daily)), 1e-9)

	// Repeated timestamps (one snapshot round per symbol) are ignored.
	dup := []time.Time{start, start, start.Add(24 * time.Hour), start.Add(24 * time.Hour)}
	assert.InDelta(t, 252, asFloat(t, PeriodsPerYear(dup)), 1e-9)

	hourly := []time.Time{start, start.Add(time.Hour), start.Add(2 * time.Hour)}
	assert.InDelta(t, 252*24, asFloat(t, PeriodsPerYear(hourly)), 1e-9)

	// Not inferable: fall back to a daily basis.
	assert.InDelta(t, 252, asFloat(t, PeriodsPerYear([]time.Time{start})), 1e-9)
}
