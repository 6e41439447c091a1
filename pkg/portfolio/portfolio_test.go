package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

func createTestPortfolio(options ...Option) (*Portfolio, *[]common.Order) {
	router := bus.NewRouter(1000)
	orders := &[]common.Order{}
	router.OnOrder = func(_ context.Context, order common.Order) {
		*orders = append(*orders, order)
	}
	p := NewPortfolio(router, fixed.FromInt(100000, 0), options...)
	return p, orders
}

func drainOrders(t *testing.T, p *Portfolio) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	stop := func(context.Context) error { return context.Canceled }
	<-p.router.ExecLoop(ctx, stop)
}

func TestPosition_ApplyFill(t *testing.T) {
	pos := NewPosition("AAA")

	pos.ApplyFill(common.Fill{Quantity: 10, FillCost: fixed.FromInt(1000, 0)})
	assert.Equal(t, int64(10), pos.Quantity)
	assert.True(t, pos.AverageCost.Eq(fixed.FromInt(100, 0)),
		"expected avg cost 100, got %s", pos.AverageCost)

	pos.ApplyFill(common.Fill{Quantity: 10, FillCost: fixed.FromInt(1200, 0)})
	assert.Equal(t, int64(20), pos.Quantity)
	assert.True(t, pos.AverageCost.Eq(fixed.FromInt(110, 0)),
		"expected avg cost 110, got %s", pos.AverageCost)

	pos.ApplyFill(common.Fill{Quantity: -20, FillCost: fixed.FromInt(-2400, 0)})
	assert.True(t, pos.IsFlat())
	assert.True(t, pos.AverageCost.IsZero(), "flat position must reset avg cost")
}

func TestPosition_AverageCostBoundedByFillPrices(t *testing.T) {
	pos := NewPosition("AAA")
	pos.ApplyFill(common.Fill{Quantity: 10, FillCost: fixed.FromInt(1000, 0)}) // 100 each
	pos.ApplyFill(common.Fill{Quantity: 5, FillCost: fixed.FromInt(600, 0)})   // 120 each

	assert.True(t, pos.AverageCost.Gte(fixed.FromInt(100, 0)))
	assert.True(t, pos.AverageCost.Lte(fixed.FromInt(120, 0)))
}

func TestPortfolio_OnSignalSizesOrder(t *testing.T) {
	p, orders := createTestPortfolio()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p.OnSignal(ctx, common.Signal{Symbol: "AAA", TimeStamp: ts, Strength: fixed.One})
	p.OnSignal(ctx, common.Signal{Symbol: "BBB", TimeStamp: ts, Strength: fixed.NegOne})
	p.OnSignal(ctx, common.Signal{Symbol: "CCC", TimeStamp: ts, Strength: fixed.FromFloat64(0.5)})
	p.OnSignal(ctx, common.Signal{Symbol: "DDD", TimeStamp: ts, Strength: fixed.Zero})
	drainOrders(t, p)

	require.Len(t, *orders, 4, "every signal emits exactly one order")
	assert.Equal(t, int64(10), (*orders)[0].Quantity)
	assert.Equal(t, common.OrderTypeMarket, (*orders)[0].Type)
	assert.Equal(t, int64(-10), (*orders)[1].Quantity)
	assert.Equal(t, int64(5), (*orders)[2].Quantity)
	assert.Equal(t, int64(0), (*orders)[3].Quantity)
}

func TestPortfolio_WeakSignalStillEmitsOrder(t *testing.T) {
	p, orders := createTestPortfolio()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// 10 * 0.04 rounds to zero units, but the order still has to go out
	// so the exchange's fill sequencing stays in step with signals.
	p.OnSignal(ctx, common.Signal{Symbol: "AAA", TimeStamp: ts, Strength: fixed.FromFloat64(0.04)})
	drainOrders(t, p)

	require.Len(t, *orders, 1)
	assert.Equal(t, "AAA", (*orders)[0].Symbol)
	assert.Equal(t, int64(0), (*orders)[0].Quantity)
	assert.Equal(t, common.OrderTypeMarket, (*orders)[0].Type)
}

func TestPortfolio_OnBarRecordsSnapshot(t *testing.T) {
	p, _ := createTestPortfolio()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p.OnFill(ctx, common.Fill{Symbol: "AAA", Quantity: 10, FillCost: fixed.FromInt(1000, 0)})
	p.OnBar(ctx, common.Bar{Symbol: "AAA", TimeStamp: ts, Close: fixed.FromInt(110, 0)})

	require.Len(t, p.History(), 1)
	snap := p.History()[0]
	assert.True(t, snap.Cash.Eq(fixed.FromInt(99000, 0)), "cash: %s", snap.Cash)
	assert.True(t, snap.Holdings.Eq(fixed.FromInt(1100, 0)), "holdings: %s", snap.Holdings)
	assert.True(t, snap.Equity.Eq(fixed.FromInt(100100, 0)), "equity: %s", snap.Equity)
	assert.True(t, snap.Equity.Eq(snap.Cash.Add(snap.Holdings)))
}

func TestPortfolio_SnapshotPerBar(t *testing.T) {
	p, _ := createTestPortfolio()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p.OnBar(ctx, common.Bar{Symbol: "AAA", TimeStamp: ts, Close: fixed.FromInt(100, 0)})
	p.OnBar(ctx, common.Bar{Symbol: "BBB", TimeStamp: ts, Close: fixed.FromInt(50, 0)})

	require.Len(t, p.History(), 2, "each bar appends its own snapshot")
	assert.Equal(t, ts, p.History()[0].TimeStamp)
	assert.Equal(t, ts, p.History()[1].TimeStamp)
}

func TestPortfolio_OnBarRecordsAssetSnapshots(t *testing.T) {
	p, _ := createTestPortfolio()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p.OnFill(ctx, common.Fill{Symbol: "AAA", Quantity: 10, FillCost: fixed.FromInt(1000, 0)})
	p.OnBar(ctx, common.Bar{Symbol: "AAA", TimeStamp: ts, Close: fixed.FromInt(110, 0)})

	assets := p.AssetHistory()
	require.Len(t, assets["AAA"], 1)
	row := assets["AAA"][0]
	assert.Equal(t, ts, row.TimeStamp)
	assert.Equal(t, int64(10), row.Quantity)
	assert.True(t, row.AverageCost.Eq(fixed.FromInt(100, 0)), "avg cost: %s", row.AverageCost)
	assert.True(t, row.MarketPrice.Eq(fixed.FromInt(110, 0)), "market price: %s", row.MarketPrice)
}

func TestPortfolio_AssetSnapshotPerTrackedSymbolPerBar(t *testing.T) {
	p, _ := createTestPortfolio()
	ctx := context.Background()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := ts.Add(time.Hour)

	p.OnBar(ctx, common.Bar{Symbol: "AAA", TimeStamp: ts, Close: fixed.FromInt(100, 0)})
	p.OnBar(ctx, common.Bar{Symbol: "BBB", TimeStamp: ts, Close: fixed.FromInt(50, 0)})
	p.OnBar(ctx, common.Bar{Symbol: "AAA", TimeStamp: later, Close: fixed.FromInt(101, 0)})

	assets := p.AssetHistory()
	// Every bar appends a row for every symbol already tracked, flat
	// positions included. BBB enters on the second bar, so AAA leads
	// by one row.
	require.Len(t, assets["AAA"], 3)
	require.Len(t, assets["BBB"], 2)
	assert.Equal(t, int64(0), assets["AAA"][0].Quantity)
	assert.True(t, assets["AAA"][2].MarketPrice.Eq(fixed.FromInt(101, 0)))
	assert.True(t, assets["BBB"][1].MarketPrice.Eq(fixed.FromInt(50, 0)),
		"BBB keeps its last mark on AAA's bar, got %s", assets["BBB"][1].MarketPrice)
	assert.Equal(t, later, assets["BBB"][1].TimeStamp)
}

func TestPortfolio_OnFillMovesCashAndAccruesCommission(t *testing.T) {
	p, _ := createTestPortfolio()
	ctx := context.Background()

	p.OnFill(ctx, common.Fill{
		Symbol:     "AAA",
		Quantity:   10,
		FillCost:   fixed.FromInt(1200, 0),
		Commission: fixed.FromInt(3, 0),
	})

	assert.True(t, p.Cash().Eq(fixed.FromInt(98800, 0)), "cash: %s", p.Cash())
	assert.True(t, p.Commission().Eq(fixed.FromInt(3, 0)))
	require.NotNil(t, p.Position("AAA"))
	assert.Equal(t, int64(10), p.Position("AAA").Quantity)

	// Selling moves cash back in; the fill cost of a sale is negative.
	p.OnFill(ctx, common.Fill{
		Symbol:     "AAA",
		Quantity:   -10,
		FillCost:   fixed.FromInt(-1300, 0),
		Commission: fixed.FromInt(3, 0),
	})
	assert.True(t, p.Cash().Eq(fixed.FromInt(100100, 0)), "cash: %s", p.Cash())
	assert.True(t, p.Commission().Eq(fixed.FromInt(6, 0)))
	assert.True(t, p.Position("AAA").IsFlat())
}

func TestHistory_PeriodReturns(t *testing.T) {
	h := History{
		{Equity: fixed.FromInt(100, 0)},
		{Equity: fixed.FromInt(110, 0)},
		{Equity: fixed.FromInt(99, 0)},
	}

	returns := h.PeriodReturns()
	require.Len(t, returns, 3)
	assert.True(t, returns[0].IsZero(), "first period has no return")
	assert.True(t, returns[1].Eq(fixed.FromFloat64(0.1)), "got %s", returns[1])
	assert.True(t, returns[2].Eq(fixed.FromFloat64(-0.1)), "got %s", returns[2])
}

func TestHistory_Summarize(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := History{
		{TimeStamp: start, Equity: fixed.FromInt(100, 0)},
		{TimeStamp: start.Add(24 * time.Hour), Equity: fixed.FromInt(110, 0)},
		{TimeStamp: start.Add(48 * time.Hour), Equity: fixed.FromInt(99, 0)},
	}

	summary := h.Summarize()
	assert.True(t, summary.CumulativeReturn.IsZero(), "0.1 - 0.1 sums to zero, got %s",
		summary.CumulativeReturn)
	assert.True(t, summary.MaxDrawdown.Lt(fixed.Zero), "drawdown must be negative, got %s",
		summary.MaxDrawdown)
	assert.False(t, summary.AnnualizedVolatility.IsZero())
}
