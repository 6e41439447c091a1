package portfolio

import (
	"context"
	"log/slog"

	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

const (
	portfolioComponentName = "portfolio.portfolio"

	defaultUnitSize = 10
)

// Portfolio turns strategy signals into market orders and keeps the
// account books. It marks positions on every bar, applies fills as they
// come back from the exchange and records an equity snapshot per bar.
type Portfolio struct {
	router *bus.Router

	initialCash fixed.Point
	cash        fixed.Point
	commission  fixed.Point

	unitSize fixed.Point

	positions map[string]*Position
	symbols   []string

	history History
	assets  AssetHistory
}

func NewPortfolio(router *bus.Router, initialCash fixed.Point, options ...Option) *Portfolio {
	p := &Portfolio{
		router:      router,
		initialCash: initialCash,
		cash:        initialCash,
		commission:  fixed.Zero,
		unitSize:    fixed.FromInt(defaultUnitSize, 0),
		positions:   make(map[string]*Position),
		assets:      make(AssetHistory),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// OnSignal sizes one market order proportionally to the signal strength.
// A strength of 1 buys a full unit, -1 sells a full unit, and fractional
// strengths scale in between. Every signal produces exactly one order;
// a quantity that rounds to zero still goes to the exchange so fills stay
// in step with signals.
func (p *Portfolio) OnSignal(_ context.Context, signal common.Signal) {
	quantity, ok := p.unitSize.Mul(signal.Strength).Int64()
	if !ok {
		slog.Warn("signal sizing overflows, dropping signal", "signal", signal)
		return
	}

	if err := p.router.Post(bus.OrderEvent, common.Order{
		Source:      portfolioComponentName,
		Symbol:      signal.Symbol,
		ExecutionId: utility.GetExecutionID(),
		TraceID:     signal.TraceID,
		TimeStamp:   signal.TimeStamp,
		Type:        common.OrderTypeMarket,
		Quantity:    quantity,
	}); err != nil {
		slog.Warn("unable to post order event", "error", err)
	}
}

// OnBar marks the symbol's position at the close and appends one account
// snapshot plus one asset snapshot per tracked symbol.
func (p *Portfolio) OnBar(_ context.Context, bar common.Bar) {
	p.position(bar.Symbol).Mark(bar.Close)

	holdings := fixed.Zero
	for _, symbol := range p.symbols {
		pos := p.positions[symbol]
		holdings = holdings.Add(pos.MarketValue())

		p.assets[symbol] = append(p.assets[symbol], AssetSnapshot{
			TimeStamp:   bar.TimeStamp,
			Quantity:    pos.Quantity,
			AverageCost: pos.AverageCost,
			MarketPrice: pos.MarketPrice,
		})
	}

	p.history = append(p.history, Snapshot{
		TimeStamp: bar.TimeStamp,
		Cash:      p.cash,
		Holdings:  holdings,
		Equity:    p.cash.Add(holdings),
	})
}

// OnFill settles a fill: cash moves by the signed fill cost and the
// commission is accrued separately.
func (p *Portfolio) OnFill(_ context.Context, fill common.Fill) {
	p.position(fill.Symbol).ApplyFill(fill)
	p.cash = p.cash.Sub(fill.FillCost)
	p.commission = p.commission.Add(fill.Commission)
}

func (p *Portfolio) Cash() fixed.Point {
	return p.cash
}

func (p *Portfolio) Commission() fixed.Point {
	return p.commission
}

func (p *Portfolio) Position(symbol string) *Position {
	return p.positions[symbol]
}

// History returns the recorded account snapshots in replay order.
func (p *Portfolio) History() History {
	return p.history
}

// AssetHistory returns the recorded per-symbol position snapshots, keyed
// by symbol. Each series holds one row per bar seen since the symbol was
// first tracked.
func (p *Portfolio) AssetHistory() AssetHistory {
	return p.assets
}

func (p *Portfolio) position(symbol string) *Position {
	pos, ok := p.positions[symbol]
	if !ok {
		pos = NewPosition(symbol)
		p.positions[symbol] = pos
		p.symbols = append(p.symbols, symbol)
	}
	return pos
}
