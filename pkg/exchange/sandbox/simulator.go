package sandbox

import (
	"context"
	"log/slog"

	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/circular"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

const (
	simulatorComponentName = "exchange.sandbox.simulator"

	defaultHistoryDepth = 10
)

// Simulator fills market orders against replayed bars. An order arriving
// during one bar is priced provisionally at the latest seen open and held
// back until the next bar arrives, where its cost is recomputed at that
// bar's open. Pending fills are released newest first.
type Simulator struct {
	router *bus.Router

	history *circular.Buffer[common.Bar]
	pending []common.Fill

	commissionHandler CommissionHandler
}

func NewSimulator(router *bus.Router, options ...Option) *Simulator {
	s := &Simulator{
		router:            router,
		history:           circular.NewBuffer[common.Bar](defaultHistoryDepth),
		commissionHandler: func(common.Order, fixed.Point) fixed.Point { return fixed.Zero },
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *Simulator) OnOrder(_ context.Context, order common.Order) {
	if order.Type != common.OrderTypeMarket {
		slog.Warn("only market orders are supported, dropping order", "order", order)
		return
	}

	fillCost := fixed.Zero
	if !s.history.IsEmpty() {
		fillCost = s.history.Latest().Open.MulInt64(order.Quantity)
	}

	s.pending = append(s.pending, common.Fill{
		Source:      simulatorComponentName,
		Symbol:      order.Symbol,
		ExecutionId: utility.GetExecutionID(),
		TraceID:     order.TraceID,
		TimeStamp:   order.TimeStamp,
		Quantity:    order.Quantity,
		FillCost:    fillCost,
	})
}

func (s *Simulator) OnBar(_ context.Context, bar common.Bar) {
	s.history.Push(bar)

	if len(s.pending) == 0 {
		return
	}

	// Release the most recently queued fill and reprice it at the
	// open of the bar that just arrived.
	fill := s.pending[len(s.pending)-1]
	s.pending = s.pending[:len(s.pending)-1]

	fill.FillCost = bar.Open.MulInt64(fill.Quantity)
	fill.Commission = s.commissionHandler(common.Order{
		Symbol:   fill.Symbol,
		Quantity: fill.Quantity,
	}, fill.FillCost)
	fill.TimeStamp = bar.TimeStamp

	if err := s.router.Post(bus.FillEvent, fill); err != nil {
		slog.Warn("unable to post fill event", "error", err)
	}
}

// PendingFillCount reports how many orders are still waiting for the next
// bar before they are released.
func (s *Simulator) PendingFillCount() int {
	return len(s.pending)
}
