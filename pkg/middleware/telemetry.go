package middleware

import (
	"context"

	"go.uber.org/zap"

	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/common"
)

type Telemetry struct {
	logger *zap.Logger

	barEventCounter    int64
	signalEventCounter int64
	orderEventCounter  int64
	fillEventCounter   int64
}

func NewTelemetry(logger *zap.Logger) *Telemetry {
	return &Telemetry{
		logger: logger,
	}
}

func (t *Telemetry) WithBar(handler bus.BarEventHandler) bus.BarEventHandler {
	return func(ctx context.Context, bar common.Bar) {
		t.barEventCounter++
		handler(ctx, bar)
	}
}

func (t *Telemetry) WithSignal(handler bus.SignalEventHandler) bus.SignalEventHandler {
	return func(ctx context.Context, signal common.Signal) {
		t.signalEventCounter++
		handler(ctx, signal)
	}
}

func (t *Telemetry) WithOrder(handler bus.OrderEventHandler) bus.OrderEventHandler {
	return func(ctx context.Context, order common.Order) {
		t.orderEventCounter++
		handler(ctx, order)
	}
}

func (t *Telemetry) WithFill(handler bus.FillEventHandler) bus.FillEventHandler {
	return func(ctx context.Context, fill common.Fill) {
		t.fillEventCounter++
		handler(ctx, fill)
	}
}

func (t *Telemetry) PrintStatistics() {
	t.logger.Info("event statistics",
		zap.Int64("bar_events", t.barEventCounter),
		zap.Int64("signal_events", t.signalEventCounter),
		zap.Int64("order_events", t.orderEventCounter),
		zap.Int64("fill_events", t.fillEventCounter))
}
