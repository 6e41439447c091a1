package backtest

import (
	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/middleware"
)

type Option func(*Engine)

// WithBarDecorators wraps the merged bar handler, outermost first.
func WithBarDecorators(decorators ...func(bus.BarEventHandler) bus.BarEventHandler) Option {
	return func(e *Engine) {
		e.router.OnBar = middleware.Chain(decorators...)(e.router.OnBar)
	}
}

func WithSignalDecorators(decorators ...func(bus.SignalEventHandler) bus.SignalEventHandler) Option {
	return func(e *Engine) {
		e.router.OnSignal = middleware.Chain(decorators...)(e.router.OnSignal)
	}
}

func WithOrderDecorators(decorators ...func(bus.OrderEventHandler) bus.OrderEventHandler) Option {
	return func(e *Engine) {
		e.router.OnOrder = middleware.Chain(decorators...)(e.router.OnOrder)
	}
}

func WithFillDecorators(decorators ...func(bus.FillEventHandler) bus.FillEventHandler) Option {
	return func(e *Engine) {
		e.router.OnFill = middleware.Chain(decorators...)(e.router.OnFill)
	}
}
