package bus

import (
	"context"

	"github.com/mhollan/solstice/pkg/common"
)

type EventHandler[T any] func(context.Context, T)

type BarEventHandler = EventHandler[common.Bar]
type SignalEventHandler = EventHandler[common.Signal]
type OrderEventHandler = EventHandler[common.Order]
type FillEventHandler = EventHandler[common.Fill]

// MergeHandlers composes handlers into one; they run in argument order. The
// engine relies on this to dispatch a bar to the strategy, then the execution
// simulator, then the portfolio.
func MergeHandlers[T any](handlers ...EventHandler[T]) EventHandler[T] {
	return func(ctx context.Context, event T) {
		for _, handler := range handlers {
			handler(ctx, event)
		}
	}
}
