package bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/mhollan/solstice/pkg/common"
)

var (
	ErrCapacityReached = errors.New("event capacity reached")
	ErrUnknownEvent    = errors.New("unknown event id")
)

type event struct {
	id   EventId
	data interface{}
}

// Router owns the shared event queue: a buffered channel drained by a single
// goroutine, so dispatch order is exactly post order. Components hold a
// reference to the router and post into it; none of them may drain it.
type Router struct {
	events chan event

	OnBar    BarEventHandler
	OnSignal SignalEventHandler
	OnOrder  OrderEventHandler
	OnFill   FillEventHandler

	runTime       atomic.Int64
	postCount     atomic.Uint64
	postFails     atomic.Uint64
	dispatchCount atomic.Uint64
}

func NewRouter(eventCapacity int) *Router {
	return &Router{
		events: make(chan event, eventCapacity),
	}
}

// Post appends an event to the back of the queue. It never blocks; posting
// past capacity is an error so that no event is ever silently dropped.
func (r *Router) Post(id EventId, data interface{}) error {
	select {
	case r.events <- event{id, data}:
		r.postCount.Add(1)
		return nil
	default:
		r.postFails.Add(1)
		return ErrCapacityReached
	}
}

// Exec drains the queue until the context is cancelled. The returned channel
// yields exactly one error: the context error, or the dispatch error that
// aborted the run.
func (r *Router) Exec(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	go func() {
		start := time.Now()

		// The run time must be on the books before done is signalled,
		// callers read Statistics right after receiving on done.
		finish := func(err error) {
			r.runTime.Add(int64(time.Since(start)))
			done <- err
		}

		for {
			select {
			case <-ctx.Done():
				finish(ctx.Err())
				return
			case ev := <-r.events:
				r.dispatchCount.Add(1)
				if err := r.dispatch(ctx, ev); err != nil {
					finish(err)
					return
				}
			}
		}
	}()

	return done
}

// ExecLoop drains the queue, calling doOnce only when no event is pending.
// Events posted while dispatching sort behind everything already queued but
// ahead of the next doOnce call, so one feed pull is fully processed -
// including everything it causes - before the next one happens.
func (r *Router) ExecLoop(ctx context.Context, doOnce func(context.Context) error) <-chan error {
	done := make(chan error, 1)

	go func() {
		start := time.Now()

		finish := func(err error) {
			r.runTime.Add(int64(time.Since(start)))
			done <- err
		}

		for {
			select {
			case <-ctx.Done():
				finish(ctx.Err())
				return
			case ev := <-r.events:
				r.dispatchCount.Add(1)
				if err := r.dispatch(ctx, ev); err != nil {
					finish(err)
					return
				}
			default:
				if err := doOnce(ctx); err != nil {
					finish(err)
					return
				}
			}
		}
	}()

	return done
}

func (r *Router) Statistics() Statistics {
	s := Statistics{
		RunTime:       time.Duration(r.runTime.Load()),
		PostCount:     r.postCount.Load(),
		PostFails:     r.postFails.Load(),
		DispatchCount: r.dispatchCount.Load(),
	}
	if secs := s.RunTime.Seconds(); secs > 0 {
		s.Throughput = float64(s.DispatchCount) / secs
	}
	return s
}

func (r *Router) dispatch(ctx context.Context, ev event) error {
	switch ev.id {
	case BarEvent:
		bar, ok := ev.data.(common.Bar)
		if !ok {
			return errors.New("invalid type assertion for bar event")
		}
		if r.OnBar != nil {
			r.OnBar(ctx, bar)
		} else {
			slog.Debug("bar handler is nil")
		}
	case SignalEvent:
		sig, ok := ev.data.(common.Signal)
		if !ok {
			return errors.New("invalid type assertion for signal event")
		}
		if r.OnSignal != nil {
			r.OnSignal(ctx, sig)
		} else {
			slog.Debug("signal handler is nil")
		}
	case OrderEvent:
		order, ok := ev.data.(common.Order)
		if !ok {
			return errors.New("invalid type assertion for order event")
		}
		if r.OnOrder != nil {
			r.OnOrder(ctx, order)
		} else {
			slog.Debug("order handler is nil")
		}
	case FillEvent:
		fill, ok := ev.data.(common.Fill)
		if !ok {
			return errors.New("invalid type assertion for fill event")
		}
		if r.OnFill != nil {
			r.OnFill(ctx, fill)
		} else {
			slog.Debug("fill handler is nil")
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownEvent, ev.id)
	}
	return nil
}
