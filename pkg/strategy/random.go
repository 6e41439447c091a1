package strategy

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

const randomComponentName = "strategy.random"

// Random posts a uniformly distributed signal strength in [-1, 1] for
// every bar. Useful as a baseline when judging other strategies.
type Random struct {
	router *bus.Router
	rng    *rand.Rand
}

func NewRandom(router *bus.Router, rng *rand.Rand) (*Random, error) {
	if router == nil {
		return nil, errors.New("random strategy requires a router")
	}
	if rng == nil {
		return nil, errors.New("random strategy requires a rand source")
	}
	return &Random{router: router, rng: rng}, nil
}

func (r *Random) OnBar(_ context.Context, bar common.Bar) {
	strength := fixed.FromFloat64(2*r.rng.Float64() - 1)

	if err := r.router.Post(bus.SignalEvent, common.Signal{
		Source:      randomComponentName,
		Symbol:      bar.Symbol,
		ExecutionId: utility.GetExecutionID(),
		TraceID:     utility.CreateTraceID(),
		TimeStamp:   bar.TimeStamp,
		Strength:    strength,
	}); err != nil {
		slog.Warn("unable to post signal event", "error", err)
	}
}
