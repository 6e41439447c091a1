package backtest

import (
	"context"
	"errors"

	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/datasource"
	"github.com/mhollan/solstice/pkg/exchange/sandbox"
	"github.com/mhollan/solstice/pkg/portfolio"
	"github.com/mhollan/solstice/pkg/strategy"
)

// Engine wires the replay components onto one router and drives the run.
// Bars are dispatched to the strategy first, then the exchange simulator,
// then the portfolio, mirroring the cause-and-effect chain of one tick.
// A feed batch is fully processed, including every event it caused, before
// the next batch is pulled.
type Engine struct {
	router    *bus.Router
	source    datasource.BarSource
	strategy  strategy.Strategy
	portfolio *portfolio.Portfolio
	simulator *sandbox.Simulator
}

func NewEngine(
	router *bus.Router,
	source datasource.BarSource,
	strat strategy.Strategy,
	port *portfolio.Portfolio,
	simulator *sandbox.Simulator,
	options ...Option,
) (*Engine, error) {
	if router == nil {
		return nil, errors.New("engine requires a router")
	}
	if source == nil {
		return nil, errors.New("engine requires a bar source")
	}
	if strat == nil {
		return nil, errors.New("engine requires a strategy")
	}
	if port == nil {
		return nil, errors.New("engine requires a portfolio")
	}
	if simulator == nil {
		return nil, errors.New("engine requires a simulator")
	}

	e := &Engine{
		router:    router,
		source:    source,
		strategy:  strat,
		portfolio: port,
		simulator: simulator,
	}

	router.OnBar = bus.MergeHandlers(e.strategy.OnBar, e.simulator.OnBar, e.portfolio.OnBar)
	router.OnSignal = e.portfolio.OnSignal
	router.OnOrder = e.simulator.OnOrder
	router.OnFill = e.portfolio.OnFill

	for _, option := range options {
		option(e)
	}

	return e, nil
}

// Run replays the feed to exhaustion. It returns nil when the feed ends,
// otherwise the error that aborted the run.
func (e *Engine) Run(ctx context.Context) error {
	err := <-e.router.ExecLoop(ctx, datasource.CreateBarDispatcher(e.router, e.source))
	if errors.Is(err, datasource.ErrEof) {
		return nil
	}
	return err
}

// History exposes the portfolio snapshots recorded during the run.
func (e *Engine) History() portfolio.History {
	return e.portfolio.History()
}

// AssetHistory exposes the per-symbol position snapshots, keyed by symbol.
func (e *Engine) AssetHistory() portfolio.AssetHistory {
	return e.portfolio.AssetHistory()
}

func (e *Engine) Statistics() bus.Statistics {
	return e.router.Statistics()
}
