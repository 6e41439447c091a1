package synthetic

import (
	"math"
	"math/rand"
	"time"

	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/datasource"
	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

const sourceComponentName = "datasource.synthetic.generator"

// Generator produces geometric Brownian motion bars for a set of symbols.
// Each call to Next emits one batch holding a bar per symbol, all sharing
// the same timestamp. The sequence is fully determined by the seed of the
// injected rand source.
type Generator struct {
	symbols []string
	prices  map[string]float64

	drift      float64
	volatility float64
	interval   time.Duration

	clock time.Time
	step  int
	steps int

	rng         *rand.Rand
	executionId utility.ExecutionID
}

func NewGenerator(rng *rand.Rand, symbols []string, start time.Time, interval time.Duration, steps int) *Generator {
	if len(symbols) == 0 {
		panic("synthetic generator requires at least one symbol")
	}
	if steps <= 0 {
		panic("synthetic generator requires a positive step count")
	}

	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		prices[symbol] = 100.0
	}

	return &Generator{
		symbols:     symbols,
		prices:      prices,
		drift:       0.0001,
		volatility:  0.01,
		interval:    interval,
		clock:       start,
		steps:       steps,
		rng:         rng,
		executionId: utility.GetExecutionID(),
	}
}

func (g *Generator) Next() ([]common.Bar, error) {
	if g.step >= g.steps {
		return nil, datasource.ErrEof
	}

	batch := make([]common.Bar, 0, len(g.symbols))
	for _, symbol := range g.symbols {
		open := g.prices[symbol]
		shock := g.drift - 0.5*g.volatility*g.volatility + g.volatility*g.rng.NormFloat64()
		closePrice := open * math.Exp(shock)
		g.prices[symbol] = closePrice

		batch = append(batch, common.Bar{
			Source:      sourceComponentName,
			Symbol:      symbol,
			ExecutionId: g.executionId,
			TraceID:     utility.CreateTraceID(),
			TimeStamp:   g.clock,
			Open:        fixed.FromFloat64(open),
			Close:       fixed.FromFloat64(closePrice),
		})
	}

	g.step++
	g.clock = g.clock.Add(g.interval)
	return batch, nil
}
