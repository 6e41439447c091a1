package strategy

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/mhollan/solstice/pkg/bus"
	"github.com/mhollan/solstice/pkg/calc"
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/circular"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

const momentumComponentName = "strategy.momentum"

type pendingExit struct {
	due      int
	strength fixed.Point
}

// Momentum is a cross-sectional momentum rule. Over a formation window of
// formationPeriods bars it computes each symbol's simple return, ranks the
// cross section, shorts the bottom decile and buys the top decile. Every
// entry schedules an offsetting exit holdingPeriods later, so positions
// are held for a fixed number of periods.
type Momentum struct {
	router  *bus.Router
	symbols []string

	formationPeriods int
	holdingPeriods   int

	closes  map[string]*fixed.RingBuffer
	pending map[string]*circular.Queue[pendingExit]

	period    int
	timeStamp time.Time
	seen      map[string]struct{}
}

func NewMomentum(router *bus.Router, symbols []string, formationPeriods, holdingPeriods int) (*Momentum, error) {
	if router == nil {
		return nil, errors.New("momentum requires a router")
	}
	if len(symbols) == 0 {
		return nil, errors.New("momentum requires at least one symbol")
	}
	if formationPeriods <= 0 {
		return nil, errors.New("formation window must be positive")
	}
	if holdingPeriods <= 0 {
		return nil, errors.New("holding window must be positive")
	}

	sorted := append([]string(nil), symbols...)
	slices.Sort(sorted)
	symbols = sorted

	closes := make(map[string]*fixed.RingBuffer, len(symbols))
	pending := make(map[string]*circular.Queue[pendingExit], len(symbols))
	for _, symbol := range symbols {
		closes[symbol] = fixed.NewRingBuffer(formationPeriods)
		pending[symbol] = circular.NewQueue[pendingExit](uint(holdingPeriods))
	}

	return &Momentum{
		router:           router,
		symbols:          symbols,
		formationPeriods: formationPeriods,
		holdingPeriods:   holdingPeriods,
		closes:           closes,
		pending:          pending,
		seen:             make(map[string]struct{}, len(symbols)),
	}, nil
}

func (m *Momentum) OnBar(_ context.Context, bar common.Bar) {
	closes, ok := m.closes[bar.Symbol]
	if !ok {
		return
	}

	if !bar.TimeStamp.Equal(m.timeStamp) {
		m.period++
		m.timeStamp = bar.TimeStamp
		clear(m.seen)
	}

	closes.Add(bar.Close)
	m.seen[bar.Symbol] = struct{}{}

	// Exits that have served their holding period go out on the symbol's
	// own tick, ahead of any entry decided this period.
	queue := m.pending[bar.Symbol]
	if !queue.IsEmpty() && queue.Front().due <= m.period {
		m.post(bar.Symbol, queue.Pop().strength)
	}

	if m.period >= m.formationPeriods && len(m.seen) == len(m.symbols) {
		m.rank()
	}
}

// rank computes formation returns for the whole cross section, derives the
// decile thresholds and emits entry signals. The short branch is evaluated
// first, so a symbol sitting on both boundaries goes short.
func (m *Momentum) rank() {
	returns := make(map[string]fixed.Point, len(m.symbols))
	ranking := make([]float64, 0, len(m.symbols))
	for _, symbol := range m.symbols {
		closes := m.closes[symbol]
		ret := closes.Latest().Div(closes.Oldest()).Sub(fixed.One)
		returns[symbol] = ret
		f, _ := ret.Float64()
		ranking = append(ranking, f)
	}

	lower := calc.Percentile(ranking, 10)
	upper := calc.Percentile(ranking, 90)

	for _, symbol := range m.symbols {
		// A symbol still inside its holding period does not re-enter.
		if !m.pending[symbol].IsEmpty() {
			continue
		}
		f, _ := returns[symbol].Float64()
		switch {
		case f <= lower:
			m.enter(symbol, fixed.NegOne)
		case f >= upper:
			m.enter(symbol, fixed.One)
		}
	}
}

func (m *Momentum) enter(symbol string, strength fixed.Point) {
	m.post(symbol, strength)
	m.pending[symbol].Push(pendingExit{
		due:      m.period + m.holdingPeriods + 1,
		strength: strength.Neg(),
	})
}

func (m *Momentum) post(symbol string, strength fixed.Point) {
	if err := m.router.Post(bus.SignalEvent, common.Signal{
		Source:      momentumComponentName,
		Symbol:      symbol,
		ExecutionId: utility.GetExecutionID(),
		TraceID:     utility.CreateTraceID(),
		TimeStamp:   m.timeStamp,
		Strength:    strength,
	}); err != nil {
		slog.Warn("unable to post signal event", "error", err)
	}
}
