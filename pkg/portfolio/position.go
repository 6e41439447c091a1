package portfolio

import (
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Position tracks the net quantity held in one symbol together with the
// volume-weighted average cost of acquiring it. Quantity is signed, a
// negative value is a short position.
type Position struct {
	Symbol      string
	Quantity    int64
	AverageCost fixed.Point
	MarketPrice fixed.Point
}

func NewPosition(symbol string) *Position {
	return &Position{
		Symbol:      symbol,
		AverageCost: fixed.Zero,
		MarketPrice: fixed.Zero,
	}
}

// ApplyFill folds a fill into the position. The average cost is the total
// spent divided by the total quantity; a position that returns to flat
// resets its average cost to zero.
func (p *Position) ApplyFill(fill common.Fill) {
	quantityAfter := p.Quantity + fill.Quantity
	if quantityAfter == 0 {
		p.Quantity = 0
		p.AverageCost = fixed.Zero
		return
	}

	costBefore := p.AverageCost.MulInt64(p.Quantity)
	p.AverageCost = costBefore.Add(fill.FillCost).DivInt64(quantityAfter)
	p.Quantity = quantityAfter
}

// Mark records the latest close so the position can be valued.
func (p *Position) Mark(price fixed.Point) {
	p.MarketPrice = price
}

func (p *Position) MarketValue() fixed.Point {
	return p.MarketPrice.MulInt64(p.Quantity)
}

func (p *Position) IsFlat() bool {
	return p.Quantity == 0
}
