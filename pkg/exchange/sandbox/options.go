package sandbox

import (
	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility/circular"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

type Option func(*Simulator)
type CommissionHandler func(order common.Order, fillCost fixed.Point) fixed.Point

func WithCommissionHandler(commissionHandler CommissionHandler) Option {
	return func(s *Simulator) {
		s.commissionHandler = commissionHandler
	}
}

func WithHistoryDepth(depth uint) Option {
	return func(s *Simulator) {
		s.history = circular.NewBuffer[common.Bar](depth)
	}
}

// FixedCommission charges the same amount on every fill regardless of size.
func FixedCommission(amount fixed.Point) CommissionHandler {
	return func(common.Order, fixed.Point) fixed.Point {
		return amount
	}
}
