package portfolio

import (
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

type Option func(*Portfolio)

// WithUnitSize sets the quantity ordered for a full-strength signal.
func WithUnitSize(unitSize fixed.Point) Option {
	return func(p *Portfolio) {
		p.unitSize = unitSize
	}
}
