package common

import (
	"time"

	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Fill reports a simulated execution. Quantity matches the originating order;
// FillCost is the total notional (quantity times fill price). Commission is
// carried through even though the default execution model charges none.
type Fill struct {
	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
	Quantity    int64               `json:"quantity"`
	FillCost    fixed.Point         `json:"fill_cost"`
	Commission  fixed.Point         `json:"commission"`
}
