package common

import (
	"time"

	"github.com/mhollan/solstice/pkg/utility"
)

type OrderType int

const (
	OrderTypeMarket OrderType = iota
	OrderTypeLimit
	OrderTypeStop
)

// Order requests an execution. Quantity is signed: positive buys, negative
// sells or shorts. The portfolio only ever emits market orders; limit and
// stop exist for custom sizing policies.
type Order struct {
	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
	Type        OrderType           `json:"type"`
	Quantity    int64               `json:"quantity"`
}
