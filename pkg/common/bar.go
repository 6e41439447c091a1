package common

import (
	"time"

	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Bar is the market event for one symbol at one simulation tick. Immutable
// once posted.
type Bar struct {
	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
	Open        fixed.Point         `json:"open"`
	Close       fixed.Point         `json:"close"`
}
