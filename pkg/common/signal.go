package common

import (
	"time"

	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

// Signal is a directional conviction emitted by a strategy. Strength lies in
// [-1, 1]: the sign gives the side, the magnitude the intended size weighting.
type Signal struct {
	Source      string              `json:"source,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
	Strength    fixed.Point         `json:"strength"`
}
