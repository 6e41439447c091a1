package datasource

import (
	"errors"

	"github.com/mhollan/solstice/pkg/common"
)

// ErrEof signals normal exhaustion of a bar source; the run ends when the
// dispatcher returns it.
var ErrEof = errors.New("EOF")

// BarSource produces one batch of bars per call: all subscribed symbols
// sharing a single timestamp, in chronological batch order.
type BarSource interface {
	Next() ([]common.Bar, error)
}

// GroupByTimeStamp splits a chronologically ordered bar slice into
// per-timestamp batches.
func GroupByTimeStamp(bars []common.Bar) [][]common.Bar {
	var batches [][]common.Bar
	for i := 0; i < len(bars); {
		j := i + 1
		for j < len(bars) && bars[j].TimeStamp.Equal(bars[i].TimeStamp) {
			j++
		}
		batches = append(batches, bars[i:j])
		i = j
	}
	return batches
}
