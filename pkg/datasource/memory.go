package datasource

import (
	"github.com/mhollan/solstice/pkg/common"
)

// Memory replays pre-loaded batches. It backs the duckdb path and tests.
type Memory struct {
	batches [][]common.Bar
	index   int
}

func NewMemory(batches [][]common.Bar) *Memory {
	return &Memory{batches: batches}
}

// NewMemoryFromBars groups a chronologically ordered bar slice into
// per-timestamp batches and replays those.
func NewMemoryFromBars(bars []common.Bar) *Memory {
	return NewMemory(GroupByTimeStamp(bars))
}

func (m *Memory) Next() ([]common.Bar, error) {
	if m.index >= len(m.batches) {
		return nil, ErrEof
	}
	batch := m.batches[m.index]
	m.index++
	return batch, nil
}

// Rewind restarts the replay from the first batch.
func (m *Memory) Rewind() {
	m.index = 0
}
