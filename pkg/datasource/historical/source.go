package historical

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/datasource"
	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

const sourceComponentName = "datasource.historical.source"

// BarRecord is the on-disk layout of one bar: 40 bytes, no padding.
// Records are stored chronologically; records sharing a timestamp form one
// cross-sectional batch.
type BarRecord struct {
	Symbol    [16]byte
	TimeStamp int64 // unix nanoseconds
	Open      float64
	Close     float64
}

func (rec BarRecord) SymbolString() string {
	return string(bytes.TrimRight(rec.Symbol[:], "\x00"))
}

// Source adapts a packed bar file to the BarSource interface.
type Source struct {
	reader *Reader[BarRecord]
	index  int64

	pending     *BarRecord
	executionId utility.ExecutionID
}

func NewSource(dataSourceName string) *Source {
	return &Source{
		reader:      NewReader[BarRecord](dataSourceName),
		executionId: utility.GetExecutionID(),
	}
}

func (s *Source) Open() error {
	return s.reader.Open()
}

func (s *Source) Close() {
	s.reader.Close()
}

// Next reads records until the timestamp changes and returns them as one
// batch. Returns datasource.ErrEof once the file is exhausted.
func (s *Source) Next() ([]common.Bar, error) {
	first, err := s.nextRecord()
	if err != nil {
		return nil, err
	}

	batch := []common.Bar{s.toBar(*first)}
	for {
		rec, err := s.nextRecord()
		if errors.Is(err, datasource.ErrEof) {
			return batch, nil
		}
		if err != nil {
			return nil, err
		}
		if rec.TimeStamp != first.TimeStamp {
			s.pending = rec
			return batch, nil
		}
		batch = append(batch, s.toBar(*rec))
	}
}

func (s *Source) nextRecord() (*BarRecord, error) {
	if s.pending != nil {
		rec := s.pending
		s.pending = nil
		return rec, nil
	}

	var rec BarRecord
	err := s.reader.Read(s.index, &rec)
	if errors.Is(err, io.EOF) {
		return nil, datasource.ErrEof
	}
	if err != nil {
		return nil, err
	}
	s.index++
	return &rec, nil
}

func (s *Source) toBar(rec BarRecord) common.Bar {
	return common.Bar{
		Source:      sourceComponentName,
		Symbol:      rec.SymbolString(),
		ExecutionId: s.executionId,
		TraceID:     utility.CreateTraceID(),
		TimeStamp:   time.Unix(0, rec.TimeStamp).UTC(),
		Open:        fixed.FromFloat64(rec.Open),
		Close:       fixed.FromFloat64(rec.Close),
	}
}
