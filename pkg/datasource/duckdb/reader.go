package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/mhollan/solstice/pkg/common"
	"github.com/mhollan/solstice/pkg/utility"
	"github.com/mhollan/solstice/pkg/utility/fixed"
)

const sourceComponentName = "datasource.duckdb.reader"

type Reader struct {
	dataSourceName string
	db             *sql.DB
	executionId    utility.ExecutionID
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
		executionId:    utility.GetExecutionID(),
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %v", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadBars reads the bar table for symbol ordered by timestamp and invokes
// handler for every row. The table is expected to hold ts, open and close
// columns.
func (r *Reader) LoadBars(ctx context.Context, symbol string, from, to time.Time, handler func(bar common.Bar) error) error {

	query := fmt.Sprintf(`SELECT ts, open, close FROM %s_bars WHERE ts BETWEEN ? AND ? ORDER BY ts`, symbol)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			panic(err)
		}
	}(rows)

	for rows.Next() {
		var timeStamp time.Time
		var open, closePrice float64
		if err := rows.Scan(&timeStamp, &open, &closePrice); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
		bar := common.Bar{
			Source:      sourceComponentName,
			Symbol:      symbol,
			ExecutionId: r.executionId,
			TraceID:     utility.CreateTraceID(),
			TimeStamp:   timeStamp,
			Open:        fixed.FromFloat64(open),
			Close:       fixed.FromFloat64(closePrice),
		}
		if err := handler(bar); err != nil {
			return fmt.Errorf("error processing bar: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
