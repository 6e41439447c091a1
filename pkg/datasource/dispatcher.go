package datasource

import (
	"context"
	"fmt"

	"github.com/mhollan/solstice/pkg/bus"
)

// CreateBarDispatcher adapts a BarSource to the router's feed callback. The
// whole batch is posted before the router drains again, so every bar of one
// timestamp is queued ahead of anything the batch causes. A failed post is
// fatal: dropping an event would corrupt the simulation.
func CreateBarDispatcher(r *bus.Router, ds BarSource) func(context.Context) error {
	return func(context.Context) error {
		batch, err := ds.Next()
		if err != nil {
			return err
		}
		for _, bar := range batch {
			if err := r.Post(bus.BarEvent, bar); err != nil {
				return fmt.Errorf("unable to post bar for %q: %w", bar.Symbol, err)
			}
		}
		return nil
	}
}
