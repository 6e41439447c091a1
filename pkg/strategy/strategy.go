package strategy

import (
	"context"

	"github.com/mhollan/solstice/pkg/common"
)

// Strategy consumes replayed bars and posts signals back to the router.
type Strategy interface {
	OnBar(ctx context.Context, bar common.Bar)
}
