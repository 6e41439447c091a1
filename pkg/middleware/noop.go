package middleware

import (
	"context"

	"github.com/mhollan/solstice/pkg/common"
)

//goland:noinspection ALL
var (
	NoopBarHdl    = func(context.Context, common.Bar) {}
	NoopSignalHdl = func(context.Context, common.Signal) {}
	NoopOrderHdl  = func(context.Context, common.Order) {}
	NoopFillHdl   = func(context.Context, common.Fill) {}
)
