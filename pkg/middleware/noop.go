package middleware

import (
	"github.com/peter-kozarec/gbce/pkg/common"
)

//goland:noinspection ALL
var (
	NoopTradeHdl = func(common.Trade) {}
)
