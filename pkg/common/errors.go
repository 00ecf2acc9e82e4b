package common

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single validation failure kind. More specific errors wrap it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrInvalidStockType = fmt.Errorf("%w: stock type must be Common or Preferred", ErrInvalidArgument)
	ErrInvalidTradeSide = fmt.Errorf("%w: trade side must be buy or sell", ErrInvalidArgument)
)
