package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/peter-kozarec/gbce/pkg/utility"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

type TradeSide int

const (
	TradeSideBuy TradeSide = iota
	TradeSideSell
)

// ParseTradeSide accepts "buy" or "sell", ignoring case and surrounding spaces.
func ParseTradeSide(s string) (TradeSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return TradeSideBuy, nil
	case "sell":
		return TradeSideSell, nil
	default:
		return 0, fmt.Errorf("unable to parse trade side %q: %w", s, ErrInvalidTradeSide)
	}
}

func (s TradeSide) IsValid() bool {
	return s == TradeSideBuy || s == TradeSideSell
}

func (s TradeSide) String() string {
	switch s {
	case TradeSideBuy:
		return "buy"
	case TradeSideSell:
		return "sell"
	default:
		return fmt.Sprintf("TradeSide(%d)", int(s))
	}
}

func (s TradeSide) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidTradeSide
	}
	return []byte(s.String()), nil
}

func (s *TradeSide) UnmarshalText(text []byte) error {
	parsed, err := ParseTradeSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Trade struct {
	Quantity int64       `json:"quantity"`
	Side     TradeSide   `json:"side"`
	Price    fixed.Point `json:"price"`

	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	TimeStamp   time.Time           `json:"ts"`
}

// Notional is price times quantity. It fails with fixed.ErrOutOfRange when the product
// does not fit into a decimal.
func (t Trade) Notional() (fixed.Point, error) {
	return t.Price.TryMulInt64(t.Quantity)
}

func (t Trade) Fields() []zap.Field {
	return []zap.Field{
		zap.String("symbol", t.Symbol),
		zap.Stringer("side", t.Side),
		zap.Int64("quantity", t.Quantity),
		zap.String("price", t.Price.String()),
		zap.Time("ts", t.TimeStamp),
		zap.Uint64("tid", t.TraceID),
	}
}
