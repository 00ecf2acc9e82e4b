package common

import (
	"fmt"
	"strings"
)

type StockType int

const (
	StockTypeCommon StockType = iota
	StockTypePreferred
)

// ParseStockType accepts "Common" or "Preferred", ignoring case and surrounding spaces.
func ParseStockType(s string) (StockType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "common":
		return StockTypeCommon, nil
	case "preferred":
		return StockTypePreferred, nil
	default:
		return 0, fmt.Errorf("unable to parse stock type %q: %w", s, ErrInvalidStockType)
	}
}

func (t StockType) IsValid() bool {
	return t == StockTypeCommon || t == StockTypePreferred
}

func (t StockType) String() string {
	switch t {
	case StockTypeCommon:
		return "Common"
	case StockTypePreferred:
		return "Preferred"
	default:
		return fmt.Sprintf("StockType(%d)", int(t))
	}
}

func (t StockType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, ErrInvalidStockType
	}
	return []byte(t.String()), nil
}

func (t *StockType) UnmarshalText(text []byte) error {
	parsed, err := ParseStockType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
