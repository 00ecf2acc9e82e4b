package exchange

import (
	"time"

	"github.com/peter-kozarec/gbce/pkg/common"
	"go.uber.org/zap"
)

type StockOption func(*Stock)
type MarketOption func(*Market)

// TradeHandler is called after a trade has been appended to a stock ledger.
type TradeHandler func(common.Trade)

func WithLogger(logger *zap.Logger) StockOption {
	return func(s *Stock) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithTradeHandler(handler TradeHandler) StockOption {
	return func(s *Stock) {
		s.tradeHandler = handler
	}
}

// WithVolumeWeightedWindow overrides the trailing window used by VolumeWeightedPrice.
func WithVolumeWeightedWindow(window time.Duration) StockOption {
	return func(s *Stock) {
		if window > 0 {
			s.vwapWindow = window
		}
	}
}

func WithMarketLogger(logger *zap.Logger) MarketOption {
	return func(m *Market) {
		if logger != nil {
			m.logger = logger
		}
	}
}
