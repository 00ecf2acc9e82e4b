package middleware

import (
	"sync/atomic"

	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/exchange"
	"go.uber.org/zap"
)

type Telemetry struct {
	logger *zap.Logger

	tradeCounter atomic.Int64
	buyCounter   atomic.Int64
	sellCounter  atomic.Int64
	volume       atomic.Int64
}

func NewTelemetry(logger *zap.Logger) *Telemetry {
	return &Telemetry{
		logger: logger,
	}
}

func (t *Telemetry) WithTrade(handler exchange.TradeHandler) exchange.TradeHandler {
	return func(trade common.Trade) {
		t.tradeCounter.Add(1)
		t.volume.Add(trade.Quantity)
		switch trade.Side {
		case common.TradeSideBuy:
			t.buyCounter.Add(1)
		case common.TradeSideSell:
			t.sellCounter.Add(1)
		}
		handler(trade)
	}
}

func (t *Telemetry) TradeCount() int64 { return t.tradeCounter.Load() }
func (t *Telemetry) BuyCount() int64   { return t.buyCounter.Load() }
func (t *Telemetry) SellCount() int64  { return t.sellCounter.Load() }
func (t *Telemetry) Volume() int64     { return t.volume.Load() }

func (t *Telemetry) PrintStatistics() {
	t.logger.Info("trade statistics",
		zap.Int64("trades", t.TradeCount()),
		zap.Int64("buy_trades", t.BuyCount()),
		zap.Int64("sell_trades", t.SellCount()),
		zap.Int64("volume", t.Volume()))
}
