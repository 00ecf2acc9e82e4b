package middleware

import (
	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/exchange"
	"go.uber.org/zap"
)

type MonitorFlags uint16

//goland:noinspection GoUnusedConst
const (
	MonitorNone MonitorFlags = 1 << iota
	MonitorAll
	MonitorBuys
	MonitorSells
)

type Monitor struct {
	logger *zap.Logger
	flags  MonitorFlags
}

func NewMonitor(logger *zap.Logger, flags MonitorFlags) *Monitor {
	return &Monitor{
		logger: logger,
		flags:  flags,
	}
}

func (m *Monitor) WithTrade(handler exchange.TradeHandler) exchange.TradeHandler {
	return func(trade common.Trade) {
		if m.enabled(trade.Side) {
			m.logger.Info("trade", trade.Fields()...)
		}
		handler(trade)
	}
}

func (m *Monitor) enabled(side common.TradeSide) bool {
	if m.flags&MonitorAll != 0 {
		return true
	}
	switch side {
	case common.TradeSideBuy:
		return m.flags&MonitorBuys != 0
	case common.TradeSideSell:
		return m.flags&MonitorSells != 0
	default:
		return false
	}
}
