package middleware

import (
	"testing"
	"time"

	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestLogger(_ *testing.T) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return zap.New(core), logs
}

func testTrade(side common.TradeSide) common.Trade {
	return common.Trade{
		Quantity:  10,
		Side:      side,
		Price:     fixed.FromInt64(20, 0),
		Symbol:    "POP",
		TimeStamp: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestMiddlewareMonitor_NewMonitor(t *testing.T) {
	m := NewMonitor(zap.NewNop(), MonitorBuys|MonitorSells)
	if m.flags != (MonitorBuys | MonitorSells) {
		t.Errorf("Expected flags %d, got %d", MonitorBuys|MonitorSells, m.flags)
	}
}

func TestMiddlewareMonitor_WithTrade(t *testing.T) {
	tests := []struct {
		name    string
		flags   MonitorFlags
		side    common.TradeSide
		wantLog bool
	}{
		{"all logs buy", MonitorAll, common.TradeSideBuy, true},
		{"all logs sell", MonitorAll, common.TradeSideSell, true},
		{"buys logs buy", MonitorBuys, common.TradeSideBuy, true},
		{"buys skips sell", MonitorBuys, common.TradeSideSell, false},
		{"sells logs sell", MonitorSells, common.TradeSideSell, true},
		{"none skips buy", MonitorNone, common.TradeSideBuy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := setupTestLogger(t)

			var handlerCalled bool
			handler := func(common.Trade) {
				handlerCalled = true
			}

			wrapped := NewMonitor(logger, tt.flags).WithTrade(handler)
			wrapped(testTrade(tt.side))

			if !handlerCalled {
				t.Error("Handler not called")
			}

			gotLog := logs.FilterMessage("trade").Len() == 1
			if gotLog != tt.wantLog {
				t.Errorf("Expected log entry %v, got %v", tt.wantLog, gotLog)
			}
		})
	}
}

func TestMiddlewareMonitor_LogFields(t *testing.T) {
	logger, logs := setupTestLogger(t)

	NewMonitor(logger, MonitorAll).WithTrade(NoopTradeHdl)(testTrade(common.TradeSideSell))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["symbol"] != "POP" {
		t.Errorf("Expected symbol POP, got %v", fields["symbol"])
	}
	if fields["side"] != "sell" {
		t.Errorf("Expected side sell, got %v", fields["side"])
	}
	if fields["price"] != "20" {
		t.Errorf("Expected price 20, got %v", fields["price"])
	}
}
