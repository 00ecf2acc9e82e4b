package main

import (
	"fmt"
	"time"

	"github.com/peter-kozarec/gbce/internal/dbg"
	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/exchange"
	"github.com/peter-kozarec/gbce/pkg/middleware"
	"github.com/peter-kozarec/gbce/pkg/tools/store"
	"github.com/peter-kozarec/gbce/pkg/utility"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig(".env")
	if err != nil {
		panic(err)
	}

	logger, err := dbg.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	logger.Info("GBCE started", zap.String("version", Version), zap.Stringer("eid", utility.GetExecutionID()))
	defer logger.Info("GBCE finished")

	if err := run(logger, cfg, store.CreateSampleStore()); err != nil {
		logger.Error("GBCE failed", zap.Error(err))
	}
}

// run builds the market from stocks, records the demo trades on POP and logs the metrics.
func run(logger *zap.Logger, cfg *Config, stocks store.StockStore) error {
	telemetry := middleware.NewTelemetry(logger)
	monitor := middleware.NewMonitor(logger, cfg.MonitorFlags)
	defer telemetry.PrintStatistics()

	market, err := stocks.Market(
		[]exchange.StockOption{
			exchange.WithLogger(logger),
			exchange.WithVolumeWeightedWindow(cfg.VwapWindow),
			exchange.WithTradeHandler(middleware.Chain(telemetry.WithTrade, monitor.WithTrade)(middleware.NoopTradeHdl)),
		},
		exchange.WithMarketLogger(logger))
	if err != nil {
		return fmt.Errorf("unable to create market: %w", err)
	}

	pop, err := market.Get("POP")
	if err != nil {
		return err
	}

	price := fixed.FromInt64(70, 0)

	if dividendYield, err := pop.DividendYield(price); err != nil {
		logger.Error("unable to calculate dividend yield", zap.Error(err))
	} else {
		logger.Info("dividend yield", zap.String("symbol", pop.Symbol()), zap.String("value", dividendYield.String()))
	}

	if ratio, ok, err := pop.PeRatio(price); err != nil {
		logger.Error("unable to calculate p/e ratio", zap.Error(err))
	} else if ok {
		logger.Info("p/e ratio", zap.String("symbol", pop.Symbol()), zap.String("value", ratio.String()))
	} else {
		logger.Info("p/e ratio is not defined", zap.String("symbol", pop.Symbol()))
	}

	now := time.Now()
	trades := []struct {
		offset   time.Duration
		quantity int64
		side     common.TradeSide
		price    int64
	}{
		{12 * time.Minute, 13, common.TradeSideBuy, 59},
		{19 * time.Minute, 32, common.TradeSideBuy, 61},
		{200 * time.Minute, 3, common.TradeSideSell, 57},
	}
	for _, trade := range trades {
		if err := pop.RecordTrade(now.Add(-trade.offset), trade.quantity, trade.side, fixed.FromInt64(trade.price, 0)); err != nil {
			logger.Error("unable to record trade", zap.Error(err))
		}
	}

	if vwap, ok, err := pop.VolumeWeightedPrice(now); err != nil {
		logger.Error("unable to calculate volume weighted stock price", zap.Error(err))
	} else if ok {
		logger.Info("volume weighted stock price", zap.String("symbol", pop.Symbol()), zap.String("value", vwap.String()))
	} else {
		logger.Info("volume weighted stock price is not defined", zap.String("symbol", pop.Symbol()))
	}

	if index, ok, err := market.AllShareIndex(); err != nil {
		logger.Error("unable to calculate GBCE all share index", zap.Error(err))
	} else if ok {
		logger.Info("GBCE all share index", zap.String("value", index.String()))
	} else {
		logger.Info("GBCE all share index is not defined")
	}
	return nil
}
