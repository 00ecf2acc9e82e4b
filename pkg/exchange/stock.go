package exchange

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/utility"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

const (
	DefaultVolumeWeightedWindow = 15 * time.Minute

	resultScale = 2
)

var (
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be positive", common.ErrInvalidArgument)
	ErrInvalidPrice    = fmt.Errorf("%w: price must be positive", common.ErrInvalidArgument)
	ErrInvalidDividend = fmt.Errorf("%w: invalid dividend", common.ErrInvalidArgument)
	ErrInvalidParValue = fmt.Errorf("%w: par value must be positive", common.ErrInvalidArgument)
	ErrInvalidSymbol   = fmt.Errorf("%w: symbol must not be empty", common.ErrInvalidArgument)
	ErrInvalidNotional = fmt.Errorf("%w: price times quantity is out of range", common.ErrInvalidArgument)
)

// Stock is a single tradable instrument with its own trade ledger.
// The ledger is append-only and safe for concurrent use.
type Stock struct {
	logger       *zap.Logger
	tradeHandler TradeHandler
	vwapWindow   time.Duration

	symbol        string
	stockType     common.StockType
	lastDividend  fixed.Point
	fixedDividend fixed.Point
	parValue      fixed.Point
	dividend      fixed.Point

	mu     sync.RWMutex
	trades []common.Trade
}

// NewStock validates the static parameters of a stock. fixedDividend is a percentage such as
// "2%" and is only read for preferred stocks, where it is required.
func NewStock(symbol string, stockType common.StockType, lastDividend fixed.Point, fixedDividend string, parValue fixed.Point, options ...StockOption) (*Stock, error) {
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}
	if !stockType.IsValid() {
		return nil, fmt.Errorf("unable to create stock %s with type %v: %w", symbol, stockType, common.ErrInvalidStockType)
	}
	if lastDividend.IsNegative() {
		return nil, fmt.Errorf("unable to create stock %s with last dividend %s: %w", symbol, lastDividend, ErrInvalidDividend)
	}
	if !parValue.IsPositive() {
		return nil, fmt.Errorf("unable to create stock %s with par value %s: %w", symbol, parValue, ErrInvalidParValue)
	}

	s := &Stock{
		logger:       zap.NewNop(),
		vwapWindow:   DefaultVolumeWeightedWindow,
		symbol:       symbol,
		stockType:    stockType,
		lastDividend: lastDividend,
		parValue:     parValue,
		dividend:     lastDividend,
	}

	if stockType == common.StockTypePreferred {
		rate, err := fixed.ParsePercent(fixedDividend)
		if err != nil {
			return nil, fmt.Errorf("unable to create stock %s: %w: %w", symbol, ErrInvalidDividend, err)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("unable to create stock %s with fixed dividend %s: %w", symbol, fixedDividend, ErrInvalidDividend)
		}
		if s.dividend, err = rate.TryMul(parValue); err != nil {
			return nil, fmt.Errorf("unable to create stock %s with fixed dividend %s: %w: %w", symbol, fixedDividend, ErrInvalidDividend, err)
		}
		s.fixedDividend = rate
	}

	for _, option := range options {
		option(s)
	}

	s.logger.Debug("stock created", s.Fields()...)
	return s, nil
}

func (s *Stock) Symbol() string            { return s.symbol }
func (s *Stock) Type() common.StockType    { return s.stockType }
func (s *Stock) LastDividend() fixed.Point { return s.lastDividend }
func (s *Stock) ParValue() fixed.Point     { return s.parValue }

func (s *Stock) VolumeWeightedWindow() time.Duration {
	return s.vwapWindow
}

// FixedDividend returns the fixed dividend as a fraction. ok is false for common stocks.
func (s *Stock) FixedDividend() (fixed.Point, bool) {
	if s.stockType != common.StockTypePreferred {
		return fixed.Zero, false
	}
	return s.fixedDividend, true
}

// DividendYield returns the dividend relative to price, rounded to two decimal places.
func (s *Stock) DividendYield(price fixed.Point) (fixed.Point, error) {
	if !price.IsPositive() {
		return fixed.Zero, fmt.Errorf("unable to calculate dividend yield of %s for price %s: %w", s.symbol, price, ErrInvalidPrice)
	}
	dividendYield, err := s.dividend.TryDiv(price)
	if err != nil {
		return fixed.Zero, fmt.Errorf("unable to calculate dividend yield of %s for price %s: %w: %w", s.symbol, price, ErrInvalidPrice, err)
	}
	return dividendYield.Round(resultScale), nil
}

// PeRatio returns price / dividend yield. ok is false when the yield is not positive.
func (s *Stock) PeRatio(price fixed.Point) (ratio fixed.Point, ok bool, err error) {
	dividendYield, err := s.DividendYield(price)
	if err != nil {
		return fixed.Zero, false, fmt.Errorf("unable to calculate p/e ratio: %w", err)
	}
	if !dividendYield.IsPositive() {
		return fixed.Zero, false, nil
	}
	ratio, err = price.TryDiv(dividendYield)
	if err != nil {
		return fixed.Zero, false, fmt.Errorf("unable to calculate p/e ratio of %s for price %s: %w: %w", s.symbol, price, ErrInvalidPrice, err)
	}
	return ratio.Round(resultScale), true, nil
}

// RecordTrade appends a trade to the ledger. Invalid input leaves the ledger untouched.
func (s *Stock) RecordTrade(timestamp time.Time, quantity int64, side common.TradeSide, price fixed.Point) error {
	if !side.IsValid() {
		return fmt.Errorf("unable to record trade for %s with side %v: %w", s.symbol, side, common.ErrInvalidTradeSide)
	}
	if quantity <= 0 {
		return fmt.Errorf("unable to record trade for %s with quantity %d: %w", s.symbol, quantity, ErrInvalidQuantity)
	}
	if !price.IsPositive() {
		return fmt.Errorf("unable to record trade for %s with price %s: %w", s.symbol, price, ErrInvalidPrice)
	}

	trade := common.Trade{
		Quantity:    quantity,
		Side:        side,
		Price:       price,
		Symbol:      s.symbol,
		ExecutionId: utility.GetExecutionID(),
		TraceID:     utility.NextTraceID(),
		TimeStamp:   timestamp,
	}
	if _, err := trade.Notional(); err != nil {
		return fmt.Errorf("unable to record trade for %s with quantity %d and price %s: %w: %w", s.symbol, quantity, price, ErrInvalidNotional, err)
	}

	s.mu.Lock()
	s.trades = append(s.trades, trade)
	s.mu.Unlock()

	s.logger.Debug("trade recorded", trade.Fields()...)

	if s.tradeHandler != nil {
		s.tradeHandler(trade)
	}
	return nil
}

// RecordTradeString is RecordTrade with the side given as "buy" or "sell".
func (s *Stock) RecordTradeString(timestamp time.Time, quantity int64, side string, price fixed.Point) error {
	tradeSide, err := common.ParseTradeSide(side)
	if err != nil {
		return fmt.Errorf("unable to record trade for %s: %w", s.symbol, err)
	}
	return s.RecordTrade(timestamp, quantity, tradeSide, price)
}

// VolumeWeightedPrice averages prices weighted by quantity over trades recorded at or after
// now minus the window. ok is false when no trade falls into the window. An error is returned
// when the windowed volume or notional no longer fits into a decimal.
func (s *Stock) VolumeWeightedPrice(now time.Time) (fixed.Point, bool, error) {
	from := now.Add(-s.vwapWindow)

	var prices []fixed.Point
	var quantities []int64

	s.mu.RLock()
	for _, trade := range s.trades {
		if trade.TimeStamp.Before(from) {
			continue
		}
		prices = append(prices, trade.Price)
		quantities = append(quantities, trade.Quantity)
	}
	s.mu.RUnlock()

	if len(prices) == 0 {
		s.logger.Debug("no trades in volume weighted window",
			zap.String("symbol", s.symbol),
			zap.Time("from", from),
			zap.Time("to", now))
		return fixed.Zero, false, nil
	}

	vwap, err := fixed.WeightedMean(prices, quantities)
	if err != nil {
		return fixed.Zero, false, fmt.Errorf("unable to calculate volume weighted price of %s over %d trades: %w", s.symbol, len(prices), err)
	}
	return vwap.Round(resultScale), true, nil
}

// Trades returns a copy of the ledger in recording order.
func (s *Stock) Trades() []common.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trades := make([]common.Trade, len(s.trades))
	copy(trades, s.trades)
	return trades
}

func (s *Stock) TradeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}

func (s *Stock) prices() []fixed.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prices := make([]fixed.Point, 0, len(s.trades))
	for _, trade := range s.trades {
		prices = append(prices, trade.Price)
	}
	return prices
}

func (s *Stock) Fields() []zap.Field {
	fields := []zap.Field{
		zap.String("symbol", s.symbol),
		zap.Stringer("type", s.stockType),
		zap.String("last_dividend", s.lastDividend.String()),
		zap.String("par_value", s.parValue.String()),
	}
	if rate, ok := s.FixedDividend(); ok {
		fields = append(fields, zap.String("fixed_dividend", rate.String()))
	}
	return fields
}

// IsInvalidArgument reports whether err is a validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, common.ErrInvalidArgument)
}
