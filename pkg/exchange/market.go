package exchange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
	"go.uber.org/zap"
)

var (
	ErrStockNotFound  = errors.New("stock is not present in market")
	ErrDuplicateStock = fmt.Errorf("%w: stock symbol is already registered", common.ErrInvalidArgument)
)

// Market holds a fixed set of stocks. Stocks are looked up case-insensitively.
type Market struct {
	logger *zap.Logger

	symbols []string
	stocks  map[string]*Stock
}

func NewMarket(stocks []*Stock, options ...MarketOption) (*Market, error) {
	m := &Market{
		logger: zap.NewNop(),
		stocks: make(map[string]*Stock, len(stocks)),
	}

	for _, option := range options {
		option(m)
	}

	for _, stock := range stocks {
		if stock == nil {
			return nil, fmt.Errorf("unable to register nil stock: %w", common.ErrInvalidArgument)
		}
		key := strings.ToUpper(stock.Symbol())
		if _, ok := m.stocks[key]; ok {
			return nil, fmt.Errorf("unable to register %s: %w", stock.Symbol(), ErrDuplicateStock)
		}
		m.stocks[key] = stock
		m.symbols = append(m.symbols, stock.Symbol())
	}

	m.logger.Info("market initialized", zap.Strings("symbols", m.symbols))
	return m, nil
}

func (m *Market) Get(symbol string) (*Stock, error) {
	stock, ok := m.stocks[strings.ToUpper(symbol)]
	if !ok {
		return nil, fmt.Errorf("unable to get stock with symbol %s: %w", symbol, ErrStockNotFound)
	}
	return stock, nil
}

func (m *Market) Contains(symbol string) bool {
	_, ok := m.stocks[strings.ToUpper(symbol)]
	return ok
}

func (m *Market) MustGet(symbol string) *Stock {
	stock, err := m.Get(symbol)
	if err != nil {
		panic(err.Error())
	}
	return stock
}

// Symbols returns the registered symbols in registration order.
func (m *Market) Symbols() []string {
	symbols := make([]string, len(m.symbols))
	copy(symbols, m.symbols)
	return symbols
}

func (m *Market) Len() int {
	return len(m.symbols)
}

// AllShareIndex is the geometric mean of every trade price recorded on every stock, over the
// whole ledger. ok is false when the market has no trades.
func (m *Market) AllShareIndex() (index fixed.Point, ok bool, err error) {
	var prices []fixed.Point
	for _, symbol := range m.symbols {
		prices = append(prices, m.stocks[strings.ToUpper(symbol)].prices()...)
	}

	m.logger.Debug("calculating all share index", zap.Int("prices", len(prices)))

	if len(prices) == 0 {
		return fixed.Zero, false, nil
	}

	index, err = fixed.GeometricMean(prices)
	if err != nil {
		return fixed.Zero, false, fmt.Errorf("unable to calculate all share index over %d prices: %w", len(prices), err)
	}
	return index.Round(resultScale), true, nil
}
