package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peter-kozarec/gbce/pkg/common"
	"github.com/peter-kozarec/gbce/pkg/exchange"
	"github.com/peter-kozarec/gbce/pkg/utility/fixed"
)

var (
	ErrStockNotPresent = errors.New("stock is not present in stock table")
)

// StockDefinition describes a stock the way sample tables and configuration files do,
// with every value still in its textual form.
type StockDefinition struct {
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
	LastDividend  string `json:"last_dividend"`
	FixedDividend string `json:"fixed_dividend,omitempty"`
	ParValue      string `json:"par_value"`
}

// Stock parses the definition and creates the stock.
func (d StockDefinition) Stock(options ...exchange.StockOption) (*exchange.Stock, error) {
	stockType, err := common.ParseStockType(d.Type)
	if err != nil {
		return nil, fmt.Errorf("unable to create stock %s: %w", d.Symbol, err)
	}
	lastDividend, err := fixed.Parse(d.LastDividend)
	if err != nil {
		return nil, fmt.Errorf("unable to create stock %s: %w: %w", d.Symbol, common.ErrInvalidArgument, err)
	}
	parValue, err := fixed.Parse(d.ParValue)
	if err != nil {
		return nil, fmt.Errorf("unable to create stock %s: %w: %w", d.Symbol, common.ErrInvalidArgument, err)
	}
	return exchange.NewStock(d.Symbol, stockType, lastDividend, d.FixedDividend, parValue, options...)
}

type StockStore struct {
	definitions []StockDefinition
}

func CreateStockStore(definitions ...StockDefinition) StockStore {
	return StockStore{
		definitions: definitions,
	}
}

func (s StockStore) Contains(symbol string) bool {
	if _, err := s.Get(symbol); err != nil {
		return false
	}
	return true
}

func (s StockStore) Get(symbol string) (StockDefinition, error) {
	for _, definition := range s.definitions {
		if strings.EqualFold(definition.Symbol, symbol) {
			return definition, nil
		}
	}
	return StockDefinition{}, fmt.Errorf("unable to get stock with symbol %s: %w", symbol, ErrStockNotPresent)
}

func (s StockStore) MustGet(symbol string) StockDefinition {
	definition, err := s.Get(symbol)
	if err != nil {
		panic(err.Error())
	}
	return definition
}

func (s StockStore) Definitions() []StockDefinition {
	definitions := make([]StockDefinition, len(s.definitions))
	copy(definitions, s.definitions)
	return definitions
}

// Market creates every stock in the store with the same stock options and registers them.
func (s StockStore) Market(stockOptions []exchange.StockOption, marketOptions ...exchange.MarketOption) (*exchange.Market, error) {
	stocks := make([]*exchange.Stock, 0, len(s.definitions))
	for _, definition := range s.definitions {
		stock, err := definition.Stock(stockOptions...)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, stock)
	}
	return exchange.NewMarket(stocks, marketOptions...)
}

// CreateSampleStore returns the Global Beverage Corporation Exchange sample data.
func CreateSampleStore() StockStore {
	return CreateStockStore([]StockDefinition{
		{Symbol: "TEA", Type: "Common", LastDividend: "0", ParValue: "100"},
		{Symbol: "POP", Type: "Common", LastDividend: "8", ParValue: "100"},
		{Symbol: "ALE", Type: "Common", LastDividend: "23", ParValue: "60"},
		{Symbol: "GIN", Type: "Preferred", LastDividend: "8", FixedDividend: "2%", ParValue: "100"},
		{Symbol: "JOE", Type: "Common", LastDividend: "13", ParValue: "250"},
	}...)
}
