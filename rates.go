package getprice

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// ExchangeRate converts USD amounts into Currency.
type ExchangeRate struct {
	Currency string  // ISO 4217 code, also used as display symbol
	Factor   float64 // units of Currency per USD
}

// USDRate is the identity rate.
var USDRate = ExchangeRate{Currency: money.USD, Factor: 1}

// ExchangeRate returns the USD to code conversion rate.
//
// USD never hits the network. Other codes must be ISO currencies; they are
// read from a single call to the rates endpoint.
func (c *Client) ExchangeRate(ctx context.Context, code string) (ExchangeRate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == money.USD {
		return USDRate, nil
	}
	if money.GetCurrency(code) == nil {
		return ExchangeRate{}, &UnsupportedCurrencyError{Code: code}
	}

	doc, err := jwget(ctx, c.HTTP, c.Endpoints.Rates)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("cannot get %s exchange rate: %w", code, err)
	}
	factor, err := rateDecode(doc, code)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("cannot get %s exchange rate: %w", code, err)
	}
	return ExchangeRate{Currency: code, Factor: factor}, nil
}

// rateDecode reads rates.<code> from a USD based rates response:
//
//	{"base_code": "USD", "rates": {"USD": 1, "GBP": 0.75, ...}}
func rateDecode(doc any, code string) (float64, error) {
	return lookupPrice(doc, fmt.Sprintf("$.rates[%q]", code))
}

// MarshalJSON writes the rate as {"currency":..., "exchange_rate":...}.
func (r ExchangeRate) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", r.Currency)
	w.Append("exchange_rate", r.Factor)
	return w.MarshalJSON()
}
