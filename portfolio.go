package getprice

import (
	"context"
	"math"

	"github.com/shopspring/decimal"
)

// PriceFetcher prices one unit of an asset in USD.
type PriceFetcher interface {
	FetchUSDPrice(ctx context.Context, a Asset) (float64, error)
}

// Quote is the valuation of one holding.
type Quote struct {
	Amount       float64 // number of units held
	Asset        string  // ticker
	Currency     string  // target currency code
	ExchangeRate float64 // USD to Currency factor used
	Value        float64 // Amount * UnitPrice, rounded to the cent
	UnitPrice    float64 // in Currency, rounded to the cent
	UnitPriceUSD float64 // rounded to the cent
}

// MarshalJSON writes the quote with a fixed key order.
func (q Quote) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", q.Amount)
	w.Append("asset", q.Asset)
	w.Append("currency", q.Currency)
	w.Append("exchange_rate", q.ExchangeRate)
	w.Append("value", q.Value)
	w.Append("unit_price", q.UnitPrice)
	w.Append("unit_price_usd", q.UnitPriceUSD)
	return w.MarshalJSON()
}

// Result is the valuation of a whole portfolio. Prices are in input order.
type Result struct {
	GrandTotal float64
	Prices     []Quote
}

// MarshalJSON writes the result as {"grand_total":..., "prices":[...]}.
func (r Result) MarshalJSON() ([]byte, error) {
	prices := r.Prices
	if prices == nil {
		prices = []Quote{}
	}
	var w jsonObjectWriter
	w.Append("grand_total", r.GrandTotal)
	w.Append("prices", prices)
	return w.MarshalJSON()
}

// Currency returns the target currency of the result, "" if it is empty.
func (r Result) Currency() string {
	if len(r.Prices) == 0 {
		return ""
	}
	return r.Prices[0].Currency
}

// PricePortfolio values amounts[i] units of assets[i] in rate.Currency.
//
// Assets are priced one after the other, in order. The first failure aborts
// the whole valuation. The grand total is the sum of the already rounded line
// values, so the displayed lines always add up to the displayed total.
func PricePortfolio(ctx context.Context, f PriceFetcher, assets []Asset, amounts []float64, rate ExchangeRate) (*Result, error) {
	if len(assets) != len(amounts) {
		return nil, &InputLengthMismatchError{Expected: len(assets), Got: len(amounts)}
	}

	res := &Result{Prices: make([]Quote, 0, len(assets))}
	total := decimal.Zero
	for i, a := range assets {
		usd, err := f.FetchUSDPrice(ctx, a)
		if err != nil {
			return nil, err
		}
		unit := usd * rate.Factor
		q := Quote{
			Amount:       amounts[i],
			Asset:        a.Ticker(),
			Currency:     rate.Currency,
			ExchangeRate: rate.Factor,
			Value:        round2(unit * amounts[i]),
			UnitPrice:    round2(unit),
			UnitPriceUSD: round2(usd),
		}
		if !finite(q.Value) || !finite(q.UnitPrice) {
			return nil, &ValueOverflowError{Asset: q.Asset, Amount: q.Amount}
		}
		res.Prices = append(res.Prices, q)
		total = total.Add(decimal.NewFromFloat(q.Value))
	}
	res.GrandTotal = total.Round(2).InexactFloat64()
	return res, nil
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// round2 rounds to the cent, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
