package getprice

import (
	"context"
	"fmt"
	"net/http"
)

// Endpoints holds the base URLs of the upstream APIs.
type Endpoints struct {
	Ticker     string // Kraken public Ticker endpoint
	TokenPrice string // CoinGecko token price endpoint, ethereum platform
	Rates      string // USD based exchange rates
}

// DefaultEndpoints are the public upstreams. None requires an API key.
var DefaultEndpoints = Endpoints{
	Ticker:     "https://api.kraken.com/0/public/Ticker",
	TokenPrice: "https://api.coingecko.com/api/v3/simple/token_price/ethereum",
	Rates:      "https://open.er-api.com/v6/latest/USD",
}

// Client fetches prices and exchange rates from the upstream APIs.
//
// Calls are sequential and blocking; the client keeps no state between them.
type Client struct {
	HTTP      *http.Client
	Endpoints Endpoints
}

// NewClient returns a Client using the given endpoints. Empty endpoints fall
// back to DefaultEndpoints.
func NewClient(e Endpoints) *Client {
	if e.Ticker == "" {
		e.Ticker = DefaultEndpoints.Ticker
	}
	if e.TokenPrice == "" {
		e.TokenPrice = DefaultEndpoints.TokenPrice
	}
	if e.Rates == "" {
		e.Rates = DefaultEndpoints.Rates
	}
	return &Client{HTTP: newHTTPClient(), Endpoints: e}
}

// quoteSource prices one asset in USD.
type quoteSource interface {
	usdPrice(ctx context.Context, c *Client) (float64, error)
}

// FetchUSDPrice returns the current USD price of one unit of a.
func (c *Client) FetchUSDPrice(ctx context.Context, a Asset) (float64, error) {
	info, ok := assets[a]
	if !ok {
		return 0, &UnrecognizedAssetError{Input: a.String()}
	}
	price, err := info.source.usdPrice(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("cannot price %s: %w", info.ticker, err)
	}
	return price, nil
}

// derivedQuote prices a token through another asset: the token is quoted in
// 'via' by the token price API, then 'via' is priced in USD.
//
// 'via' is fetched again for every derived quote, even within the same run.
type derivedQuote struct {
	contract string
	via      Asset
}

func (q derivedQuote) usdPrice(ctx context.Context, c *Client) (float64, error) {
	inVia, err := c.tokenPrice(ctx, q.contract, q.via)
	if err != nil {
		return 0, err
	}
	viaUSD, err := c.FetchUSDPrice(ctx, q.via)
	if err != nil {
		return 0, err
	}
	return inVia * viaUSD, nil
}
