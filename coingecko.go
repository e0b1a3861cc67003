package getprice

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// CoinGecko token price, keyed by contract address, e.g.
// https://api.coingecko.com/api/v3/simple/token_price/ethereum?contract_addresses=0x89ab...&vs_currencies=btc
//
//	{"0x89ab32156e46f46d02ade3fecbe5fc4243b9aaed": {"btc": 0.00001234}}

// tokenPrice returns the price of the token at contract, denominated in vs.
func (c *Client) tokenPrice(ctx context.Context, contract string, vs Asset) (float64, error) {
	q := url.Values{}
	q.Set("contract_addresses", contract)
	q.Set("vs_currencies", strings.ToLower(vs.Ticker()))
	doc, err := jwget(ctx, c.HTTP, c.Endpoints.TokenPrice+"?"+q.Encode())
	if err != nil {
		return 0, err
	}
	return tokenPriceDecode(doc, contract, vs)
}

// tokenPriceDecode extracts the price of contract in vs from a token price response.
func tokenPriceDecode(doc any, contract string, vs Asset) (float64, error) {
	path := fmt.Sprintf("$[%q][%q]", strings.ToLower(contract), strings.ToLower(vs.Ticker()))
	return lookupPrice(doc, path)
}
