package getprice

import (
	"context"
	"fmt"
	"net/url"
)

/*
Kraken public ticker, e.g. https://api.kraken.com/0/public/Ticker?pair=XBTUSD

	{
	    "error": [],
	    "result": {
	        "XXBTZUSD": {
	            "a": ["50001.00000", "1", "1.000"],
	            "b": ["50000.90000", "2", "2.000"],
	            "c": ["50000.00000", "0.00100000"],
	            ...
	        }
	    }
	}

'c' is the last trade closed: [price, lot volume]. The result key is Kraken's
own name for the pair and differs from the requested pair for most assets.
*/

// krakenQuote is a direct USD quote from the Kraken ticker.
type krakenQuote struct {
	pair string // requested pair
	key  string // pair name in the response
}

func (q krakenQuote) usdPrice(ctx context.Context, c *Client) (float64, error) {
	addr := c.Endpoints.Ticker + "?pair=" + url.QueryEscape(q.pair)
	doc, err := jwget(ctx, c.HTTP, addr)
	if err != nil {
		return 0, err
	}
	return krakenDecode(doc, q.key)
}

// krakenDecode extracts the last trade price for key from a ticker response.
func krakenDecode(doc any, key string) (float64, error) {
	price, err := lookupPrice(doc, fmt.Sprintf("$.result[%q].c[0]", key))
	if err != nil {
		// Kraken explains failures in its 'error' list, keep them for the user.
		if msgs, _ := lookup(doc, "$.error"); msgs != nil {
			if list, ok := msgs.([]any); ok && len(list) > 0 {
				return 0, fmt.Errorf("kraken %v: %w", list, err)
			}
		}
		return 0, err
	}
	return price, nil
}
