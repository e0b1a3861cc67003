package getprice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeUpstream serves canned Kraken, CoinGecko and rates responses and counts
// the calls made to each of them.
type fakeUpstream struct {
	USD    map[Asset]string // Kraken last trade price by asset
	PNTBTC string           // raw JSON value of the PNT 'btc' field, omitted if empty
	Rates  map[string]any   // rates object

	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeUpstream) hit(api string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[api]++
}

// Calls returns the number of requests made to api ("ticker", "token" or "rates").
func (f *fakeUpstream) Calls(api string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[api]
}

// Total returns the number of requests made to any api.
func (f *fakeUpstream) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

// start runs the fake and returns a Client pointing at it.
func (f *fakeUpstream) start(t *testing.T) *Client {
	t.Helper()
	f.calls = make(map[string]int)

	mux := http.NewServeMux()
	mux.HandleFunc("/0/public/Ticker", func(w http.ResponseWriter, r *http.Request) {
		f.hit("ticker")
		pair := r.URL.Query().Get("pair")
		for a, price := range f.USD {
			q, ok := assets[a].source.(krakenQuote)
			if ok && q.pair == pair {
				fmt.Fprintf(w, `{"error":[],"result":{%q:{"a":["0","1","1.000"],"c":[%q,"0.01000000"]}}}`, q.key, price)
				return
			}
		}
		fmt.Fprint(w, `{"error":["EQuery:Unknown asset pair"],"result":{}}`)
	})
	mux.HandleFunc("/simple/token_price/ethereum", func(w http.ResponseWriter, r *http.Request) {
		f.hit("token")
		if got := r.URL.Query().Get("contract_addresses"); got != pntContract {
			t.Errorf("token price requested for %q, want %q", got, pntContract)
		}
		if f.PNTBTC == "" {
			fmt.Fprintf(w, `{%q:{}}`, pntContract)
			return
		}
		fmt.Fprintf(w, `{%q:{"btc":%s}}`, pntContract, f.PNTBTC)
	})
	mux.HandleFunc("/v6/latest/USD", func(w http.ResponseWriter, r *http.Request) {
		f.hit("rates")
		json.NewEncoder(w).Encode(map[string]any{"result": "success", "base_code": "USD", "rates": f.Rates})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(Endpoints{
		Ticker:     srv.URL + "/0/public/Ticker",
		TokenPrice: srv.URL + "/simple/token_price/ethereum",
		Rates:      srv.URL + "/v6/latest/USD",
	})
}

// staticFetcher prices assets from a map and records every call.
type staticFetcher struct {
	prices map[Asset]float64
	fail   map[Asset]error
	calls  []Asset
}

func (f *staticFetcher) FetchUSDPrice(_ context.Context, a Asset) (float64, error) {
	f.calls = append(f.calls, a)
	if err := f.fail[a]; err != nil {
		return 0, err
	}
	return f.prices[a], nil
}
