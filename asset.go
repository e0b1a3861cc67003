package getprice

import (
	"slices"
	"strings"
)

// Asset is one of the crypto assets getprice knows how to price.
//
// The set is closed: the zero value is not a valid asset and the only way to
// obtain one from user input is ParseAsset.
type Asset int

const (
	BTC Asset = iota + 1
	ETH
	ADA
	XMR
	PNT
)

// pNetwork token contract on Ethereum.
const pntContract = "0x89ab32156e46f46d02ade3fecbe5fc4243b9aaed"

// assetInfo is a row of the asset table.
type assetInfo struct {
	ticker  string
	aliases []string // upper case names accepted besides the ticker
	source  quoteSource
}

// assets is the pricing table. Adding an asset is adding a row here.
var assets = map[Asset]assetInfo{
	BTC: {ticker: "BTC", aliases: []string{"BITCOIN"}, source: krakenQuote{pair: "XBTUSD", key: "XXBTZUSD"}},
	ETH: {ticker: "ETH", aliases: []string{"ETHEREUM"}, source: krakenQuote{pair: "ETHUSD", key: "XETHZUSD"}},
	ADA: {ticker: "ADA", aliases: []string{"CARDANO"}, source: krakenQuote{pair: "ADAUSD", key: "ADAUSD"}},
	XMR: {ticker: "XMR", aliases: []string{"MONERO"}, source: krakenQuote{pair: "XMRUSD", key: "XXMRZUSD"}},
	PNT: {ticker: "PNT", aliases: []string{"PNETWORK"}, source: derivedQuote{contract: pntContract, via: BTC}},
}

// Assets returns all supported assets in a stable order.
func Assets() []Asset { return []Asset{BTC, ETH, ADA, XMR, PNT} }

// Ticker returns the canonical ticker of the asset, e.g. "BTC".
func (a Asset) Ticker() string { return assets[a].ticker }

// Aliases returns the names accepted for a, ticker first.
func (a Asset) Aliases() []string {
	info := assets[a]
	return append([]string{info.ticker}, info.aliases...)
}

func (a Asset) String() string {
	if t := a.Ticker(); t != "" {
		return t
	}
	return "Asset(?)"
}

// ParseAsset resolves a user supplied symbol or name into an Asset.
//
// Matching is case insensitive and accepts the ticker or the full name
// ("eth", "Ethereum"). Anything else is an *UnrecognizedAssetError.
func ParseAsset(s string) (Asset, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for _, a := range Assets() {
		info := assets[a]
		if key == info.ticker || slices.Contains(info.aliases, key) {
			return a, nil
		}
	}
	return 0, &UnrecognizedAssetError{Input: s}
}

// ParseAssets resolves every symbol, keeping the input order.
func ParseAssets(symbols []string) ([]Asset, error) {
	out := make([]Asset, 0, len(symbols))
	for _, s := range symbols {
		a, err := ParseAsset(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
