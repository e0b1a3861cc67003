// Package getprice values a small crypto portfolio in a target currency.
//
// The core functionalities include:
//   - Asset Resolution: mapping user supplied symbols or names ("eth",
//     "Bitcoin") onto a closed set of supported assets.
//   - Price Fetching: querying public price APIs for the USD price of each
//     asset. Most assets are quoted directly by the Kraken ticker; PNT is
//     quoted in BTC by CoinGecko and chained through BTC's own USD price.
//   - Exchange Rates: converting USD into the requested currency with a single
//     live lookup per run.
//   - Aggregation: computing per holding values and a grand total rounded to
//     the cent, so that the displayed lines always add up to the total.
//
// This package serves as the foundational logic for the `getprice`
// command-line tool.
package getprice
