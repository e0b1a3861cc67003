package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/getprice"
	"github.com/etnz/getprice/renderer"
	"github.com/google/subcommands"
)

// ofCmd holds the flags for the 'of' subcommand.
type ofCmd struct {
	currency string
	format   string
}

func (*ofCmd) Name() string     { return "of" }
func (*ofCmd) Synopsis() string { return "get the price of a list of assets and their total" }
func (*ofCmd) Usage() string {
	return `getprice of [-currency <code>] [-format json|markdown] (<symbol> <amount>)...

  Prices each <amount> of <symbol> and sums the values.

  <symbol>  the ticker or name of an asset, eg ETH or ethereum.
  <amount>  the amount of that asset to price.

`
}

func (c *ofCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Target currency as an ISO 4217 code. Defaults to the configured currency, or USD.")
	f.StringVar(&c.format, "format", "json", "Output format: json or markdown.")
}

func (c *ofCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) == 0 || len(args)%2 != 0 {
		return usageError(fmt.Errorf("expected (<symbol> <amount>) pairs, got %d arguments", len(args)))
	}
	if c.format != "json" && c.format != "markdown" {
		return usageError(fmt.Errorf("unknown format %q, use json or markdown", c.format))
	}

	symbols := make([]string, 0, len(args)/2)
	amounts := make([]float64, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		amount, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return usageError(fmt.Errorf("invalid amount %q for %s", args[i+1], args[i]))
		}
		symbols = append(symbols, args[i])
		amounts = append(amounts, amount)
	}

	assets, err := getprice.ParseAssets(symbols)
	if err != nil {
		return fail(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	currency := c.currency
	if currency == "" {
		currency = cfg.Currency
	}

	client := newClient(cfg)
	rate, err := client.ExchangeRate(ctx, currency)
	if err != nil {
		return fail(err)
	}
	res, err := getprice.PricePortfolio(ctx, client, assets, amounts, rate)
	if err != nil {
		return fail(err)
	}

	if c.format == "markdown" {
		printMarkdown(renderer.Portfolio(res))
		return subcommands.ExitSuccess
	}
	out, err := json.Marshal(res)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
