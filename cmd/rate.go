package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show the exchange rate from USD to a currency" }
func (*rateCmd) Usage() string {
	return `getprice rate <code>

  Prints the number of units of <code> for one USD.

`
}

func (*rateCmd) SetFlags(f *flag.FlagSet) {}

func (*rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usageError(errors.New("expected exactly one currency code"))
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	rate, err := newClient(cfg).ExchangeRate(ctx, f.Arg(0))
	if err != nil {
		return fail(err)
	}
	out, err := json.Marshal(rate)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}
