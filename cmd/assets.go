package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/getprice"
	"github.com/google/subcommands"
)

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the supported assets" }
func (*assetsCmd) Usage() string {
	return `getprice assets

  Lists the supported assets and the symbols accepted for each.

`
}

func (*assetsCmd) SetFlags(f *flag.FlagSet) {}

func (*assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, a := range getprice.Assets() {
		fmt.Fprintf(stdout, "%-4s %s\n", a.Ticker(), strings.ToLower(strings.Join(a.Aliases()[1:], ", ")))
	}
	return subcommands.ExitSuccess
}
