package cmd

import (
	"context"
	"flag"
	"fmt"
	"runtime/debug"

	"github.com/google/subcommands"
)

// Version is set at build time with -ldflags "-X github.com/etnz/getprice/cmd.Version=...".
var Version = ""

type versionCmd struct{}

func (*versionCmd) Name() string     { return "version" }
func (*versionCmd) Synopsis() string { return "show version info" }
func (*versionCmd) Usage() string {
	return `getprice version

`
}

func (*versionCmd) SetFlags(f *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(stdout, "getprice %s\n", version())
	return subcommands.ExitSuccess
}

// version returns the build version, "(devel)" when unknown.
func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
