// Package cmd implements the getprice command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/getprice"
	"github.com/etnz/getprice/config"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose    = flag.Bool("v", false, "Log every HTTP request on the standard error")
	configFile = flag.String("config", os.Getenv(config.EnvConfig), "Path to a YAML configuration file")
)

// Commands output, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands lists the getprice subcommands in the order they are registered.
var Commands = []subcommands.Command{
	&ofCmd{},
	&rateCmd{},
	&assetsCmd{},
	&versionCmd{},
	&topicCmd{},
}

// loadConfig loads the configuration from the -config file and the environment.
func loadConfig() (*config.Config, error) {
	return config.Load(*configFile)
}

// newClient returns a price client for the configured endpoints.
func newClient(cfg *config.Config) *getprice.Client {
	return getprice.NewClient(cfg.ClientEndpoints())
}

// fail reports err on the standard error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "✘ %v\n", err)
	return subcommands.ExitFailure
}

// usageError reports err on the standard error and returns the usage error status.
func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "✘ %v\n", err)
	return subcommands.ExitUsageError
}
