package cmd

import (
	"strings"

	"github.com/etnz/getprice"
	"github.com/etnz/getprice/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// currencies offered by completion. Any ISO 4217 code is accepted.
var currencies = predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "CNY"}

// Completion returns the shell completion tree of the getprice command line.
//
// Install it with COMP_INSTALL=1 getprice.
func Completion() *complete.Command {
	var symbols predict.Set
	for _, a := range getprice.Assets() {
		for _, alias := range a.Aliases() {
			symbols = append(symbols, strings.ToLower(alias))
		}
	}
	topics, _ := docs.GetAllTopics()

	names := predict.Set{}
	for _, c := range Commands {
		names = append(names, c.Name())
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"v":      predict.Nothing,
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"of": {
				Flags: map[string]complete.Predictor{
					"currency": currencies,
					"format":   predict.Set{"json", "markdown"},
				},
				Args: symbols,
			},
			"rate":     {Args: currencies},
			"assets":   {},
			"version":  {},
			"topic":    {Args: predict.Set(topics)},
			"help":     {Args: names},
			"flags":    {},
			"commands": {},
		},
	}
}
