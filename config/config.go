// Package config loads the optional getprice configuration.
//
// Values come, by increasing precedence, from the defaults, an optional YAML
// file, and GETPRICE_* environment variables. Command flags override them all.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/etnz/getprice"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig        = "GETPRICE_CONFIG"
	EnvCurrency      = "GETPRICE_CURRENCY"
	EnvTickerURL     = "GETPRICE_TICKER_URL"
	EnvTokenPriceURL = "GETPRICE_TOKEN_PRICE_URL"
	EnvRatesURL      = "GETPRICE_RATES_URL"
)

type Config struct {
	Currency  string          `yaml:"currency"`
	Endpoints EndpointsConfig `yaml:"endpoints"`
}

type EndpointsConfig struct {
	Ticker     string `yaml:"ticker"`
	TokenPrice string `yaml:"token_price"`
	Rates      string `yaml:"rates"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Currency: "USD",
		Endpoints: EndpointsConfig{
			Ticker:     getprice.DefaultEndpoints.Ticker,
			TokenPrice: getprice.DefaultEndpoints.TokenPrice,
			Rates:      getprice.DefaultEndpoints.Rates,
		},
	}
}

// Load reads the YAML file at path, if path is not empty, then applies the
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(EnvTickerURL); v != "" {
		cfg.Endpoints.Ticker = v
	}
	if v := os.Getenv(EnvTokenPriceURL); v != "" {
		cfg.Endpoints.TokenPrice = v
	}
	if v := os.Getenv(EnvRatesURL); v != "" {
		cfg.Endpoints.Rates = v
	}
}

func (c *Config) validate() error {
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		return fmt.Errorf("invalid config: empty currency")
	}
	for name, v := range map[string]string{
		"ticker":      c.Endpoints.Ticker,
		"token_price": c.Endpoints.TokenPrice,
		"rates":       c.Endpoints.Rates,
	} {
		if v != "" && !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return fmt.Errorf("invalid config: endpoint %s is not an http(s) URL: %q", name, v)
		}
	}
	return nil
}

// ClientEndpoints returns the endpoints for getprice.NewClient.
func (c *Config) ClientEndpoints() getprice.Endpoints {
	return getprice.Endpoints{
		Ticker:     c.Endpoints.Ticker,
		TokenPrice: c.Endpoints.TokenPrice,
		Rates:      c.Endpoints.Rates,
	}
}
