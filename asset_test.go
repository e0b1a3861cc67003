package getprice

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAsset(t *testing.T) {
	tests := []struct {
		input string
		want  Asset
	}{
		{"BTC", BTC}, {"btc", BTC}, {"Bitcoin", BTC}, {"BITCOIN", BTC},
		{"ETH", ETH}, {"eth", ETH}, {"Ethereum", ETH}, {"ethereum", ETH},
		{"ADA", ADA}, {"cardano", ADA},
		{"XMR", XMR}, {"Monero", XMR},
		{"PNT", PNT}, {"pNetwork", PNT},
		{"  eth ", ETH},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAsset(tt.input)
			if err != nil {
				t.Fatalf("ParseAsset(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAsset(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAsset_EveryAliasInAnyCase(t *testing.T) {
	for _, a := range Assets() {
		for _, alias := range a.Aliases() {
			for _, s := range []string{alias, strings.ToLower(alias), strings.ToUpper(alias[:1]) + strings.ToLower(alias[1:])} {
				got, err := ParseAsset(s)
				if err != nil {
					t.Errorf("ParseAsset(%q) unexpected error: %v", s, err)
					continue
				}
				if got != a {
					t.Errorf("ParseAsset(%q) = %v, want %v", s, got, a)
				}
			}
		}
	}
}

func TestParseAsset_Unrecognized(t *testing.T) {
	for _, s := range []string{"", "DOGE", "bit coin", "XBT", "ETHUSD", "0x89ab32156e46f46d02ade3fecbe5fc4243b9aaed"} {
		t.Run(s, func(t *testing.T) {
			got, err := ParseAsset(s)
			var unrecognized *UnrecognizedAssetError
			if !errors.As(err, &unrecognized) {
				t.Fatalf("ParseAsset(%q) = %v, %v; want UnrecognizedAssetError", s, got, err)
			}
			if unrecognized.Input != s {
				t.Errorf("error input = %q, want %q", unrecognized.Input, s)
			}
			if got != 0 {
				t.Errorf("ParseAsset(%q) returned asset %v along with an error", s, got)
			}
		})
	}
}

func TestParseAssets_KeepsOrder(t *testing.T) {
	got, err := ParseAssets([]string{"xmr", "BTC", "pnt", "eth", "btc"})
	if err != nil {
		t.Fatalf("ParseAssets() unexpected error: %v", err)
	}
	want := []Asset{XMR, BTC, PNT, ETH, BTC}
	if len(got) != len(want) {
		t.Fatalf("ParseAssets() returned %d assets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseAssets()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseAssets_FailsOnAnyUnknown(t *testing.T) {
	_, err := ParseAssets([]string{"btc", "nope", "eth"})
	var unrecognized *UnrecognizedAssetError
	if !errors.As(err, &unrecognized) || unrecognized.Input != "nope" {
		t.Errorf("ParseAssets() error = %v, want UnrecognizedAssetError for %q", err, "nope")
	}
}

func TestAsset_Table(t *testing.T) {
	for _, a := range Assets() {
		info, ok := assets[a]
		if !ok {
			t.Fatalf("asset %d has no table entry", a)
		}
		if info.source == nil {
			t.Errorf("%v has no quote source", a)
		}
		if a.String() != info.ticker {
			t.Errorf("String() = %q, want %q", a.String(), info.ticker)
		}
	}
	if got := Asset(0).String(); got != "Asset(?)" {
		t.Errorf("zero Asset String() = %q", got)
	}
}
