package models

import (
	"encoding/json"
	"testing"
)

func TestParseInstrument(t *testing.T) {
	cases := []struct {
		in   string
		want Instrument
		ok   bool
	}{
		{"bitcoin", Bitcoin, true},
		{"BTC", Bitcoin, true},
		{"Ethereum", Ethereum, true},
		{"eth", Ethereum, true},
		{"SOLANA", Solana, true},
		{"sol", Solana, true},
		{"snp500", Snp500, true},
		{" Snp ", Snp500, true},
		{"foo", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseInstrument(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseInstrument(%q)=(%v,%v), want (%v,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestInstrument_SymbolAndName(t *testing.T) {
	cases := []struct {
		inst   Instrument
		symbol string
		name   string
	}{
		{Bitcoin, "BTC-USD", "Bitcoin"},
		{Ethereum, "ETH-USD", "Ethereum"},
		{Solana, "SOL-USD", "Solana"},
		{Snp500, "^GSPC", "Snp500"},
	}
	for _, c := range cases {
		if c.inst.Symbol() != c.symbol || c.inst.Name() != c.name {
			t.Fatalf("%d: got (%q,%q), want (%q,%q)", c.inst, c.inst.Symbol(), c.inst.Name(), c.symbol, c.name)
		}
	}
	if Instrument(0).Symbol() != "" {
		t.Fatalf("zero instrument must have no symbol")
	}
}

func TestInstrument_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(CovarianceResult{Token1: Bitcoin, Token2: Snp500})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"token_1":"Bitcoin","token_2":"Snp500","covariance":0,"correlation_coefficient":0}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
