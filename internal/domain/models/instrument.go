package models

import (
	"encoding/json"
	"strings"
)

// Instrument identifies one of the tracked assets.
//
// The set is closed: values are obtained through ParseInstrument or the
// exported constants, never built from arbitrary integers.
type Instrument int

const (
	Bitcoin Instrument = iota + 1
	Ethereum
	Solana
	Snp500
)

// Instruments lists every supported instrument in declaration order.
var Instruments = []Instrument{Bitcoin, Ethereum, Solana, Snp500}

// Symbol returns the identifier used to address the quote API
// (e.g. "BTC-USD", "^GSPC"). Escaping is left to the URL builder.
func (i Instrument) Symbol() string {
	switch i {
	case Bitcoin:
		return "BTC-USD"
	case Ethereum:
		return "ETH-USD"
	case Solana:
		return "SOL-USD"
	case Snp500:
		return "^GSPC"
	default:
		return ""
	}
}

// Name returns the canonical display name.
func (i Instrument) Name() string {
	switch i {
	case Bitcoin:
		return "Bitcoin"
	case Ethereum:
		return "Ethereum"
	case Solana:
		return "Solana"
	case Snp500:
		return "Snp500"
	default:
		return "Unknown"
	}
}

func (i Instrument) String() string { return i.Name() }

// MarshalJSON encodes the instrument as its display name.
func (i Instrument) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Name())
}

// ParseInstrument resolves a case-insensitive short name or alias.
//
// Accepted aliases:
//   - bitcoin, btc
//   - ethereum, eth
//   - solana, sol
//   - snp500, snp
//
// The boolean is false when the input is not recognized.
func ParseInstrument(s string) (Instrument, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitcoin", "btc":
		return Bitcoin, true
	case "ethereum", "eth":
		return Ethereum, true
	case "solana", "sol":
		return Solana, true
	case "snp500", "snp":
		return Snp500, true
	default:
		return 0, false
	}
}
