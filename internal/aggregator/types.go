// Package aggregator assembles normalized in-memory records from the
// indexing API: token holder tables, stake-key address/balance tables and
// per-transaction asset-flow records.
package aggregator

import (
	"github.com/shopspring/decimal"
)

const (
	// StakeKeyUnknown marks an address whose stake key could not be resolved.
	StakeKeyUnknown = "N/A"
	// DateUnknown marks a flow whose timestamp could not be established.
	DateUnknown = "N/A"
	// UnattributedInput marks a token flow whose sending input is ambiguous
	// (multi-input transaction). No input is silently picked.
	UnattributedInput = -1
)

// HolderRecord is one holder of an asset. Quantity is the major-unit value;
// the raw minor-unit quantity is deliberately dropped from the final record.
type HolderRecord struct {
	Address  string
	Quantity decimal.Decimal
}

// HolderTable is the ordered holder list of one asset, sorted by quantity
// descending. Complete is false when the holder listing stopped early.
type HolderTable struct {
	Asset    string
	Decimals int
	Records  []HolderRecord
	Complete bool
}

// StakeAddressRecord links one payment address to its stake key with the
// address's ADA balance.
type StakeAddressRecord struct {
	StakeKey  string
	Address   string
	ADAAmount decimal.Decimal
}

// StakeAddressTable is the flat address/balance table across all input stake
// keys, in input-key order.
type StakeAddressTable struct {
	Records  []StakeAddressRecord
	Complete bool
}

// TokenMovement is one native-token quantity inside an output.
type TokenMovement struct {
	Unit        string
	Name        string
	Fingerprint string
	Quantity    decimal.Decimal
}

// UtxoLine is one input or output of a transaction. Tokens is populated for
// outputs only; inputs carry their token values implicitly through the flow.
type UtxoLine struct {
	Address   string
	StakeKey  string
	ADAAmount decimal.Decimal
	Tokens    []TokenMovement
}

// TokenFlow correlates a token movement with its output and, when the
// attribution is unambiguous, its sending input.
type TokenFlow struct {
	// InputIndex indexes Flow.Inputs, or UnattributedInput when the
	// transaction has more than one input.
	InputIndex  int
	OutputIndex int
	Movement    TokenMovement
}

// BlockInfo carries the block details the flow label renders.
type BlockInfo struct {
	Epoch int
	Slot  uint64
	Size  int
}

// Flow is the assembled asset-flow record of one transaction.
type Flow struct {
	TxID    string
	Date    string // "2006.01.02 - 15.04.05", UTC
	Fee     decimal.Decimal
	Inputs  []UtxoLine
	Outputs []UtxoLine
	Tokens  []TokenFlow
	Block   BlockInfo
	TxSize  int
}
