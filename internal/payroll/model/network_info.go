package model

import "time"

// NetworkInfo describes the chain tip as seen by the ledger data provider.
type NetworkInfo struct {
	Network     Network
	BlockHeight uint64
	Slot        uint64
	BlockHash   string
	Epoch       uint64
	Healthy     bool
}

// AddressBalance is the coin-only view of an address.
type AddressBalance struct {
	Address string
	Units   uint64
	UTXOs   []UnspentOutput
}

// TransactionInfo is the on-chain view of a confirmed transaction.
type TransactionInfo struct {
	Hash        string
	BlockHash   string
	BlockHeight uint64
	BlockTime   time.Time
	Slot        uint64
	FeeUnits    uint64
	OutputUnits uint64
	SizeBytes   uint64
	Valid       bool
}
