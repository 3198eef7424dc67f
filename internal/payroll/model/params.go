package model

// ProtocolParameters is the per-run snapshot of the ledger's fee and size rules.
type ProtocolParameters struct {
	// FeeCoefficientA is the fee per serialized byte.
	FeeCoefficientA uint64
	// FeeCoefficientB is the constant fee term.
	FeeCoefficientB         uint64
	MaxTxSizeBytes          uint64
	MaxOutputValueSizeBytes uint64
	MinUTXOValuePerByte     uint64
}
