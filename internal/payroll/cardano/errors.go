// Package cardano encodes coin-only Cardano transactions and addresses.
package cardano

import "errors"

var (
	// ErrInvalidAddress indicates an address that is not a bech32 Shelley payment address.
	ErrInvalidAddress = errors.New("cardano: invalid address")

	// ErrNetworkMismatch indicates an address for a different network.
	ErrNetworkMismatch = errors.New("cardano: address network mismatch")

	// ErrInvalidTxID indicates a transaction id that is not 32 hex-encoded bytes.
	ErrInvalidTxID = errors.New("cardano: invalid transaction id")

	// ErrEncode indicates CBOR encoding failed.
	ErrEncode = errors.New("cardano: encode failed")
)
