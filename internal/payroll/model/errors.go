package model

import "errors"

var (
	// ErrInsufficientFunds indicates the UTXO snapshot cannot cover recipients plus fee.
	ErrInsufficientFunds = errors.New("payroll: insufficient funds")

	// ErrSerializationLimitExceeded indicates the transaction or an output value is too large.
	ErrSerializationLimitExceeded = errors.New("payroll: serialization limit exceeded")

	// ErrSigning indicates the key cannot sign for the funding address.
	ErrSigning = errors.New("payroll: signing failed")

	// ErrNetworkTransient indicates a transport failure; no ledger state changed.
	ErrNetworkTransient = errors.New("payroll: transient network error")

	// ErrNetworkRejected indicates the ledger rejected the transaction; rebuild from a fresh snapshot.
	ErrNetworkRejected = errors.New("payroll: transaction rejected")

	// ErrSubmissionUnknown indicates a submission that may or may not have reached the
	// ledger: a transient attempt was followed by rejection, exhaustion or cancellation.
	ErrSubmissionUnknown = errors.New("payroll: submission outcome unknown")

	// ErrAlreadyKnown indicates the network already holds a transaction with the same hash.
	ErrAlreadyKnown = errors.New("payroll: transaction already known")

	// ErrPersistenceConflict indicates the hash was already recorded.
	ErrPersistenceConflict = errors.New("payroll: transaction hash already recorded")

	// ErrInvalidInput indicates invalid build arguments.
	ErrInvalidInput = errors.New("payroll: invalid input")

	// ErrUnbalanced indicates a draft whose inputs do not equal outputs plus fee.
	ErrUnbalanced = errors.New("payroll: unbalanced draft")

	// ErrAmountOverflow indicates a lovelace sum that does not fit in uint64.
	ErrAmountOverflow = errors.New("payroll: amount overflow")

	// ErrRunInProgress indicates a trigger arrived while a run was in flight.
	ErrRunInProgress = errors.New("payroll: run already in progress")

	// ErrNotFound indicates a missing row.
	ErrNotFound = errors.New("payroll: not found")
)
