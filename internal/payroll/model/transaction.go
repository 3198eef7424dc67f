package model

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/pkg/safe"
)

// TransactionOutput pays Amount lovelace to Address.
type TransactionOutput struct {
	Address string
	Amount  uint64
}

// TransactionDraft is a balanced, unsigned transaction.
type TransactionDraft struct {
	Inputs  []UnspentOutput
	Outputs []TransactionOutput
	Fee     uint64
	TTL     uint64
	// ChangeIndex is the position of the change output in Outputs, or -1.
	ChangeIndex int
}

// HasChange reports whether the draft returns change to the funding address.
func (d *TransactionDraft) HasChange() bool {
	return d.ChangeIndex >= 0 && d.ChangeIndex < len(d.Outputs)
}

// TotalOutput sums output amounts, failing on uint64 overflow.
func (d *TransactionDraft) TotalOutput() (uint64, error) {
	total, err := safe.Sum(d.Outputs, func(o TransactionOutput) uint64 { return o.Amount })
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	return total, nil
}

// CheckBalance verifies sum(inputs) == sum(outputs) + fee and that every output is positive.
func (d *TransactionDraft) CheckBalance() error {
	in, err := TotalValue(d.Inputs)
	if err != nil {
		return err
	}
	out, err := d.TotalOutput()
	if err != nil {
		return err
	}
	for i, o := range d.Outputs {
		if o.Amount == 0 {
			return fmt.Errorf("%w: output %d has zero value", ErrUnbalanced, i)
		}
	}
	spent, err := safe.Add(out, d.Fee)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	if in != spent {
		return fmt.Errorf("%w: inputs %d, outputs %d, fee %d", ErrUnbalanced, in, out, d.Fee)
	}
	return nil
}

// Witness is a verification key and its signature over the body hash.
type Witness struct {
	VKey      []byte
	Signature []byte
}

// SignedTransaction is the serialized, witnessed form of a draft.
type SignedTransaction struct {
	Hash    string
	Bytes   []byte
	Witness Witness
	Draft   *TransactionDraft
}

// TransactionRecord is a submitted transaction hash persisted once.
type TransactionRecord struct {
	ID         int64
	Hash       string
	RecordedAt time.Time
}

// RecordStatus is the outcome of a write-once hash insert.
type RecordStatus string

var (
	RecordInserted      RecordStatus = "inserted"
	RecordAlreadyExists RecordStatus = "already_exists"
)
