package model

import (
	"fmt"

	"github.com/goodnatureofminers/utxopayroll-backend/pkg/safe"
)

// UnspentOutput is a coin-only output owned by the funding address.
type UnspentOutput struct {
	TxID  string
	Index uint32
	Value uint64
}

// TotalValue sums output values, failing on uint64 overflow.
func TotalValue(utxos []UnspentOutput) (uint64, error) {
	total, err := safe.Sum(utxos, func(u UnspentOutput) uint64 { return u.Value })
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	return total, nil
}
