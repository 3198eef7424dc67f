package model

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/utxopayroll-backend/pkg/safe"
)

// Recipient is a single payout of Amount lovelace to Address.
type Recipient struct {
	Address string
	Amount  uint64
}

// StoredRecipient is a recipient row managed through the API.
type StoredRecipient struct {
	ID        int64
	Address   string
	Amount    uint64
	Active    bool
	CreatedAt time.Time
}

// RecipientUpdate carries a partial update; nil fields are left unchanged.
type RecipientUpdate struct {
	Address *string
	Amount  *uint64
	Active  *bool
}

// Empty reports whether the update changes nothing.
func (u RecipientUpdate) Empty() bool {
	return u.Address == nil && u.Amount == nil && u.Active == nil
}

// TotalAmount sums recipient amounts, failing on uint64 overflow.
func TotalAmount(recipients []Recipient) (uint64, error) {
	total, err := safe.Sum(recipients, func(r Recipient) uint64 { return r.Amount })
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrAmountOverflow, err)
	}
	return total, nil
}
