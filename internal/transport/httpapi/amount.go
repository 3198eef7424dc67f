package httpapi

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

const lovelaceDecimals = 6

var (
	errAmountNotPositive = errors.New("amount must be positive")
	errAmountPrecision   = errors.New("amount has more than 6 decimal places")
	errAmountTooLarge    = errors.New("amount is too large")
)

// adaToLovelace converts a decimal ADA amount to lovelace. Fractions of a
// lovelace are rejected rather than truncated.
func adaToLovelace(ada decimal.Decimal) (uint64, error) {
	if ada.Sign() <= 0 {
		return 0, errAmountNotPositive
	}
	lovelace := ada.Shift(lovelaceDecimals)
	if !lovelace.IsInteger() {
		return 0, errAmountPrecision
	}
	n := lovelace.BigInt()
	if !n.IsUint64() {
		return 0, errAmountTooLarge
	}
	return n.Uint64(), nil
}

// lovelaceToADA formats lovelace as ADA with six decimals.
func lovelaceToADA(lovelace uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lovelace), -lovelaceDecimals).StringFixed(lovelaceDecimals)
}
