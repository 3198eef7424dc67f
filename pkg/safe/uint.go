// Package safe provides overflow-checked integer helpers for lovelace arithmetic.
package safe

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow indicates a conversion or operation that does not fit the target type.
var ErrOverflow = errors.New("safe: integer overflow")

type integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts signed or unsigned integers to uint32 with range validation.
func Uint32[T integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil {
		return 0, err
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("%w: value %d out of uint32 range", ErrOverflow, v)
	}
	return uint32(u), nil
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: value %d out of uint64 range", ErrOverflow, v)
	}
	return uint64(v), nil
}

// Add returns a+b or ErrOverflow.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

// Sub returns a-b or ErrOverflow when b > a.
func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return diff, nil
}

// Mul returns a*b or ErrOverflow.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return lo, nil
}

// Sum adds value(item) over items.
func Sum[T any](items []T, value func(T) uint64) (uint64, error) {
	var total uint64
	for _, item := range items {
		next, err := Add(total, value(item))
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}
