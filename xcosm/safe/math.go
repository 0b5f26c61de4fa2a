package safe

import (
	"errors"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// ErrOverflow is returned when a result exceeds the maximum representable amount.
var ErrOverflow = errors.New("overflow in math operation")

// ErrUnderflow is returned when a result would be negative.
var ErrUnderflow = errors.New("underflow in math operation")

// ErrDivisionByZero is returned when attempting to divide by zero.
var ErrDivisionByZero = errors.New("division by zero in math operation")

// ErrAmountOutOfRange is returned when a value is negative, unset, or exceeds
// the maximum representable amount.
var ErrAmountOutOfRange = errors.New("amount out of range")

// maxAmount is 2^128 - 1, the largest representable amount. The backing Int
// type holds up to 256 bits, which leaves headroom for widened intermediates.
var maxAmount = sdkmath.NewIntFromBigInt(new(big.Int).Sub(
	new(big.Int).Lsh(big.NewInt(1), 128),
	big.NewInt(1),
))

// MaxAmount returns the largest representable amount (2^128 - 1).
func MaxAmount() sdkmath.Int {
	return maxAmount
}

// CheckAmount validates that v is a usable amount: set, non-negative, and
// within the 128-bit bound. Returns ErrAmountOutOfRange otherwise.
func CheckAmount(v sdkmath.Int) error {
	if v.IsNil() || v.IsNegative() || v.GT(maxAmount) {
		return ErrAmountOutOfRange
	}

	return nil
}

// Add returns a + b with overflow detection.
// Returns ErrOverflow if the sum exceeds the 128-bit bound.
//
// Example:
//
//	sum, err := safe.Add(balance, deposit)
//	if err != nil {
//	    return fmt.Errorf("credit balance: %w", err)
//	}
func Add(a, b sdkmath.Int) (sdkmath.Int, error) {
	sum := a.Add(b)
	if sum.GT(maxAmount) {
		return sdkmath.ZeroInt(), ErrOverflow
	}

	return sum, nil
}

// Sub returns a - b with underflow detection.
// Returns ErrUnderflow if the result would be negative.
//
// Example:
//
//	remaining, err := safe.Sub(balance, withdrawal)
//	if err != nil {
//	    return fmt.Errorf("debit balance: %w", err)
//	}
func Sub(a, b sdkmath.Int) (sdkmath.Int, error) {
	diff := a.Sub(b)
	if diff.IsNegative() {
		return sdkmath.ZeroInt(), ErrUnderflow
	}

	return diff, nil
}

// MulDiv returns floor((total * mul) / div). The multiplication happens in the
// widened 256-bit domain before the division, so the intermediate product never
// overflows spuriously even when total is near the 128-bit bound.
// Returns ErrDivisionByZero if div is zero and ErrOverflow if the quotient
// exceeds the 128-bit bound.
func MulDiv(total, mul, div sdkmath.Int) (sdkmath.Int, error) {
	if div.IsZero() {
		return sdkmath.ZeroInt(), ErrDivisionByZero
	}

	quotient := total.Mul(mul).Quo(div)
	if quotient.GT(maxAmount) {
		return sdkmath.ZeroInt(), ErrOverflow
	}

	return quotient, nil
}
