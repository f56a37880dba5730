package payment

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the number of lamport digits in one SOL.
const NativeDecimals uint8 = 9

var (
	ErrNegativeAmount   = errors.New("amount cannot be negative")
	ErrFractionalAmount = errors.New("amount has more precision than the currency supports")
	ErrAmountOutOfRange = errors.New("amount does not fit in base units")
	maxBaseUnits        = decimal.NewFromUint64(math.MaxUint64)
)

// exponentBound keeps rescaling cheap: uint64 needs at most 20 digits, and
// nothing sensible is written with more than 40 fractional ones.
const exponentBound = 40

// ToBaseUnits converts a decimal amount into integer base units. Amounts that
// would need rounding are rejected rather than silently truncated.
func ToBaseUnits(amount decimal.Decimal, decimals uint8) (uint64, error) {
	if amount.IsNegative() {
		return 0, ErrNegativeAmount
	}
	if amount.IsZero() {
		return 0, nil
	}
	scaled := amount.Shift(int32(decimals))
	switch exp := scaled.Exponent(); {
	case exp > exponentBound:
		return 0, ErrAmountOutOfRange
	case exp < -exponentBound:
		return 0, ErrFractionalAmount
	}
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, ErrFractionalAmount
	}
	if scaled.GreaterThan(maxBaseUnits) {
		return 0, ErrAmountOutOfRange
	}
	return scaled.BigInt().Uint64(), nil
}

func FromBaseUnits(units uint64, decimals uint8) decimal.Decimal {
	return decimal.NewFromUint64(units).Shift(-int32(decimals))
}
