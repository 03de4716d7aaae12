// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements exact decimal arithmetic on top of math/big.Rat.
//              Supports arbitrary precision, ratio construction from integers
//              and exact rounding to integers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-17 v0.3.0: Exact integer based rounding, dropped pooling and
//                       financial display heuristics
// - 2026-10-17 v0.3.1: Reduced to the operations business day stepping uses

package mathx

import (
	"math/big"
	"strings"

	bizerror "github.com/msto63/bizclock/foundation/core/error"
)

// maxFractionDigits bounds String() for non-terminating fractions
const maxFractionDigits = 12

// Decimal represents a decimal number with arbitrary precision. The zero
// value is 0. Decimals are immutable; every operation returns a new value.
type Decimal struct {
	value *big.Rat
}

// rat returns the underlying value, treating a nil pointer as zero
func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// NewDecimal creates a new Decimal from a string representation.
// Supports formats like "123.45", "-67.89", "100", "1/2", "1e3".
func NewDecimal(s string) (Decimal, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Decimal{}, bizerror.Newf("invalid decimal format: %q", s).
			WithCode(bizerror.CodeInvalidDecimal).
			WithOperation("mathx.NewDecimal").
			WithDetail("input", s)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a new Decimal from a string, panicking on error.
// Use this for constants.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// NewDecimalFromRatio creates num/den exactly
func NewDecimalFromRatio(num, den int64) (Decimal, error) {
	if den == 0 {
		return Decimal{}, bizerror.New("ratio with zero denominator").
			WithCode(bizerror.CodeDivisionByZero).
			WithOperation("mathx.NewDecimalFromRatio").
			WithDetail("numerator", num)
	}
	return Decimal{value: new(big.Rat).SetFrac64(num, den)}, nil
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{value: new(big.Rat)}
}

// One returns a decimal representing one
func One() Decimal {
	return NewDecimalFromInt(1)
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Abs returns the absolute value of d
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// IsZero returns true if d equals zero
func (d Decimal) IsZero() bool {
	return d.rat().Sign() == 0
}

// IsPositive returns true if d is greater than zero
func (d Decimal) IsPositive() bool {
	return d.rat().Sign() > 0
}

// IsNegative returns true if d is less than zero
func (d Decimal) IsNegative() bool {
	return d.rat().Sign() < 0
}

// RoundToInt rounds d to an integer, ties away from zero
func (d Decimal) RoundToInt() Decimal {
	r := d.rat()
	negative := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	// a remainder of at least half the denominator rounds away from zero
	if rem.Sign() != 0 && new(big.Int).Lsh(rem, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if negative {
		q.Neg(q)
	}
	return Decimal{value: new(big.Rat).SetInt(q)}
}

// String returns the exact decimal form when it terminates, otherwise the
// value rounded to twelve fraction digits with trailing zeros removed.
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	if digits, ok := terminatingDigits(r.Denom()); ok && digits <= 64 {
		return r.FloatString(digits)
	}

	s := r.FloatString(maxFractionDigits)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// terminatingDigits returns the number of fraction digits of a fraction with
// the given denominator, if its decimal expansion terminates.
func terminatingDigits(den *big.Int) (int, bool) {
	rest := new(big.Int).Set(den)
	two, five := big.NewInt(2), big.NewInt(5)
	mod := new(big.Int)
	f2, f5 := 0, 0
	for {
		q, m := new(big.Int).QuoRem(rest, two, mod)
		if m.Sign() != 0 {
			break
		}
		rest = q
		f2++
	}
	for {
		q, m := new(big.Int).QuoRem(rest, five, mod)
		if m.Sign() != 0 {
			break
		}
		rest = q
		f5++
	}
	if rest.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if f2 > f5 {
		return f2, true
	}
	return f5, true
}

// Int64 returns the integer part of the decimal (truncated toward zero)
func (d Decimal) Int64() (int64, error) {
	r := d.rat()
	intPart := new(big.Int).Quo(r.Num(), r.Denom())
	if !intPart.IsInt64() {
		return 0, bizerror.New("decimal does not fit in int64").
			WithCode(bizerror.CodeValueOutOfRange).
			WithOperation("mathx.Int64").
			WithDetail("value", d.String())
	}
	return intPart.Int64(), nil
}
