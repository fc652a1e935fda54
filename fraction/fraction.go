// SPDX-License-Identifier: MIT

// Package fraction - immutable exact rational value type.
//
// Purpose:
//   - Provide the scalar of the whole engine: exact, always reduced, never mutated.
//   - Keep integer coercion (plain integer operand) explicit and generic.
//
// Complexity quicksheet:
//   - Construction/arithmetic: one big.Rat allocation + gcd normalisation per result.
//   - Equal/IsZero/IsOne/Sign: O(size of operands), no allocation.

package fraction

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Fraction is an immutable rational number num/den with den > 0 and
// gcd(|num|, den) = 1. The zero value is 0.
//
// The wrapped *big.Rat is never mutated after construction, so copying a
// Fraction (or sharing one between matrices) is always safe.
type Fraction struct {
	r *big.Rat // nil means 0
}

// Compile-time conformance.
var _ fmt.Stringer = Fraction{}

// Zero returns 0.
func Zero() Fraction { return Fraction{} }

// One returns 1.
func One() Fraction { return Fraction{r: big.NewRat(1, 1)} }

// toBig converts any Go integer to a fresh *big.Int without overflow,
// including uint64 values above math.MaxInt64.
func toBig[T constraints.Integer](v T) *big.Int {
	if v < 0 {
		return big.NewInt(int64(v))
	}

	return new(big.Int).SetUint64(uint64(v))
}

// New builds num/den reduced to lowest terms with a positive denominator.
// Implementation:
//   - Stage 1: reject den == 0 with ErrDivisionByZero.
//   - Stage 2: big.Rat.SetFrac normalises sign and gcd.
//
// Inputs:
//   - num, den: any Go integer type.
//
// Errors:
//   - ErrDivisionByZero when den == 0.
//
// Complexity:
//   - Time O(gcd on operand sizes), Space O(1) big values.
func New[T constraints.Integer](num, den T) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}

	return Fraction{r: new(big.Rat).SetFrac(toBig(num), toBig(den))}, nil
}

// NewBig builds num/den from arbitrary-precision integers. The arguments are
// not retained.
func NewBig(num, den *big.Int) (Fraction, error) {
	if den == nil || den.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if num == nil {
		return Fraction{}, nil
	}

	return Fraction{r: new(big.Rat).SetFrac(num, den)}, nil
}

// FromInt returns v/1.
func FromInt[T constraints.Integer](v T) Fraction {
	return Fraction{r: new(big.Rat).SetInt(toBig(v))}
}

// FromRat copies r into a Fraction. A nil r yields 0.
func FromRat(r *big.Rat) Fraction {
	if r == nil {
		return Fraction{}
	}

	return Fraction{r: new(big.Rat).Set(r)}
}

// rat returns the backing value; callers must treat it as read-only.
func (f Fraction) rat() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}

	return f.r
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	return Fraction{r: new(big.Rat).Add(f.rat(), g.rat())}
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return Fraction{r: new(big.Rat).Sub(f.rat(), g.rat())}
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{r: new(big.Rat).Mul(f.rat(), g.rat())}
}

// Div returns f / g, or ErrDivisionByZero when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}

	return Fraction{r: new(big.Rat).Quo(f.rat(), g.rat())}, nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{r: new(big.Rat).Neg(f.rat())}
}

// Abs returns |f|.
func (f Fraction) Abs() Fraction {
	return Fraction{r: new(big.Rat).Abs(f.rat())}
}

// Reciprocal returns 1/f, or ErrDivisionByZero when f is zero.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}

	return Fraction{r: new(big.Rat).Inv(f.rat())}, nil
}

// AddInt returns f + v, treating v as v/1.
func (f Fraction) AddInt(v int64) Fraction { return f.Add(FromInt(v)) }

// SubInt returns f - v, treating v as v/1.
func (f Fraction) SubInt(v int64) Fraction { return f.Sub(FromInt(v)) }

// MulInt returns f * v, treating v as v/1.
func (f Fraction) MulInt(v int64) Fraction { return f.Mul(FromInt(v)) }

// DivInt returns f / v, or ErrDivisionByZero when v == 0.
func (f Fraction) DivInt(v int64) (Fraction, error) { return f.Div(FromInt(v)) }

// Equal reports exact equality. Values are always reduced, so this is a
// plain numerator/denominator comparison.
func (f Fraction) Equal(g Fraction) bool { return f.rat().Cmp(g.rat()) == 0 }

// Cmp returns -1, 0 or +1 as f <, ==, > g.
func (f Fraction) Cmp(g Fraction) int { return f.rat().Cmp(g.rat()) }

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int { return f.rat().Sign() }

// IsZero reports f == 0.
func (f Fraction) IsZero() bool { return f.Sign() == 0 }

// IsOne reports f == 1.
func (f Fraction) IsOne() bool {
	r := f.rat()

	return r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1
}

// IsInt reports whether the denominator is 1.
func (f Fraction) IsInt() bool { return f.rat().IsInt() }

// Num returns a copy of the reduced numerator.
func (f Fraction) Num() *big.Int { return new(big.Int).Set(f.rat().Num()) }

// Den returns a copy of the reduced (positive) denominator.
func (f Fraction) Den() *big.Int { return new(big.Int).Set(f.rat().Denom()) }

// Rat returns an independent *big.Rat holding f.
func (f Fraction) Rat() *big.Rat { return new(big.Rat).Set(f.rat()) }

// Float64 returns the nearest float64 (lossy, for presentation only).
func (f Fraction) Float64() float64 {
	v, _ := f.rat().Float64()

	return v
}

// String renders "n" for integers and "n/d" otherwise; the result is
// accepted by Parse.
func (f Fraction) String() string { return f.rat().RatString() }
