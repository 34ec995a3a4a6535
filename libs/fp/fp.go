// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package fp implements binary fixed point arithmetic on a Q64.64
// representation: 64 integer bits and 64 fractional bits, carried as a
// non-negative magnitude in a num.Uint. All operations are deterministic
// integer arithmetic, there is no float anywhere on these code paths.
package fp

import (
	"code.vegaprotocol.io/lending/libs/num"

	"github.com/pkg/errors"
)

// FracBits is the number of fractional bits in the representation.
const FracBits = 64

var (
	// ErrFixedPointOverflow is returned when a fixed point operation does
	// not fit in 256 bits. Unreachable for inputs within the valuation
	// contract (rates below 100%, maturities below ~50 years).
	ErrFixedPointOverflow = errors.New("fixed point overflow")
	// ErrDivisionByZero is returned on a zero denominator.
	ErrDivisionByZero = errors.New("fixed point division by zero")

	// expNeg(x) is zero to the full 64 fractional bits for any x with an
	// integer part this size or larger.
	expFloor = num.UintZero().Lsh(num.NewUint(64), FracBits)
)

// One returns 1.0 in Q64.64.
func One() *num.Uint {
	return num.UintZero().Lsh(num.UintOne(), FracBits)
}

// FromRatio returns n/d as a Q64.64 value.
func FromRatio(n, d *num.Uint) (*num.Uint, error) {
	if d.IsZero() {
		return nil, ErrDivisionByZero
	}
	if n.BitLen() > 256-FracBits {
		return nil, ErrFixedPointOverflow
	}
	shifted := num.UintZero().Lsh(n, FracBits)
	return shifted.Div(shifted, d), nil
}

// Mul returns a*b where both operands and the result are Q64.64.
func Mul(a, b *num.Uint) (*num.Uint, error) {
	product, overflow := num.UintZero().MulOverflow(a, b)
	if overflow {
		return nil, ErrFixedPointOverflow
	}
	return product.Rsh(product, FracBits), nil
}

// ExpNeg evaluates e^-x for a non-negative Q64.64 argument x, returning
// a Q64.64 result in [0, 1]. The argument is halved into [0, 1/2], the
// alternating Taylor series is summed there exactly in 256 bit
// arithmetic, and the result squared back up. Monotonically decreasing
// in x.
func ExpNeg(x *num.Uint) *num.Uint {
	one := One()
	if x.IsZero() {
		return one
	}
	if x.GTE(expFloor) {
		return num.UintZero()
	}

	// halve the argument until it is at most 1/2, each halving costs one
	// squaring on the way back.
	half := num.UintZero().Rsh(one, 1)
	y := x.Clone()
	squarings := 0
	for y.GT(half) {
		y.Rsh(y, 1)
		squarings++
	}

	// e^-y = 1 - y + y^2/2! - y^3/3! + ... with y <= 1/2 the terms
	// decrease strictly, so the partial sums stay within [e^-y, 1] and
	// the unsigned adds/subs below cannot wrap.
	sum := one.Clone()
	term := one.Clone()
	subtract := true
	for n := uint64(1); n <= 64; n++ {
		term.Mul(term, y)
		term.Rsh(term, FracBits)
		term.Div(term, num.NewUint(n))
		if term.IsZero() {
			break
		}
		if subtract {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		subtract = !subtract
	}

	for ; squarings > 0; squarings-- {
		sum.Mul(sum, sum)
		sum.Rsh(sum, FracBits)
	}
	return sum
}
