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

package num

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint is a wrapper over a 256 bit unsigned integer. All the valuation
// arithmetic runs on this type so intermediate products never silently
// wrap at the word size.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint with the value of the uint64 passed as a
// parameter.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// UintOne returns a new Uint set to one.
func UintOne() *Uint {
	return NewUint(1)
}

// UintFromBig constructs a new Uint from a big.Int,
// returns true if an overflow happened.
func UintFromBig(b *big.Int) (*Uint, bool) {
	u, overflow := uint256.FromBig(b)
	if overflow {
		return UintZero(), true
	}
	return &Uint{*u}, false
}

// UintFromDecimal returns a new Uint from a Decimal, dropping any
// fractional part, returns true if an overflow happened.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	return UintFromBig(d.BigInt())
}

// UintFromString creates a new Uint from a string interpreted using the
// given base. Returns true if an error or overflow happened.
func UintFromString(str string, base int) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, base)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString creates a new base 10 Uint from a string,
// panicking on a malformed input. For use with constants in tests
// and package setup only.
func MustUintFromString(str string) *Uint {
	u, overflow := UintFromString(str, 10)
	if overflow {
		panic(fmt.Sprintf("invalid uint string: %s", str))
	}
	return u
}

// Sum returns the sum of all the given values, equivalent to
// x + y + z without mutating any of them.
func Sum(vals ...*Uint) *Uint {
	return UintZero().AddSum(vals...)
}

func (z *Uint) Set(oth *Uint) *Uint {
	z.u.Set(&oth.u)
	return z
}

func (z *Uint) SetUint64(val uint64) *Uint {
	z.u.SetUint64(val)
	return z
}

func (z Uint) Uint64() uint64 {
	return z.u.Uint64()
}

func (z Uint) BigInt() *big.Int {
	return z.u.ToBig()
}

func (z Uint) ToDecimal() Decimal {
	return DecimalFromUint(&z)
}

// Add sets z to x + y and returns z.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds all the given values to z, so x.AddSum(y, z) is
// equivalent to x + y + z.
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// AddOverflow sets z to x + y and returns z, the second return value
// is true if an overflow occurred.
func (z *Uint) AddOverflow(x, y *Uint) (*Uint, bool) {
	_, overflow := z.u.AddOverflow(&x.u, &y.u)
	return z, overflow
}

// Sub sets z to x - y and returns z.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// Delta sets z to the absolute difference of x and y, the second
// return value is true when y > x.
func (z *Uint) Delta(x, y *Uint) (*Uint, bool) {
	if y.GT(x) {
		_ = z.Sub(y, x)
		return z, true
	}
	_ = z.Sub(x, y)
	return z, false
}

// Mul sets z to x * y and returns z.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// MulOverflow sets z to x * y and returns z, the second return value
// is true if the product did not fit in 256 bits.
func (z *Uint) MulOverflow(x, y *Uint) (*Uint, bool) {
	_, overflow := z.u.MulOverflow(&x.u, &y.u)
	return z, overflow
}

// Div sets z to x / y (truncated division) and returns z.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

// Exp sets z to x ** y and returns z.
func (z *Uint) Exp(x, y *Uint) *Uint {
	z.u.Exp(&x.u, &y.u)
	return z
}

// Lsh sets z to x << n and returns z.
func (z *Uint) Lsh(x *Uint, n uint) *Uint {
	z.u.Lsh(&x.u, n)
	return z
}

// Rsh sets z to x >> n and returns z.
func (z *Uint) Rsh(x *Uint, n uint) *Uint {
	z.u.Rsh(&x.u, n)
	return z
}

// BitLen returns the number of bits required to represent z.
func (z Uint) BitLen() int {
	return z.u.BitLen()
}

// LT checks if z < oth.
func (z Uint) LT(oth *Uint) bool {
	return z.u.Lt(&oth.u)
}

// LTE checks if z <= oth.
func (z Uint) LTE(oth *Uint) bool {
	return z.u.Lt(&oth.u) || z.u.Eq(&oth.u)
}

// EQ checks if z == oth.
func (z Uint) EQ(oth *Uint) bool {
	return z.u.Eq(&oth.u)
}

// EQUint64 checks if z == oth.
func (z Uint) EQUint64(oth uint64) bool {
	return z.u.Eq(uint256.NewInt(oth))
}

// NEQ checks if z != oth.
func (z Uint) NEQ(oth *Uint) bool {
	return !z.u.Eq(&oth.u)
}

// GT checks if z > oth.
func (z Uint) GT(oth *Uint) bool {
	return z.u.Gt(&oth.u)
}

// GTE checks if z >= oth.
func (z Uint) GTE(oth *Uint) bool {
	return z.u.Gt(&oth.u) || z.u.Eq(&oth.u)
}

// IsZero returns whether z == 0 or not.
func (z Uint) IsZero() bool {
	return z.u.IsZero()
}

// Copy sets z to x and returns z.
func (z *Uint) Copy(x *Uint) *Uint {
	z.u = x.u
	return z
}

// Clone returns a copy of z.
func (z Uint) Clone() *Uint {
	return &Uint{z.u}
}

// Min returns the smallest of the 2 numbers.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a
	}
	return b
}

// Max returns the largest of the 2 numbers.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a
	}
	return b
}

// String returns the stored value as a base 10 string.
func (z Uint) String() string {
	return z.u.ToBig().String()
}

// Hex returns the hexadecimal representation of the stored value.
func (z Uint) Hex() string {
	return z.u.Hex()
}

// Format implements fmt.Formatter.
func (z Uint) Format(s fmt.State, ch rune) {
	z.u.Format(s, ch)
}
