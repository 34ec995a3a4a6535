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

// Int is a signed 256 bit integer, stored as an unsigned magnitude plus
// a sign. A zero magnitude is neither positive nor negative, and the
// sign of a zero is normalised to positive so comparisons stay simple.
type Int struct {
	// The unsigned magnitude of the number.
	U *Uint
	// The sign of the number, true if positive or zero.
	s bool
}

// NewInt creates a new Int with the value of the int64 passed in.
func NewInt(val int64) *Int {
	if val < 0 {
		return &Int{
			U: NewUint(uint64(-val)),
			s: false,
		}
	}
	return &Int{
		U: NewUint(uint64(val)),
		s: true,
	}
}

// IntZero returns a new Int set to zero.
func IntZero() *Int {
	return NewInt(0)
}

// IntFromUint creates a new Int with the value of the given Uint,
// positive when s is true.
func IntFromUint(u *Uint, s bool) *Int {
	i := &Int{
		U: u.Clone(),
		s: s,
	}
	i.normalise()
	return i
}

// IntFromDecimal returns a new Int from a Decimal, dropping any
// fractional part, the second return value is true on overflow.
func IntFromDecimal(d Decimal) (*Int, bool) {
	u, overflow := UintFromBig(d.BigInt().Abs(d.BigInt()))
	return IntFromUint(u, !d.IsNegative()), overflow
}

// the sign on a zero value carries no meaning, force it positive so
// that IsNegative means "strictly below zero".
func (i *Int) normalise() {
	if i.U.IsZero() {
		i.s = true
	}
}

// IsNegative tests if i < 0.
func (i Int) IsNegative() bool {
	return !i.s && !i.U.IsZero()
}

// IsPositive tests if i > 0.
func (i Int) IsPositive() bool {
	return i.s && !i.U.IsZero()
}

// IsZero tests if i == 0.
func (i Int) IsZero() bool {
	return i.U.IsZero()
}

// FlipSign negates i in place.
func (i *Int) FlipSign() {
	i.s = !i.s
	i.normalise()
}

// Clone creates a copy of i.
func (i Int) Clone() *Int {
	return &Int{
		U: i.U.Clone(),
		s: i.s,
	}
}

// Add adds oth to i in place and returns i.
func (i *Int) Add(oth *Int) *Int {
	if i.s == oth.s {
		i.U.Add(i.U, oth.U)
		return i
	}
	if i.U.GTE(oth.U) {
		i.U.Sub(i.U, oth.U)
	} else {
		i.U.Sub(oth.U.Clone(), i.U)
		i.s = oth.s
	}
	i.normalise()
	return i
}

// AddSum adds all the given values to i in place and returns i.
func (i *Int) AddSum(vals ...*Int) *Int {
	for _, x := range vals {
		i.Add(x)
	}
	return i
}

// Sub subtracts oth from i in place and returns i.
func (i *Int) Sub(oth *Int) *Int {
	neg := oth.Clone()
	neg.FlipSign()
	return i.Add(neg)
}

// SubSum subtracts all the given values from i in place and returns i.
func (i *Int) SubSum(vals ...*Int) *Int {
	for _, x := range vals {
		i.Sub(x)
	}
	return i
}

// AddUint adds the unsigned value to i in place and returns i.
func (i *Int) AddUint(u *Uint) *Int {
	return i.Add(IntFromUint(u, true))
}

// GT returns true if i > oth.
func (i Int) GT(oth *Int) bool {
	if i.s != oth.s {
		return i.s
	}
	if i.s {
		return i.U.GT(oth.U)
	}
	return i.U.LT(oth.U)
}

// LT returns true if i < oth.
func (i Int) LT(oth *Int) bool {
	if i.s != oth.s {
		return oth.s
	}
	if i.s {
		return i.U.LT(oth.U)
	}
	return i.U.GT(oth.U)
}

// EQ returns true if i == oth.
func (i Int) EQ(oth *Int) bool {
	return i.s == oth.s && i.U.EQ(oth.U)
}

// Int64 returns the value as an int64, with the usual truncation when
// the magnitude does not fit.
func (i Int) Int64() int64 {
	val := int64(i.U.Uint64())
	if !i.s {
		return -val
	}
	return val
}

func (i Int) String() string {
	if i.IsNegative() {
		return "-" + i.U.String()
	}
	return i.U.String()
}
