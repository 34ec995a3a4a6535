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

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Num interface {
	Signed | Unsigned
}

// MaxV generic max of any numeric values.
func MaxV[T Num](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// MinV generic min of numeric values.
func MinV[T Num](a, b T) T {
	if a > b {
		return b
	}
	return a
}

// AbsV generic absolute value function of signed primitives.
func AbsV[T Signed](a T) T {
	var b T // get the nil value
	if a < b {
		return -a
	}
	return a
}
