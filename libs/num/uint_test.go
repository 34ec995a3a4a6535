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

package num_test

import (
	"fmt"
	"math/big"
	"testing"

	"code.vegaprotocol.io/lending/libs/num"

	"github.com/stretchr/testify/assert"
)

func TestUint256Constructors(t *testing.T) {
	var expected uint64 = 42

	t.Run("test from uint64", func(t *testing.T) {
		n := num.NewUint(expected)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("test from string", func(t *testing.T) {
		n, overflow := num.UintFromString("42", 10)
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("test from big", func(t *testing.T) {
		n, overflow := num.UintFromBig(big.NewInt(int64(expected)))
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})

	t.Run("test from decimal", func(t *testing.T) {
		n, overflow := num.UintFromDecimal(num.DecimalFromInt64(42))
		assert.False(t, overflow)
		assert.Equal(t, expected, n.Uint64())
	})
}

func TestUint256Clone(t *testing.T) {
	var (
		expect1 uint64 = 42
		expect2 uint64 = 84
		first          = num.NewUint(expect1)
		second         = first.Clone()
	)

	assert.Equal(t, expect1, first.Uint64())
	assert.Equal(t, expect1, second.Uint64())

	// now we change second value, and ensure 1 hasn't changed
	second.Add(second, num.NewUint(42))

	assert.Equal(t, expect1, first.Uint64())
	assert.Equal(t, expect2, second.Uint64())
}

func TestUint256Copy(t *testing.T) {
	var (
		expect1 uint64 = 42
		expect2 uint64 = 84
		first          = num.NewUint(expect1)
		second         = num.NewUint(expect2)
	)

	second.Copy(first)

	assert.Equal(t, expect1, first.Uint64())
	assert.Equal(t, expect1, second.Uint64())

	// updating first must not touch second
	first.SetUint64(expect2)
	assert.Equal(t, expect2, first.Uint64())
	assert.Equal(t, expect1, second.Uint64())
}

func TestUint256Arithmetic(t *testing.T) {
	t.Run("truncated division", func(t *testing.T) {
		res := num.UintZero().Div(num.NewUint(7), num.NewUint(2))
		assert.Equal(t, uint64(3), res.Uint64())
	})

	t.Run("mul overflow detected", func(t *testing.T) {
		big := num.UintZero().Lsh(num.UintOne(), 255)
		_, overflow := num.UintZero().MulOverflow(big, num.NewUint(2))
		assert.True(t, overflow)
	})

	t.Run("delta swaps on larger subtrahend", func(t *testing.T) {
		d, neg := num.UintZero().Delta(num.NewUint(10), num.NewUint(25))
		assert.True(t, neg)
		assert.Equal(t, uint64(15), d.Uint64())
	})

	t.Run("sum over varargs", func(t *testing.T) {
		res := num.Sum(num.NewUint(1), num.NewUint(2), num.NewUint(3))
		assert.Equal(t, uint64(6), res.Uint64())
	})

	t.Run("shifts roundtrip", func(t *testing.T) {
		n := num.UintZero().Lsh(num.NewUint(42), 64)
		assert.Equal(t, 70, n.BitLen())
		assert.Equal(t, uint64(42), num.UintZero().Rsh(n, 64).Uint64())
	})
}

func TestUint256IsZero(t *testing.T) {
	zero := num.NewUint(0)
	assert.True(t, zero.IsZero())
	assert.False(t, num.UintOne().IsZero())
}

func TestUint256Print(t *testing.T) {
	n := num.NewUint(42)
	assert.Equal(t, "42", fmt.Sprintf("%v", n))
}
