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

package fp_test

import (
	"testing"

	"code.vegaprotocol.io/lending/libs/fp"
	"code.vegaprotocol.io/lending/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toDecimal converts a Q64.64 value into a Decimal for comparisons.
func toDecimal(x *num.Uint) num.Decimal {
	return num.DecimalFromUint(x).Div(num.DecimalFromUint(fp.One()))
}

func TestFromRatio(t *testing.T) {
	t.Run("exact half", func(t *testing.T) {
		x, err := fp.FromRatio(num.UintOne(), num.NewUint(2))
		require.NoError(t, err)
		assert.Equal(t, num.UintZero().Rsh(fp.One(), 1), x)
	})

	t.Run("division by zero", func(t *testing.T) {
		_, err := fp.FromRatio(num.UintOne(), num.UintZero())
		assert.ErrorIs(t, err, fp.ErrDivisionByZero)
	})

	t.Run("numerator too large", func(t *testing.T) {
		n := num.UintZero().Lsh(num.UintOne(), 200)
		_, err := fp.FromRatio(n, num.UintOne())
		assert.ErrorIs(t, err, fp.ErrFixedPointOverflow)
	})
}

func TestMul(t *testing.T) {
	half := num.UintZero().Rsh(fp.One(), 1)
	quarter, err := fp.Mul(half, half)
	require.NoError(t, err)
	assert.Equal(t, num.UintZero().Rsh(fp.One(), 2), quarter)
}

func TestExpNegAtZero(t *testing.T) {
	assert.Equal(t, fp.One(), fp.ExpNeg(num.UintZero()))
}

func TestExpNegKnownValues(t *testing.T) {
	// e^-x for a few x, to 15 decimal places
	cases := []struct {
		num, den uint64
		expected string
	}{
		{1, 1, "0.367879441171442"},
		{1, 2, "0.606530659712633"},
		{1, 8, "0.882496902584595"},
		{2, 1, "0.135335283236613"},
		{5, 1, "0.006737946999085"},
	}
	tolerance := num.MustDecimalFromString("0.000000000001")
	for _, c := range cases {
		x, err := fp.FromRatio(num.NewUint(c.num), num.NewUint(c.den))
		require.NoError(t, err)
		got := toDecimal(fp.ExpNeg(x))
		diff := got.Sub(num.MustDecimalFromString(c.expected)).Abs()
		assert.True(t, diff.LessThan(tolerance),
			"e^-%d/%d: got %s", c.num, c.den, got.String())
	}
}

func TestExpNegMonotonicDecreasing(t *testing.T) {
	prev := fp.One().Clone()
	// quarter steps up to x = 16
	for i := uint64(1); i <= 64; i++ {
		x, err := fp.FromRatio(num.NewUint(i), num.NewUint(4))
		require.NoError(t, err)
		cur := fp.ExpNeg(x)
		assert.True(t, cur.LT(prev), "e^-x not decreasing at x=%d/4", i)
		prev = cur
	}
}

func TestExpNegNeverAboveOne(t *testing.T) {
	for i := uint64(0); i < 100; i++ {
		x, err := fp.FromRatio(num.NewUint(i), num.NewUint(7))
		require.NoError(t, err)
		assert.True(t, fp.ExpNeg(x).LTE(fp.One()))
	}
}

func TestExpNegUnderflowsToZero(t *testing.T) {
	// e^-64 is below the smallest representable fraction
	x, err := fp.FromRatio(num.NewUint(64), num.UintOne())
	require.NoError(t, err)
	assert.True(t, fp.ExpNeg(x).IsZero())
}
