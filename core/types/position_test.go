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

package types_test

import (
	"testing"

	"code.vegaprotocol.io/lending/core/types"
	"code.vegaprotocol.io/lending/libs/num"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func claim(currency uint16, maturity int64, notional int64) *types.Position {
	return &types.Position{
		Currency: currency,
		Maturity: maturity,
		Kind:     types.KindFutureClaim,
		Notional: num.NewInt(notional),
	}
}

func pooled(currency uint16, maturity int64, tier uint8, notional int64) *types.Position {
	return &types.Position{
		Currency: currency,
		Maturity: maturity,
		Kind:     types.KindPooledLiquidity,
		Tier:     tier,
		Notional: num.NewInt(notional),
	}
}

func TestPositionKindString(t *testing.T) {
	assert.Equal(t, "future-claim", types.KindFutureClaim.String())
	assert.Equal(t, "pooled-liquidity", types.KindPooledLiquidity.String())
	assert.Equal(t, "unspecified", types.KindUnspecified.String())
}

func TestPositionClone(t *testing.T) {
	p := claim(1, 100*types.Quarter, 5000)
	cpy := p.Clone()
	cpy.Notional.AddUint(num.NewUint(1000))
	assert.Equal(t, int64(5000), p.Notional.Int64())
	assert.Equal(t, int64(6000), cpy.Notional.Int64())
}

func TestFindFutureClaim(t *testing.T) {
	m1, m2 := 100*types.Quarter, 102*types.Quarter
	portfolio := types.Positions{
		pooled(1, m1, 1, 300),
		claim(1, m1, -200),
		claim(2, m1, 700),
		claim(2, m2, 100),
	}

	t.Run("finds a claim within the run", func(t *testing.T) {
		assert.Equal(t, 1, portfolio.FindFutureClaim(0, 1, m1))
		assert.Equal(t, 3, portfolio.FindFutureClaim(2, 2, m2))
	})

	t.Run("does not cross into the next currency run", func(t *testing.T) {
		assert.Equal(t, -1, portfolio.FindFutureClaim(0, 1, m2))
	})

	t.Run("skips pooled liquidity entries", func(t *testing.T) {
		assert.Equal(t, -1, types.Positions{pooled(1, m1, 1, 300)}.FindFutureClaim(0, 1, m1))
	})
}

func TestAccumulateClaim(t *testing.T) {
	portfolio := types.Positions{claim(1, 100*types.Quarter, -500)}
	portfolio.AccumulateClaim(0, num.NewUint(200))
	assert.Equal(t, int64(-300), portfolio[0].Notional.Int64())
	portfolio.AccumulateClaim(0, num.NewUint(1000))
	assert.Equal(t, int64(700), portfolio[0].Notional.Int64())
}

func TestValidateGrouping(t *testing.T) {
	m1, m2 := 100*types.Quarter, 102*types.Quarter

	t.Run("accepts empty portfolio", func(t *testing.T) {
		require.NoError(t, types.Positions{}.ValidateGrouping())
	})

	t.Run("accepts contiguous currency runs", func(t *testing.T) {
		portfolio := types.Positions{
			pooled(1, m1, 1, 300),
			claim(1, m1, -200),
			claim(1, m2, 50),
			claim(2, m1, 700),
		}
		require.NoError(t, portfolio.ValidateGrouping())
	})

	t.Run("rejects a split currency run", func(t *testing.T) {
		portfolio := types.Positions{
			claim(1, m1, -200),
			claim(2, m1, 700),
			claim(1, m2, 50),
		}
		assert.ErrorIs(t, portfolio.ValidateGrouping(), types.ErrPortfolioNotGrouped)
	})

	t.Run("rejects duplicate claim maturities in one run", func(t *testing.T) {
		portfolio := types.Positions{
			claim(1, m1, -200),
			claim(1, m1, 50),
		}
		assert.ErrorIs(t, portfolio.ValidateGrouping(), types.ErrDuplicateClaimMaturity)
	})

	t.Run("same maturity in different runs is fine", func(t *testing.T) {
		portfolio := types.Positions{
			claim(1, m1, -200),
			claim(2, m1, 50),
		}
		require.NoError(t, portfolio.ValidateGrouping())
	})

	t.Run("pooled entries never collide on maturity", func(t *testing.T) {
		portfolio := types.Positions{
			pooled(1, m1, 1, 300),
			pooled(1, m1, 1, 200),
			claim(1, m1, 50),
		}
		require.NoError(t, portfolio.ValidateGrouping())
	})
}

func TestPositionsClone(t *testing.T) {
	portfolio := types.Positions{claim(1, 100*types.Quarter, 5000)}
	cpy := portfolio.Clone()
	cpy.AccumulateClaim(0, num.NewUint(1))
	assert.Equal(t, int64(5000), portfolio[0].Notional.Int64())
	assert.Equal(t, int64(5001), cpy[0].Notional.Int64())
}
