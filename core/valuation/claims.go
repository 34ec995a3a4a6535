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

package valuation

import (
	"code.vegaprotocol.io/lending/core/types"
	"code.vegaprotocol.io/lending/libs/num"
)

// CashClaims returns a pooled liquidity position's pro-rata share of
// the market's cash and future claim reserves, without any haircut:
// share = reserve * notional / totalLiquidity, truncated.
func (e *Engine) CashClaims(p *types.Position, market *types.MarketParameters) (*num.Uint, *num.Uint, error) {
	if !p.IsPooledLiquidity() {
		return nil, nil, ErrNotPooledLiquidity
	}
	if p.Notional.IsNegative() {
		return nil, nil, ErrNegativeLiquidityNotional
	}
	if market.TotalLiquidity.IsZero() {
		if p.Notional.IsZero() {
			return num.UintZero(), num.UintZero(), nil
		}
		return nil, nil, ErrEmptyMarketLiquidity
	}
	cash := num.UintZero().Div(num.UintZero().Mul(market.TotalCash, p.Notional.U), market.TotalLiquidity)
	claim := num.UintZero().Div(num.UintZero().Mul(market.TotalClaim, p.Notional.U), market.TotalLiquidity)
	return cash, claim, nil
}

// HaircutCashClaims returns the same pro-rata shares scaled down by the
// cash group's per-tier liquidity haircut percentage, applied
// identically to both components.
func (e *Engine) HaircutCashClaims(p *types.Position, market *types.MarketParameters, cashGroup *types.CashGroupParameters) (*num.Uint, *num.Uint, error) {
	if p.Currency != cashGroup.Currency {
		return nil, nil, ErrCurrencyMismatch
	}
	cash, claim, err := e.CashClaims(p, market)
	if err != nil {
		return nil, nil, err
	}
	haircut, err := cashGroup.LiquidityHaircut(p.Tier)
	if err != nil {
		return nil, nil, err
	}
	hc := num.NewUint(haircut)
	cash.Div(cash.Mul(cash, hc), hundred)
	claim.Div(claim.Mul(claim, hc), hundred)
	return cash, claim, nil
}
