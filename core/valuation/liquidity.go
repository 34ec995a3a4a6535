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
	"code.vegaprotocol.io/lending/logging"
)

// LiquidityTokenValue resolves one pooled liquidity position into its
// cash share (asset denominated) and the net present value of its claim
// share (underlying denominated). When the portfolio run holds a future
// claim on the same currency and maturity, the claim share is folded
// into that claim instead (netting) and the returned net value is zero;
// the claim pass then values the combined notional exactly once.
//
// Pooled liquidity can only exist on standardized tenors, so the
// position's maturity must be the exact tenor maturity for its tier at
// valuation time. The portfolio is mutated through AccumulateClaim for
// the remainder of the valuation pass.
func (e *Engine) LiquidityTokenValue(
	p *types.Position,
	cashGroup *types.CashGroupParameters,
	markets []*types.MarketParameters,
	portfolio types.Positions,
	runStart int,
	now int64,
	withHaircut bool,
) (*num.Uint, *num.Int, error) {
	tenor, err := types.TenorLength(p.Tier)
	if err != nil {
		return nil, nil, err
	}
	if p.Maturity != types.ReferenceTime(now)+tenor {
		return nil, nil, ErrOffScheduleMaturity
	}

	var market *types.MarketParameters
	for _, m := range markets {
		if m.Maturity == p.Maturity {
			market = m
			break
		}
	}
	if market == nil {
		return nil, nil, ErrNoMarketForMaturity
	}

	var cash, claim *num.Uint
	if withHaircut {
		cash, claim, err = e.HaircutCashClaims(p, market, cashGroup)
	} else {
		cash, claim, err = e.CashClaims(p, market)
	}
	if err != nil {
		return nil, nil, err
	}

	if i := portfolio.FindFutureClaim(runStart, p.Currency, p.Maturity); i >= 0 {
		portfolio.AccumulateClaim(i, claim)
		if e.log.IsDebug() {
			e.log.Debug("liquidity claim netted against future claim",
				logging.Uint16("currency", p.Currency),
				logging.Int64("maturity", p.Maturity),
				logging.String("claim-share", claim.String()),
			)
		}
		return cash, num.IntZero(), nil
	}

	claimNotional := num.IntFromUint(claim, true)
	var net *num.Int
	if withHaircut {
		net, err = e.RiskAdjustedPresentValue(cashGroup, claimNotional, p.Maturity, now, market.OracleRate)
	} else {
		net, err = e.PresentValue(claimNotional, p.Maturity, now, market.OracleRate)
	}
	if err != nil {
		return nil, nil, err
	}
	return cash, net, nil
}
