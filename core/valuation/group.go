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

// GroupValue aggregates one currency's contiguous run of positions,
// starting at start, into a single risk-adjusted present value in the
// currency's native accounting denomination. It returns that value and
// the index where the next currency's run begins.
//
// Two passes over the run: the first resolves pooled liquidity into
// cash shares (asset denominated) and claim present values (underlying
// denominated), netting claim shares into matching future claims as it
// goes. The second discounts every future claim at post-netting
// notionals. The underlying total is then converted into asset terms
// and added to the cash total.
func (e *Engine) GroupValue(
	portfolio types.Positions,
	cashGroup *types.CashGroupParameters,
	markets []*types.MarketParameters,
	now int64,
	start int,
) (*num.Int, int, error) {
	assetTotal := num.IntZero()
	underlyingTotal := num.IntZero()

	for i := start; i < len(portfolio) && portfolio[i].Currency == cashGroup.Currency; i++ {
		p := portfolio[i]
		if !p.IsPooledLiquidity() {
			continue
		}
		cash, net, err := e.LiquidityTokenValue(p, cashGroup, markets, portfolio, start, now, true)
		if err != nil {
			return nil, 0, err
		}
		assetTotal.AddUint(cash)
		underlyingTotal.Add(net)
	}

	next := start
	for i := start; i < len(portfolio) && portfolio[i].Currency == cashGroup.Currency; i++ {
		next = i + 1
		p := portfolio[i]
		// pass 1 may have folded claim shares into these notionals, so
		// this always discounts post-netting values.
		if !p.IsFutureClaim() || p.Notional.IsZero() {
			continue
		}
		rate, err := oracleRate(markets, p.Maturity)
		if err != nil {
			return nil, 0, err
		}
		value, err := e.RiskAdjustedPresentValue(cashGroup, p.Notional, p.Maturity, now, rate)
		if err != nil {
			return nil, 0, err
		}
		underlyingTotal.Add(value)
	}

	assetTotal.Add(cashGroup.AssetRate.ConvertFromUnderlying(underlyingTotal))

	if e.log.IsDebug() {
		e.log.Debug("currency run valued",
			logging.Uint16("currency", cashGroup.Currency),
			logging.Int("start", start),
			logging.Int("next", next),
			logging.String("underlying-total", underlyingTotal.String()),
			logging.String("asset-total", assetTotal.String()),
		)
	}
	return assetTotal, next, nil
}

// oracleRate resolves the prevailing discount rate for a maturity from
// the supplied market snapshots, sorted by maturity. Off tenor
// maturities are priced by interpolating linearly in time between the
// two neighbouring markets; a maturity outside the tenor range has no
// price and is a contract violation.
func oracleRate(markets []*types.MarketParameters, maturity int64) (*num.Uint, error) {
	for i, m := range markets {
		switch {
		case m.Maturity == maturity:
			return m.OracleRate.Clone(), nil
		case m.Maturity > maturity:
			if i == 0 {
				return nil, ErrNoMarketForMaturity
			}
			return interpolateRate(markets[i-1], m, maturity), nil
		}
	}
	return nil, ErrNoMarketForMaturity
}

// interpolateRate weighs the two neighbouring rates by their distance
// in time to the target maturity:
// rate = (r0*(t1-t) + r1*(t-t0)) / (t1-t0).
func interpolateRate(m0, m1 *types.MarketParameters, maturity int64) *num.Uint {
	left := num.UintZero().Mul(m0.OracleRate, num.NewUint(uint64(m1.Maturity-maturity)))
	right := num.UintZero().Mul(m1.OracleRate, num.NewUint(uint64(maturity-m0.Maturity)))
	span := num.NewUint(uint64(m1.Maturity - m0.Maturity))
	return num.UintZero().Div(num.UintZero().Add(left, right), span)
}
