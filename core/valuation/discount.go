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
	"code.vegaprotocol.io/lending/libs/fp"
	"code.vegaprotocol.io/lending/libs/num"

	"github.com/pkg/errors"
)

var (
	ratePrecision  = num.NewUint(types.RatePrecision)
	secondsPerYear = num.NewUint(uint64(types.Year))
	hundred        = num.NewUint(100)
)

// DiscountFactor returns the continuous time decay factor
// RATE_PRECISION * e^(-oracleRate * timeToMaturity / YEAR / RATE_PRECISION)
// in rate precision. The factor never exceeds the rate precision unit
// for a valid non-negative rate; a factor above unity is an arithmetic
// fault.
func (e *Engine) DiscountFactor(timeToMaturity int64, oracleRate *num.Uint) (*num.Uint, error) {
	if timeToMaturity < 0 {
		return nil, ErrMaturityBeforeValuationTime
	}
	exponent, err := fp.FromRatio(
		num.UintZero().Mul(oracleRate, num.NewUint(uint64(timeToMaturity))),
		num.UintZero().Mul(secondsPerYear, ratePrecision),
	)
	if err != nil {
		return nil, errors.Wrap(ErrValueOverflow, err.Error())
	}
	factor := num.UintZero().Mul(fp.ExpNeg(exponent), ratePrecision)
	factor.Rsh(factor, fp.FracBits)
	if factor.GT(ratePrecision) {
		return nil, ErrDiscountFactorAboveUnity
	}
	return factor, nil
}

// PresentValue discounts a notional paying at maturity back to now at
// the given oracle rate. A zero notional short-circuits to zero without
// touching the time to maturity at all.
func (e *Engine) PresentValue(notional *num.Int, maturity, now int64, oracleRate *num.Uint) (*num.Int, error) {
	if notional.IsZero() {
		return num.IntZero(), nil
	}
	if maturity < now {
		return nil, ErrMaturityBeforeValuationTime
	}
	factor, err := e.DiscountFactor(maturity-now, oracleRate)
	if err != nil {
		return nil, err
	}
	magnitude := num.UintZero().Div(num.UintZero().Mul(notional.U, factor), ratePrecision)
	return num.IntFromUint(magnitude, notional.IsPositive()), nil
}

// RiskAdjustedPresentValue discounts a notional conservatively: claims
// held are discounted at a widened rate (worth less), liabilities owed
// at a narrowed one (worth more in absolute terms). When the debt
// buffer swallows the whole oracle rate the liability is floored at its
// undiscounted notional rather than letting a negative effective rate
// inflate the discount factor. Solvency depends on this exact policy.
func (e *Engine) RiskAdjustedPresentValue(cashGroup *types.CashGroupParameters, notional *num.Int, maturity, now int64, oracleRate *num.Uint) (*num.Int, error) {
	if notional.IsZero() {
		return num.IntZero(), nil
	}
	if notional.IsPositive() {
		adjusted := num.Sum(oracleRate, cashGroup.ClaimHaircut)
		return e.PresentValue(notional, maturity, now, adjusted)
	}
	if cashGroup.DebtBuffer.GTE(oracleRate) {
		return notional.Clone(), nil
	}
	adjusted := num.UintZero().Sub(oracleRate, cashGroup.DebtBuffer)
	return e.PresentValue(notional, maturity, now, adjusted)
}

// SettlementDate returns the date a position resolves at. Future claims
// settle at their own maturity. Pooled liquidity settles on the fixed
// quarterly cycle instead: the cycle anchor is recovered from the
// market's maturity and the tier's tenor length.
func (e *Engine) SettlementDate(p *types.Position) (int64, error) {
	switch p.Kind {
	case types.KindFutureClaim:
		return p.Maturity, nil
	case types.KindPooledLiquidity:
		tenor, err := types.TenorLength(p.Tier)
		if err != nil {
			return 0, err
		}
		return p.Maturity - tenor + types.Quarter, nil
	default:
		return 0, ErrUnknownPositionKind
	}
}
