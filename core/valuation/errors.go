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

import "github.com/pkg/errors"

// Contract violations. These signal bad caller data, not transient
// conditions; any of them aborts the whole valuation call.
var (
	// ErrCurrencyMismatch is returned when a position is valued against
	// a cash group of a different currency.
	ErrCurrencyMismatch = errors.New("position currency does not match cash group")

	// ErrOffScheduleMaturity is returned when a pooled liquidity
	// position's maturity is not the standardized tenor maturity for its
	// tier at valuation time.
	ErrOffScheduleMaturity = errors.New("pooled liquidity maturity is off the tenor schedule")

	// ErrMaturityBeforeValuationTime is returned for a position past its
	// maturity; matured positions must be settled before valuation.
	ErrMaturityBeforeValuationTime = errors.New("maturity is before valuation time")

	// ErrNotPooledLiquidity is returned when claim share accounting is
	// requested for anything but a pooled liquidity position.
	ErrNotPooledLiquidity = errors.New("position is not pooled liquidity")

	// ErrNegativeLiquidityNotional is returned when a pooled liquidity
	// position carries a negative notional.
	ErrNegativeLiquidityNotional = errors.New("pooled liquidity notional is negative")

	// ErrEmptyMarketLiquidity is returned when a market reports pooled
	// ownership against zero issued liquidity units.
	ErrEmptyMarketLiquidity = errors.New("market has no issued liquidity units")

	// ErrNoMarketForMaturity is returned when no supplied market prices
	// the requested maturity.
	ErrNoMarketForMaturity = errors.New("no market for maturity")

	// ErrUnknownPositionKind is returned for a position of an
	// unspecified asset class.
	ErrUnknownPositionKind = errors.New("unknown position kind")
)

// Arithmetic faults. Unreachable for inputs within the collaborator
// contracts; reaching one means a miscomputed value and the result must
// not be used.
var (
	// ErrDiscountFactorAboveUnity is returned when a computed discount
	// factor exceeds the rate precision unit.
	ErrDiscountFactorAboveUnity = errors.New("discount factor above unity")

	// ErrValueOverflow is returned when a valuation product exceeds 256
	// bits.
	ErrValueOverflow = errors.New("valuation arithmetic overflow")
)
