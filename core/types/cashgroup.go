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

package types

import (
	"code.vegaprotocol.io/lending/libs/num"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidCashGroup is returned when a cash group carries values
	// outside the configuration contract (haircut percentages above 100,
	// zero asset rate).
	ErrInvalidCashGroup = errors.New("invalid cash group parameters")
)

// AssetRatePrecision is the scaling of the underlying to native
// conversion rate held on an AssetRate.
const AssetRatePrecision uint64 = 10_000_000_000

// AssetRate converts amounts between the two accounting units of one
// currency. Rate is underlying units per native accounting unit, scaled
// by AssetRatePrecision; the conversion is a pure linear scaling.
type AssetRate struct {
	Rate *num.Uint
}

// ConvertFromUnderlying converts an underlying-denominated amount into
// the currency's native accounting denomination.
func (r *AssetRate) ConvertFromUnderlying(u *num.Int) *num.Int {
	if u.IsZero() {
		return num.IntZero()
	}
	magnitude := num.UintZero().Div(
		num.UintZero().Mul(u.U, num.NewUint(AssetRatePrecision)),
		r.Rate,
	)
	return num.IntFromUint(magnitude, !u.IsNegative())
}

func (r *AssetRate) String() string {
	return num.DecimalFromUint(r.Rate).
		Div(num.DecimalFromUint(num.NewUint(AssetRatePrecision))).
		String()
}

// CashGroupParameters is the per-currency risk and configuration bundle
// backing a valuation pass. All fields are read-only for the engine.
type CashGroupParameters struct {
	Currency uint16
	// ClaimHaircut widens the discount rate on positive future claim
	// value, in rate precision. Conservative for an asset.
	ClaimHaircut *num.Uint
	// DebtBuffer narrows the discount rate on negative future claim
	// value, in rate precision. Conservative for a liability.
	DebtBuffer *num.Uint
	// LiquidityHaircuts holds the percentage of a pooled position's
	// pro-rata shares counted towards risk-adjusted value, per tier.
	LiquidityHaircuts [MaxTier]uint64
	AssetRate         *AssetRate
}

// LiquidityHaircut returns the haircut percentage for the given tier
// (1 based).
func (c *CashGroupParameters) LiquidityHaircut(tier uint8) (uint64, error) {
	if tier < 1 || tier > MaxTier {
		return 0, ErrInvalidMarketTier
	}
	return c.LiquidityHaircuts[tier-1], nil
}

// Validate enforces the configuration provider contract: percentages in
// [0, 100], a usable asset rate and non-nil rate widenings.
func (c *CashGroupParameters) Validate() error {
	if c.ClaimHaircut == nil || c.DebtBuffer == nil {
		return errors.Wrap(ErrInvalidCashGroup, "missing rate widening")
	}
	if c.AssetRate == nil || c.AssetRate.Rate == nil || c.AssetRate.Rate.IsZero() {
		return errors.Wrap(ErrInvalidCashGroup, "missing or zero asset rate")
	}
	for tier, haircut := range c.LiquidityHaircuts {
		if haircut > 100 {
			return errors.Wrapf(ErrInvalidCashGroup, "liquidity haircut above 100%% for tier %d", tier+1)
		}
	}
	return nil
}
