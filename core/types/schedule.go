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

import "github.com/pkg/errors"

// ErrInvalidMarketTier is returned when a pooled liquidity tier is
// outside the 1..9 range of standardized tenors.
var ErrInvalidMarketTier = errors.New("invalid market tier")

// RatePrecision is the scaling applied to every rate in the system:
// oracle rates, haircuts, debt buffers and discount factors are all
// unsigned integers scaled by 1e9, so a rate of 5% is 50_000_000.
const RatePrecision uint64 = 1_000_000_000

// Time constants on the 360 day financial year used by the market
// schedule. Maturities are unix seconds, markets roll on a quarterly
// cycle so every standardized maturity is a whole number of quarters.
const (
	Day     int64 = 86_400
	Quarter int64 = 90 * Day
	Year    int64 = 360 * Day
)

// MaxTier is the number of standardized tenors a currency can pool
// liquidity into.
const MaxTier uint8 = 9

// tenor lengths per tier: 3m, 6m, 1y, 2y, 5y, 7y, 10y, 15y, 20y.
var tenorLengths = [MaxTier]int64{
	Quarter,
	2 * Quarter,
	Year,
	2 * Year,
	5 * Year,
	7 * Year,
	10 * Year,
	15 * Year,
	20 * Year,
}

// TenorLength returns the length in seconds of the standardized tenor
// for the given tier (1 based).
func TenorLength(tier uint8) (int64, error) {
	if tier < 1 || tier > MaxTier {
		return 0, ErrInvalidMarketTier
	}
	return tenorLengths[tier-1], nil
}

// ReferenceTime returns the start of the quarterly cycle the given time
// falls in. Standardized maturities are always ReferenceTime(now) plus a
// tenor length.
func ReferenceTime(now int64) int64 {
	return now - now%Quarter
}
