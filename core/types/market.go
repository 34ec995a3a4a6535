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
)

// MarketParameters is the snapshot of one pooled market, identified by
// currency and maturity. A market state provider supplies one snapshot
// per active tenor, sorted by maturity, all reflecting the same
// timestamp; the engine never mutates them.
type MarketParameters struct {
	Currency uint16
	Maturity int64
	// TotalCash is the market's pooled cash reserve, in underlying
	// denomination.
	TotalCash *num.Uint
	// TotalClaim is the market's pooled future claim reserve, paying at
	// Maturity.
	TotalClaim *num.Uint
	// TotalLiquidity is the total ownership units issued against the two
	// reserves.
	TotalLiquidity *num.Uint
	// OracleRate is the prevailing discount rate for this maturity, in
	// rate precision.
	OracleRate *num.Uint
}

func (m *MarketParameters) Clone() *MarketParameters {
	return &MarketParameters{
		Currency:       m.Currency,
		Maturity:       m.Maturity,
		TotalCash:      m.TotalCash.Clone(),
		TotalClaim:     m.TotalClaim.Clone(),
		TotalLiquidity: m.TotalLiquidity.Clone(),
		OracleRate:     m.OracleRate.Clone(),
	}
}
