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
	// ErrPortfolioNotGrouped is returned when the positions of one
	// currency do not form a single contiguous run.
	ErrPortfolioNotGrouped = errors.New("portfolio positions are not grouped by currency")
	// ErrDuplicateClaimMaturity is returned when a currency run holds
	// more than one future claim for the same maturity.
	ErrDuplicateClaimMaturity = errors.New("duplicate future claim maturity in currency run")
)

// PositionKind discriminates the two asset classes a portfolio can hold.
type PositionKind uint8

const (
	KindUnspecified PositionKind = iota
	// KindFutureClaim is a fixed amount paying at a fixed future date.
	KindFutureClaim
	// KindPooledLiquidity is pro-rata ownership of a pooled market's
	// cash and future claim reserves, on one of the standardized tenors.
	KindPooledLiquidity
)

func (k PositionKind) String() string {
	switch k {
	case KindFutureClaim:
		return "future-claim"
	case KindPooledLiquidity:
		return "pooled-liquidity"
	default:
		return "unspecified"
	}
}

// Position is one line item in a portfolio. For pooled liquidity the
// maturity is the market's maturity, not the position's own settlement
// date, and Tier identifies which of the nine standardized tenors the
// position pools into.
type Position struct {
	Currency uint16
	Maturity int64
	Kind     PositionKind
	Tier     uint8
	// Notional is signed, positive for a claim held and negative for a
	// liability owed. Pooled liquidity notionals are never negative.
	Notional *num.Int
}

func (p *Position) IsFutureClaim() bool {
	return p.Kind == KindFutureClaim
}

func (p *Position) IsPooledLiquidity() bool {
	return p.Kind == KindPooledLiquidity
}

func (p *Position) Clone() *Position {
	cpy := *p
	cpy.Notional = p.Notional.Clone()
	return &cpy
}

// Positions is an indexable portfolio, passed by exclusive reference for
// the duration of one valuation call. The netting step mutates future
// claim notionals through AccumulateClaim, so a caller must treat the
// collection as dirty once a valuation pass returns.
type Positions []*Position

// Clone deep-copies the portfolio.
func (ps Positions) Clone() Positions {
	cpy := make(Positions, 0, len(ps))
	for _, p := range ps {
		cpy = append(cpy, p.Clone())
	}
	return cpy
}

// FindFutureClaim returns the index of the future claim with the given
// currency and maturity, scanning the contiguous run starting at from,
// or -1 when the run holds no such claim.
func (ps Positions) FindFutureClaim(from int, currency uint16, maturity int64) int {
	for i := from; i < len(ps) && ps[i].Currency == currency; i++ {
		if ps[i].IsFutureClaim() && ps[i].Maturity == maturity {
			return i
		}
	}
	return -1
}

// AccumulateClaim adds the given claim amount into the notional at index
// i. This is the netting operation: a pooled liquidity position's claim
// share is folded into the matching future claim so the claim pass
// values it exactly once.
func (ps Positions) AccumulateClaim(i int, claim *num.Uint) {
	ps[i].Notional.AddUint(claim)
}

// ValidateGrouping checks the sorting precondition the group scan relies
// on: every currency's positions form one contiguous run, and a run
// holds at most one future claim per maturity.
func (ps Positions) ValidateGrouping() error {
	seen := map[uint16]struct{}{}
	var (
		current    uint16
		maturities map[int64]struct{}
	)
	for i, p := range ps {
		if i == 0 || p.Currency != current {
			if _, ok := seen[p.Currency]; ok {
				return ErrPortfolioNotGrouped
			}
			seen[p.Currency] = struct{}{}
			current = p.Currency
			maturities = map[int64]struct{}{}
		}
		if !p.IsFutureClaim() {
			continue
		}
		if _, ok := maturities[p.Maturity]; ok {
			return ErrDuplicateClaimMaturity
		}
		maturities[p.Maturity] = struct{}{}
	}
	return nil
}
