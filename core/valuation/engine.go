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
	"strconv"

	"code.vegaprotocol.io/lending/core/types"
	"code.vegaprotocol.io/lending/libs/num"
	"code.vegaprotocol.io/lending/logging"
	"code.vegaprotocol.io/lending/metrics"
)

// CashGroupProvider resolves the risk configuration bundle of a
// currency.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/cash_group_provider_mock.go -package mocks code.vegaprotocol.io/lending/core/valuation CashGroupProvider
type CashGroupProvider interface {
	CashGroup(currency uint16) (*types.CashGroupParameters, error)
}

// MarketProvider resolves the market snapshots active for a currency at
// the given time, sorted by maturity.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/market_provider_mock.go -package mocks code.vegaprotocol.io/lending/core/valuation MarketProvider
type MarketProvider interface {
	ActiveMarkets(currency uint16, now int64) ([]*types.MarketParameters, error)
}

// Engine values fixed rate lending portfolios. It only ever reads
// market and cash group state; the one thing it mutates is the
// caller-supplied portfolio, through the netting step, and only for the
// duration of one valuation call. Not safe for overlapping calls over
// the same portfolio.
type Engine struct {
	Config
	log *logging.Logger

	cashGroups CashGroupProvider
	markets    MarketProvider
}

// New instantiates a new instance of the valuation engine.
func New(log *logging.Logger, conf Config, cashGroups CashGroupProvider, markets MarketProvider) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config:     conf,
		log:        log,
		cashGroups: cashGroups,
		markets:    markets,
	}
}

// ReloadConf updates the internal configuration of the valuation
// engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.Config = cfg
}

// Value runs a full valuation pass over the portfolio and returns the
// total risk-adjusted present value per currency, each in its own
// native accounting denomination. Any fault aborts the whole call with
// no partial result; callers must treat that as "valuation unavailable"
// and block dependent actions rather than substitute a default. The
// portfolio is dirty once this returns: netting may have changed future
// claim notionals.
func (e *Engine) Value(portfolio types.Positions, now int64) (map[uint16]*num.Int, error) {
	timer := metrics.NewTimeCounter("-", "valuation", "Value")
	defer timer.EngineTimeCounterAdd()
	metrics.PositionGaugeSet(len(portfolio))

	if err := portfolio.ValidateGrouping(); err != nil {
		return nil, err
	}

	values := make(map[uint16]*num.Int)
	for idx := 0; idx < len(portfolio); {
		currency := portfolio[idx].Currency
		label := strconv.FormatUint(uint64(currency), 10)

		total, next, err := e.valueRun(portfolio, currency, now, idx)
		if err != nil {
			metrics.ValuationCounterInc(label, "fault")
			e.log.Error("valuation aborted",
				logging.Uint16("currency", currency),
				logging.Int("index", idx),
				logging.Error(err),
			)
			return nil, err
		}
		metrics.ValuationCounterInc(label, "ok")
		values[currency] = total
		idx = next
	}
	return values, nil
}

func (e *Engine) valueRun(portfolio types.Positions, currency uint16, now int64, start int) (*num.Int, int, error) {
	cashGroup, err := e.cashGroups.CashGroup(currency)
	if err != nil {
		return nil, 0, err
	}
	if err := cashGroup.Validate(); err != nil {
		return nil, 0, err
	}
	if cashGroup.Currency != currency {
		return nil, 0, ErrCurrencyMismatch
	}
	markets, err := e.markets.ActiveMarkets(currency, now)
	if err != nil {
		return nil, 0, err
	}
	return e.GroupValue(portfolio, cashGroup, markets, now, start)
}
