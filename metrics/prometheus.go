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

package metrics

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Gauge ...
	Gauge instrument = iota
	// Counter ...
	Counter
)

var (
	// ErrInstrumentNotSupported signals the specified instrument is not yet supported.
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	// ErrInstrumentTypeMismatch signal the type of the instrument is not expected.
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

var (
	// engine time per currency/engine/function.
	engineTime *prometheus.CounterVec
	// number of portfolio valuations run, per currency and outcome.
	valuationCounter *prometheus.CounterVec
	// number of positions seen by the last valuation pass.
	positionGauge prometheus.Gauge
)

// abstract prometheus types.
type instrument int

// combine all possible prometheus options + way to differentiate between
// regular or vector type.
type instrumentOpts struct {
	opts    prometheus.Opts
	vectors []string
}

type mi struct {
	gaugeV   *prometheus.GaugeVec
	gauge    prometheus.Gauge
	counterV *prometheus.CounterVec
	counter  prometheus.Counter
}

// MetricInstrument - template interface for the mi type return value - only
// mock if needed, and only mock the funcs you use.
type MetricInstrument interface {
	Gauge() (prometheus.Gauge, error)
	GaugeVec() (*prometheus.GaugeVec, error)
	Counter() (prometheus.Counter, error)
	CounterVec() (*prometheus.CounterVec, error)
}

// InstrumentOption - vararg for instrument options setting.
type InstrumentOption func(o *instrumentOpts)

// Vectors - configuration used to create a vector of a given interface,
// slice of label names.
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help - set the help field on instrument.
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace - set namespace.
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// Subsystem - set subsystem... obviously.
func Subsystem(s string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Subsystem = s
	}
}

// Labels set labels for instrument (similar to vector, but with given values).
func Labels(labels map[string]string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.ConstLabels = prometheus.Labels(labels)
	}
}

// AddInstrument configures and registers a new metrics instrument.
func AddInstrument(t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{
			Name: name,
		},
	}
	for _, o := range opts {
		o(&opt)
	}
	switch t {
	case Gauge:
		o := opt.gauge()
		if len(opt.vectors) == 0 {
			ret.gauge = prometheus.NewGauge(o)
			col = ret.gauge
		} else {
			ret.gaugeV = prometheus.NewGaugeVec(o, opt.vectors)
			col = ret.gaugeV
		}
	case Counter:
		o := opt.counter()
		if len(opt.vectors) == 0 {
			ret.counter = prometheus.NewCounter(o)
			col = ret.counter
		} else {
			ret.counterV = prometheus.NewCounterVec(o, opt.vectors)
			col = ret.counterV
		}
	default:
		return nil, ErrInstrumentNotSupported
	}
	if err := prometheus.Register(col); err != nil {
		return nil, err
	}
	return &ret, nil
}

// Start enables metrics (given config).
func Start(conf Config) {
	if !conf.Enabled {
		return
	}
	if err := setupMetrics(); err != nil {
		panic("could not set up metrics")
	}
	http.Handle(conf.Path, promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", conf.Port), nil))
	}()
}

func (i instrumentOpts) gauge() prometheus.GaugeOpts {
	return prometheus.GaugeOpts(i.opts)
}

func (i instrumentOpts) counter() prometheus.CounterOpts {
	return prometheus.CounterOpts(i.opts)
}

// Gauge returns a prometheus Gauge instrument.
func (m mi) Gauge() (prometheus.Gauge, error) {
	if m.gauge == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gauge, nil
}

// GaugeVec returns a prometheus GaugeVec instrument.
func (m mi) GaugeVec() (*prometheus.GaugeVec, error) {
	if m.gaugeV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gaugeV, nil
}

// Counter returns a prometheus Counter instrument.
func (m mi) Counter() (prometheus.Counter, error) {
	if m.counter == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counter, nil
}

// CounterVec returns a prometheus CounterVec instrument.
func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

func setupMetrics() error {
	h, err := AddInstrument(
		Counter,
		"engine_seconds_total",
		Namespace("lending"),
		Vectors("currency", "engine", "fn"),
		Help("Total time spent in each engine function"),
	)
	if err != nil {
		return err
	}
	est, err := h.CounterVec()
	if err != nil {
		return err
	}
	engineTime = est

	h, err = AddInstrument(
		Counter,
		"valuations_total",
		Namespace("lending"),
		Vectors("currency", "outcome"),
		Help("Number of portfolio valuations run"),
	)
	if err != nil {
		return err
	}
	vc, err := h.CounterVec()
	if err != nil {
		return err
	}
	valuationCounter = vc

	h, err = AddInstrument(
		Gauge,
		"positions",
		Namespace("lending"),
		Help("Number of positions in the last valued portfolio"),
	)
	if err != nil {
		return err
	}
	g, err := h.Gauge()
	if err != nil {
		return err
	}
	positionGauge = g

	return nil
}

// ValuationCounterInc increments the valuation counter for a currency
// and outcome ("ok" or "fault").
func ValuationCounterInc(currency, outcome string) {
	if valuationCounter == nil {
		return
	}
	valuationCounter.WithLabelValues(currency, outcome).Inc()
}

// PositionGaugeSet records the size of the portfolio being valued.
func PositionGaugeSet(n int) {
	if positionGauge == nil {
		return
	}
	positionGauge.Set(float64(n))
}

// EngineTimeCounterAdd adds the time elapsed since the counter was
// created to the engine time metric.
func (t *TimeCounter) EngineTimeCounterAdd() {
	if engineTime == nil {
		return
	}
	t.duration = time.Since(t.start)
	engineTime.WithLabelValues(t.labelValues...).Add(t.duration.Seconds())
}
