// Channel bank: per-channel conversion and threshold dispatch
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package channel

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"pmic-vadc/pkg/errors"
	"pmic-vadc/pkg/log"
	"pmic-vadc/pkg/metrics"
	"pmic-vadc/pkg/vadc"
)

// Threshold kinds accepted by Bank.Thresholds.
const (
	ThresholdUSB       = "usb"
	ThresholdVBatt     = "vbatt"
	ThresholdBTM       = "btm"
	ThresholdPMICTherm = "pmic_therm"
	ThresholdTherm100K = "therm_100k"
)

type thresholdFunc func(vadc.CalibrationSource, vadc.BTMParam) (vadc.Thresholds, error)

var thresholdFuncs = map[string]thresholdFunc{
	ThresholdUSB:       vadc.ScaleUSBThreshold,
	ThresholdVBatt:     vadc.ScaleVBattThreshold,
	ThresholdBTM:       vadc.ScaleBTMThreshold,
	ThresholdPMICTherm: vadc.ScaleMilliDegCPMICThreshold,
	ThresholdTherm100K: vadc.ScaleTherm100KThreshold,
}

// ThresholdKinds returns the supported threshold kinds, sorted.
func ThresholdKinds() []string {
	kinds := make([]string, 0, len(thresholdFuncs))
	for k := range thresholdFuncs {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Bank holds the converter properties, calibration source and channel
// descriptors of one VADC peripheral. Conversions may run concurrently.
type Bank struct {
	adc      vadc.AdcProperties
	source   vadc.CalibrationSource
	channels map[string]Descriptor
	order    []string

	metrics *metrics.VADCMetrics
	logger  *log.Logger

	mu    sync.RWMutex
	stats map[string]*Stats
}

// Option configures a Bank.
type Option func(*Bank)

// WithMetrics records conversions into m.
func WithMetrics(m *metrics.VADCMetrics) Option {
	return func(b *Bank) { b.metrics = m }
}

// WithLogger replaces the default "channel" logger.
func WithLogger(l *log.Logger) Option {
	return func(b *Bank) { b.logger = l }
}

// NewBank validates descs and builds a bank over src.
func NewBank(adc vadc.AdcProperties, src vadc.CalibrationSource, descs []Descriptor, opts ...Option) (*Bank, error) {
	if adc.VddReference == 0 {
		return nil, errors.InvalidArgumentError("adc_vdd_reference")
	}
	if src == nil {
		return nil, errors.InvalidArgumentError("calibration_source")
	}

	b := &Bank{
		adc:      adc,
		source:   src,
		channels: make(map[string]Descriptor, len(descs)),
		stats:    make(map[string]*Stats, len(descs)),
		logger:   log.GetLogger("channel"),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := b.channels[d.Name]; dup {
			return nil, errors.New(errors.ErrInvalidArgument, fmt.Sprintf("duplicate channel '%s'", d.Name)).
				SetSection(d.Name)
		}
		if d.Calib != d.Scale.Mode() {
			b.logger.WithFields(log.Fields{
				"channel":          d.Name,
				"calibration_type": d.Calib.String(),
				"scale_function":   d.Scale.String(),
			}).Warn("scale function uses the %s graph", d.Scale.Mode())
		}
		b.channels[d.Name] = d
		b.order = append(b.order, d.Name)
		b.stats[d.Name] = &Stats{}
	}
	return b, nil
}

// Channels returns the descriptors in configuration order.
func (b *Bank) Channels() []Descriptor {
	result := make([]Descriptor, 0, len(b.order))
	for _, name := range b.order {
		result = append(result, b.channels[name])
	}
	return result
}

// Descriptor returns the named channel.
func (b *Bank) Descriptor(name string) (Descriptor, bool) {
	d, ok := b.channels[name]
	return d, ok
}

// AdcProperties returns the converter properties shared by all channels.
func (b *Bank) AdcProperties() vadc.AdcProperties {
	return b.adc
}

// Source returns the calibration source.
func (b *Bank) Source() vadc.CalibrationSource {
	return b.source
}

// Convert clamps code into the valid range and scales it with the named
// channel's policy.
func (b *Bank) Convert(name string, code int32) (Reading, error) {
	d, ok := b.channels[name]
	if !ok {
		return Reading{}, b.fail(errors.ChannelUnknownError(name))
	}

	start := time.Now()
	clamped := vadc.CheckResult(code)
	ch, err := vadc.ChannelPropertiesFor(b.source, d.Scale.Mode(), d.Prescale.Num, d.Prescale.Den)
	if err != nil {
		return Reading{}, b.fail(err)
	}
	adc := b.adc
	res, err := vadc.Scale(d.Scale, clamped, &adc, ch)
	if err != nil {
		return Reading{}, b.fail(err)
	}

	r := Reading{Channel: name, Code: clamped, Result: res, Unit: d.Scale.Unit()}

	b.mu.Lock()
	b.stats[name].observe(res.Physical)
	b.mu.Unlock()

	if b.metrics != nil {
		b.metrics.RecordConversion(name, d.Scale.String(), clamped, res.Physical, time.Since(start))
	}
	b.logger.WithFields(log.Fields{
		"channel":     name,
		"code":        clamped,
		"measurement": res.Measurement,
		"physical":    res.Physical,
	}).Debug("converted")
	return r, nil
}

// Thresholds converts physical limits to comparator codes. kind is one of
// the Threshold* constants.
func (b *Bank) Thresholds(kind string, p vadc.BTMParam) (vadc.Thresholds, error) {
	fn, ok := thresholdFuncs[kind]
	if !ok {
		err := errors.New(errors.ErrInvalidArgument, fmt.Sprintf("unknown threshold kind '%s'", kind)).
			SetOption("threshold_kind")
		return vadc.Thresholds{}, b.fail(err)
	}
	if b.metrics != nil {
		b.metrics.RecordThreshold(kind)
	}

	t, err := fn(b.source, p)
	if err != nil {
		return vadc.Thresholds{}, b.fail(err)
	}
	b.logger.WithFields(log.Fields{
		"kind": kind,
		"low":  t.Low,
		"high": t.High,
	}).Debug("thresholds")
	return t, nil
}

// ThermReading converts a threshold monitor code from a 100k pull-up
// thermistor back to degC.
func (b *Bank) ThermReading(code uint32) (int64, error) {
	temp, err := vadc.ScaleTherm100KReading(b.source, code)
	if err != nil {
		return 0, b.fail(err)
	}
	return temp, nil
}

// Stats returns a copy of the statistics for the named channel.
func (b *Bank) Stats(name string) (Stats, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.stats[name]
	if !ok {
		return Stats{}, false
	}
	return *s, true
}

// fail records err in the metrics and returns it unchanged.
func (b *Bank) fail(err error) error {
	if b.metrics != nil {
		code := "UNKNOWN"
		if herr, ok := errors.AsHostError(err); ok {
			code = string(herr.Code)
		}
		b.metrics.RecordError(code)
	}
	return err
}
