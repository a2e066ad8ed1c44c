// VADC conversion metrics
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package metrics

import (
	"sync"
	"time"
)

// VADCMetrics holds the metrics recorded by a channel bank
type VADCMetrics struct {
	Conversions        *Counter
	ConversionErrors   *Counter
	ConversionDuration *Histogram
	ChannelPhysical    *Gauge
	ChannelRawCode     *Gauge
	ThresholdRequests  *Counter

	registry *Registry
}

// NewVADCMetrics creates the VADC metrics in a fresh registry
func NewVADCMetrics() *VADCMetrics {
	m := &VADCMetrics{
		registry: NewRegistry(),
		Conversions: NewCounter("vadc_conversions_total",
			"Successful raw code conversions per scale function"),
		ConversionErrors: NewCounter("vadc_conversion_errors_total",
			"Failed conversions and threshold requests per error code"),
		ConversionDuration: NewHistogram("vadc_conversion_duration_seconds",
			"Time spent converting one raw code", ExponentialBuckets(1e-7, 10, 6)),
		ChannelPhysical: NewGauge("vadc_channel_physical",
			"Last physical value per channel, in the unit of its scale function"),
		ChannelRawCode: NewGauge("vadc_channel_raw_code",
			"Last clamped raw code per channel"),
		ThresholdRequests: NewCounter("vadc_threshold_requests_total",
			"Threshold scaling requests per kind"),
	}

	m.registry.MustRegister(m.Conversions)
	m.registry.MustRegister(m.ConversionErrors)
	m.registry.MustRegister(m.ConversionDuration)
	m.registry.MustRegister(m.ChannelPhysical)
	m.registry.MustRegister(m.ChannelRawCode)
	m.registry.MustRegister(m.ThresholdRequests)
	return m
}

// RecordConversion records a successful conversion of channel
func (m *VADCMetrics) RecordConversion(channel, scale string, code int32, physical int64, elapsed time.Duration) {
	m.Conversions.Inc(Labels{"scale_function": scale})
	m.ConversionDuration.Observe(Labels{"scale_function": scale}, elapsed.Seconds())
	m.ChannelPhysical.Set(Labels{"channel": channel}, float64(physical))
	m.ChannelRawCode.Set(Labels{"channel": channel}, float64(code))
}

// RecordError counts a failure under its error code
func (m *VADCMetrics) RecordError(code string) {
	m.ConversionErrors.Inc(Labels{"code": code})
}

// RecordThreshold counts a threshold request
func (m *VADCMetrics) RecordThreshold(kind string) {
	m.ThresholdRequests.Inc(Labels{"kind": kind})
}

// Gather renders the VADC metrics in Prometheus text format
func (m *VADCMetrics) Gather() string {
	return m.registry.Gather()
}

// Registry returns the underlying registry
func (m *VADCMetrics) Registry() *Registry {
	return m.registry
}

var (
	globalMetrics     *VADCMetrics
	globalMetricsOnce sync.Once
)

// GlobalMetrics returns the process-wide VADC metrics
func GlobalMetrics() *VADCMetrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = NewVADCMetrics()
	})
	return globalMetrics
}
