// Two-point gain/offset calibration for the VADC
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

import "pmic-vadc/pkg/errors"

const (
	// MinADCCode is the raw code that represents 0 V.
	MinADCCode = 0x6000
	// MaxADCCode is the raw code that represents the 1.8 V full scale.
	MaxADCCode = 0xA800

	// Ref625uV is the absolute calibration reference step in µV.
	Ref625uV = 625000

	// KelvinMilliDegC is 273.16 K in milli-units.
	KelvinMilliDegC = 273160
)

// CalibMode selects which of a channel's two calibration graphs applies.
type CalibMode int

const (
	// CalibAbsolute calibrates against fixed 625 mV and 1.25 V references.
	CalibAbsolute CalibMode = iota
	// CalibRatiometric calibrates against GND and the VDD reference rail.
	CalibRatiometric
)

func (m CalibMode) String() string {
	switch m {
	case CalibAbsolute:
		return "absolute"
	case CalibRatiometric:
		return "ratiometric"
	default:
		return "unknown"
	}
}

// LinearGraph is one gain/offset snapshot. Dy is the code distance between
// the two reference points, Dx their voltage distance, AdcVref the voltage of
// the upper reference and AdcGnd the code of the lower reference.
type LinearGraph struct {
	Dy      int64
	Dx      int64
	AdcVref int64
	AdcGnd  int64
}

// AdcProperties describes the converter shared by all channels.
type AdcProperties struct {
	// VddReference is the ratiometric reference rail in mV.
	VddReference  int64
	BitResolution uint32
	Bipolar       bool
}

// ChannelProperties describes how one channel's raw code maps to its
// reference domain. Graph is indexed by CalibMode.
type ChannelProperties struct {
	OffsetGainNumerator   int64
	OffsetGainDenominator int64
	Graph                 [2]LinearGraph
}

func checkChannel(ch *ChannelProperties) error {
	switch {
	case ch == nil:
		return errors.InvalidArgumentError("channel_properties")
	case ch.OffsetGainNumerator == 0:
		return errors.InvalidArgumentError("offset_gain_numerator")
	case ch.OffsetGainDenominator == 0:
		return errors.InvalidArgumentError("offset_gain_denominator")
	}
	return nil
}

// RatiometricVoltage converts a raw code to mV relative to the VDD reference:
//
//	(code - gnd) * vdd_reference / dy
func RatiometricVoltage(code int32, adc *AdcProperties, ch *ChannelProperties) (int64, error) {
	if err := checkChannel(ch); err != nil {
		return 0, err
	}
	if adc == nil {
		return 0, errors.InvalidArgumentError("adc_properties")
	}
	if adc.VddReference == 0 {
		return 0, errors.InvalidArgumentError("adc_vdd_reference")
	}
	g := ch.Graph[CalibRatiometric]
	if g.Dy == 0 {
		return 0, errors.InvalidArgumentError("dy")
	}
	return (int64(code) - g.AdcGnd) * adc.VddReference / g.Dy, nil
}

// AbsoluteVoltage converts a raw code to µV using the absolute graph:
//
//	(code - gnd) * dx / dy + dx
func AbsoluteVoltage(code int32, ch *ChannelProperties) (int64, error) {
	if err := checkChannel(ch); err != nil {
		return 0, err
	}
	g := ch.Graph[CalibAbsolute]
	if g.Dy == 0 {
		return 0, errors.InvalidArgumentError("dy")
	}
	if g.Dx == 0 {
		return 0, errors.InvalidArgumentError("dx")
	}
	return (int64(code)-g.AdcGnd)*g.Dx/g.Dy + g.Dx, nil
}

// CheckResult saturates a raw code into [MinADCCode, MaxADCCode].
func CheckResult(code int32) int32 {
	if code < MinADCCode {
		return MinADCCode
	}
	if code > MaxADCCode {
		return MaxADCCode
	}
	return code
}
