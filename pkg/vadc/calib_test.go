// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

import (
	"testing"

	"pmic-vadc/pkg/errors"
)

var (
	testRatiometric = LinearGraph{Dy: 0x2800, Dx: 1800, AdcVref: 1800, AdcGnd: 0x6000}
	testAbsolute    = LinearGraph{Dy: 6400, Dx: 625000, AdcVref: 1250000, AdcGnd: 30976}
)

func newTestChannel(num, den int64) *ChannelProperties {
	ch := &ChannelProperties{OffsetGainNumerator: num, OffsetGainDenominator: den}
	ch.Graph[CalibAbsolute] = testAbsolute
	ch.Graph[CalibRatiometric] = testRatiometric
	return ch
}

func newTestADC(bipolar bool) *AdcProperties {
	return &AdcProperties{VddReference: 1800, BitResolution: 15, Bipolar: bipolar}
}

func TestRatiometricVoltage(t *testing.T) {
	ch := newTestChannel(1, 1)
	adc := newTestADC(false)

	tests := []struct {
		code     int32
		expected int64
	}{
		{0x6000, 0},
		{0x8000, 1440},
		{0x6000 + 0x2800, 1800},
		// (-1000 * 1800) / 10240 truncates toward zero
		{0x6000 - 1000, -175},
	}

	for _, tt := range tests {
		got, err := RatiometricVoltage(tt.code, adc, ch)
		if err != nil {
			t.Fatalf("code %#x: unexpected error: %v", tt.code, err)
		}
		if got != tt.expected {
			t.Errorf("code %#x: expected %d mV, got %d", tt.code, tt.expected, got)
		}
	}
}

func TestAbsoluteVoltage(t *testing.T) {
	ch := newTestChannel(1, 1)

	tests := []struct {
		code     int32
		expected int64
	}{
		{30976, 625000},
		{30976 + 6400, 1250000},
		// -300 * 625000 / 6400 = -29296.875
		{30976 - 300, 625000 - 29296},
		{0, -2400000},
	}

	for _, tt := range tests {
		got, err := AbsoluteVoltage(tt.code, ch)
		if err != nil {
			t.Fatalf("code %d: unexpected error: %v", tt.code, err)
		}
		if got != tt.expected {
			t.Errorf("code %d: expected %d uV, got %d", tt.code, tt.expected, got)
		}
	}
}

func TestVoltageRejectsZeroDivisors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(adc *AdcProperties, ch *ChannelProperties)
		abs    bool
		option string
	}{
		{"ratiometric zero dy", func(_ *AdcProperties, ch *ChannelProperties) { ch.Graph[CalibRatiometric].Dy = 0 }, false, "dy"},
		{"ratiometric zero vdd", func(adc *AdcProperties, _ *ChannelProperties) { adc.VddReference = 0 }, false, "adc_vdd_reference"},
		{"ratiometric zero numerator", func(_ *AdcProperties, ch *ChannelProperties) { ch.OffsetGainNumerator = 0 }, false, "offset_gain_numerator"},
		{"absolute zero dy", func(_ *AdcProperties, ch *ChannelProperties) { ch.Graph[CalibAbsolute].Dy = 0 }, true, "dy"},
		{"absolute zero dx", func(_ *AdcProperties, ch *ChannelProperties) { ch.Graph[CalibAbsolute].Dx = 0 }, true, "dx"},
		{"absolute zero denominator", func(_ *AdcProperties, ch *ChannelProperties) { ch.OffsetGainDenominator = 0 }, true, "offset_gain_denominator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adc := newTestADC(false)
			ch := newTestChannel(1, 1)
			tt.mutate(adc, ch)

			var err error
			if tt.abs {
				_, err = AbsoluteVoltage(0x8000, ch)
			} else {
				_, err = RatiometricVoltage(0x8000, adc, ch)
			}
			if !errors.Is(err, errors.ErrInvalidArgument) {
				t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
			}
			if herr, ok := errors.AsHostError(err); ok && herr.Option != tt.option {
				t.Errorf("expected option %q, got %q", tt.option, herr.Option)
			}
		})
	}
}

func TestVoltageRejectsNilProperties(t *testing.T) {
	if _, err := RatiometricVoltage(0x8000, nil, newTestChannel(1, 1)); !errors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for nil adc, got %v", err)
	}
	if _, err := RatiometricVoltage(0x8000, newTestADC(false), nil); !errors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for nil channel, got %v", err)
	}
	if _, err := AbsoluteVoltage(0x8000, nil); !errors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT for nil channel, got %v", err)
	}
}

func TestCheckResult(t *testing.T) {
	tests := []struct {
		code     int32
		expected int32
	}{
		{-1, MinADCCode},
		{0, MinADCCode},
		{MinADCCode - 1, MinADCCode},
		{MinADCCode, MinADCCode},
		{0x8000, 0x8000},
		{MaxADCCode, MaxADCCode},
		{MaxADCCode + 1, MaxADCCode},
		{0x7fffffff, MaxADCCode},
	}

	for _, tt := range tests {
		got := CheckResult(tt.code)
		if got != tt.expected {
			t.Errorf("CheckResult(%#x): expected %#x, got %#x", tt.code, tt.expected, got)
		}
		if again := CheckResult(got); again != got {
			t.Errorf("CheckResult not idempotent for %#x: %#x then %#x", tt.code, got, again)
		}
	}
}

func TestCalibModeString(t *testing.T) {
	if CalibAbsolute.String() != "absolute" {
		t.Errorf("expected 'absolute', got %q", CalibAbsolute.String())
	}
	if CalibRatiometric.String() != "ratiometric" {
		t.Errorf("expected 'ratiometric', got %q", CalibRatiometric.String())
	}
	if CalibMode(7).String() != "unknown" {
		t.Errorf("expected 'unknown', got %q", CalibMode(7).String())
	}
}
