// Threshold scaling: physical limits to raw comparator codes for the
// hardware threshold monitor
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

import (
	"math"

	"pmic-vadc/pkg/errors"
)

// BTMParam is a threshold request. Temperature-based scalers read LowTemp and
// HighTemp, voltage-based scalers read LowThr and HighThr.
type BTMParam struct {
	LowTemp  int64
	HighTemp int64
	LowThr   int64
	HighThr  int64
}

// Thresholds holds raw comparator codes.
type Thresholds struct {
	Low  uint32
	High uint32
}

// toCode saturates v into the uint32 register range.
func toCode(v int64) uint32 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

// satAdd returns a+b clamped to the int64 range.
func satAdd(a, b int64) int64 {
	sum := a + b
	if a > 0 && b > 0 && sum < 0 {
		return math.MaxInt64
	}
	if a < 0 && b < 0 && sum >= 0 {
		return math.MinInt64
	}
	return sum
}

// mulDiv returns a*b/c, truncated toward zero. a is clamped first so that
// the product stays inside int64; c must be non-zero.
func mulDiv(a, b, c int64) int64 {
	if b != 0 {
		limit := math.MaxInt64 / b
		if limit < 0 {
			limit = -limit
		}
		if a > limit {
			a = limit
		} else if a < -limit {
			a = -limit
		}
	}
	return a * b / c
}

// ratiometricCode maps mV to a raw code: mv * dy / adc_vref + adc_gnd.
func ratiometricCode(mv int64, g LinearGraph) (int64, error) {
	if g.AdcVref == 0 {
		return 0, errors.InvalidArgumentError("adc_vref")
	}
	return satAdd(mulDiv(mv, g.Dy, g.AdcVref), g.AdcGnd), nil
}

// absoluteCode maps µV to a raw code against the 625 mV reference step.
func absoluteCode(uv int64, g LinearGraph) int64 {
	return satAdd(mulDiv(satAdd(uv, -Ref625uV), g.Dy, Ref625uV), g.AdcGnd)
}

func acquire(src CalibrationSource, mode CalibMode) (LinearGraph, error) {
	if src == nil {
		return LinearGraph{}, errors.InvalidArgumentError("calibration_source")
	}
	return src.GainAndOffset(mode)
}

// ScaleUSBThreshold converts LowThr/HighThr in mV to ratiometric codes.
func ScaleUSBThreshold(src CalibrationSource, p BTMParam) (Thresholds, error) {
	g, err := acquire(src, CalibRatiometric)
	if err != nil {
		return Thresholds{}, err
	}
	low, err := ratiometricCode(p.LowThr, g)
	if err != nil {
		return Thresholds{}, err
	}
	high, err := ratiometricCode(p.HighThr, g)
	if err != nil {
		return Thresholds{}, err
	}
	return Thresholds{Low: toCode(low), High: toCode(high)}, nil
}

// ScaleVBattThreshold converts battery voltage limits in µV to absolute
// codes. The battery is measured through a 1/3 divider.
func ScaleVBattThreshold(src CalibrationSource, p BTMParam) (Thresholds, error) {
	g, err := acquire(src, CalibAbsolute)
	if err != nil {
		return Thresholds{}, err
	}
	return Thresholds{
		Low:  toCode(absoluteCode(p.LowThr/3, g)),
		High: toCode(absoluteCode(p.HighThr/3, g)),
	}, nil
}

// ScaleBTMThreshold converts battery temperature limits in 0.1 degC to
// ratiometric codes. The thermistor voltage falls as temperature rises, so
// the low temperature limit becomes the high voltage threshold and the high
// temperature limit the low one.
func ScaleBTMThreshold(src CalibrationSource, p BTMParam) (Thresholds, error) {
	g, err := acquire(src, CalibRatiometric)
	if err != nil {
		return Thresholds{}, err
	}
	lowTempCode, err := tableThreshold(BTMThreshold, LookupYForX, p.LowTemp, g)
	if err != nil {
		return Thresholds{}, err
	}
	highTempCode, err := tableThreshold(BTMThreshold, LookupYForX, p.HighTemp, g)
	if err != nil {
		return Thresholds{}, err
	}
	return Thresholds{Low: toCode(highTempCode), High: toCode(lowTempCode)}, nil
}

// ScaleMilliDegCPMICThreshold converts die temperature limits in millidegC
// to absolute codes for the 2 mV/K sensor.
func ScaleMilliDegCPMICThreshold(src CalibrationSource, p BTMParam) (Thresholds, error) {
	g, err := acquire(src, CalibAbsolute)
	if err != nil {
		return Thresholds{}, err
	}
	toUV := func(mdegc int64) int64 { return mulDiv(satAdd(mdegc, KelvinMilliDegC), 2, 1) }
	return Thresholds{
		Low:  toCode(absoluteCode(toUV(p.LowTemp), g)),
		High: toCode(absoluteCode(toUV(p.HighTemp), g)),
	}, nil
}

// ScaleTherm100KThreshold converts degC limits for a 100k pull-up
// thermistor to ratiometric codes. The codes are returned in the order of
// the requested temperatures.
func ScaleTherm100KThreshold(src CalibrationSource, p BTMParam) (Thresholds, error) {
	g, err := acquire(src, CalibRatiometric)
	if err != nil {
		return Thresholds{}, err
	}
	low, err := tableThreshold(Therm100K, LookupXForY, p.LowTemp, g)
	if err != nil {
		return Thresholds{}, err
	}
	high, err := tableThreshold(Therm100K, LookupXForY, p.HighTemp, g)
	if err != nil {
		return Thresholds{}, err
	}
	return Thresholds{Low: toCode(low), High: toCode(high)}, nil
}

// ScaleTherm100KReading converts a raw threshold monitor code for a 100k
// pull-up thermistor back to degC.
func ScaleTherm100KReading(src CalibrationSource, code uint32) (int64, error) {
	g, err := acquire(src, CalibRatiometric)
	if err != nil {
		return 0, err
	}
	if g.Dy == 0 {
		return 0, errors.InvalidArgumentError("dy")
	}
	mv := mulDiv(satAdd(int64(code), -g.AdcGnd), g.AdcVref, g.Dy)
	return LookupYForX(Therm100K, mv)
}

func tableThreshold(t Table, lookup func(Table, int64) (int64, error), temp int64, g LinearGraph) (int64, error) {
	mv, err := lookup(t, temp)
	if err != nil {
		return 0, err
	}
	return ratiometricCode(mv, g)
}
