// Channel scaling functions: raw VADC code to physical value
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

import (
	"fmt"
	"strconv"
	"strings"

	"pmic-vadc/pkg/errors"
)

// Result is the output of one conversion. Measurement is the calibrated
// value in the channel's reference domain; Physical is the user-facing value
// in the unit reported by ScaleFunction.Unit.
type Result struct {
	Measurement int64
	Physical    int64
}

// ScaleFunction selects the conversion policy for a channel. The numeric
// values follow the devicetree "qcom,scale-function" property.
type ScaleFunction int

const (
	ScaleDefault ScaleFunction = iota
	ScaleBattTherm
	ScaleThermPU2
	ScalePMICTherm
	ScaleXOTherm
	ScaleThermPU1
	ScaleQRDBattTherm
	ScaleQRDSKUAABattTherm
	ScaleQRDSKUGBattTherm
	ScaleBattID
)

var scaleNames = [...]string{
	ScaleDefault:           "default",
	ScaleBattTherm:         "batt_therm",
	ScaleThermPU2:          "therm_100k_pullup",
	ScalePMICTherm:         "pmic_therm",
	ScaleXOTherm:           "xo_therm",
	ScaleThermPU1:          "therm_150k_pullup",
	ScaleQRDBattTherm:      "qrd_batt_therm",
	ScaleQRDSKUAABattTherm: "qrd_skuaa_batt_therm",
	ScaleQRDSKUGBattTherm:  "qrd_skug_batt_therm",
	ScaleBattID:            "batt_id",
}

func (f ScaleFunction) String() string {
	if f >= 0 && int(f) < len(scaleNames) {
		return scaleNames[f]
	}
	return fmt.Sprintf("scale(%d)", int(f))
}

// ParseScaleFunction accepts either a policy name or its devicetree index.
func ParseScaleFunction(s string) (ScaleFunction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range scaleNames {
		if s == name {
			return ScaleFunction(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(scaleNames) {
		return ScaleFunction(n), nil
	}
	return 0, fmt.Errorf("unknown scale function %q", s)
}

// Unit reports the unit of Result.Physical for this policy.
func (f ScaleFunction) Unit() Unit {
	switch f {
	case ScaleBattTherm, ScaleQRDBattTherm, ScaleQRDSKUAABattTherm, ScaleQRDSKUGBattTherm:
		return UnitDeciDegC
	case ScaleThermPU1, ScaleThermPU2, ScaleXOTherm:
		return UnitDegC
	case ScalePMICTherm:
		return UnitMilliDegC
	case ScaleBattID:
		return UnitMillivolt
	default:
		return UnitMicrovolt
	}
}

// Mode reports which calibration graph the policy consumes.
func (f ScaleFunction) Mode() CalibMode {
	switch f {
	case ScaleDefault, ScalePMICTherm:
		return CalibAbsolute
	default:
		return CalibRatiometric
	}
}

// Scale converts code with the policy selected by f.
func Scale(f ScaleFunction, code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	switch f {
	case ScaleDefault:
		return ScaleDefaultChannel(code, adc, ch)
	case ScaleBattTherm:
		return ScaleBatteryTherm(code, adc, ch)
	case ScaleThermPU2:
		return ScaleThermPullup100K(code, adc, ch)
	case ScalePMICTherm:
		return ScalePMICDieTherm(code, adc, ch)
	case ScaleXOTherm:
		return ScaleXOThermistor(code, adc, ch)
	case ScaleThermPU1:
		return ScaleThermPullup150K(code, adc, ch)
	case ScaleQRDBattTherm:
		return ScaleQRDBatteryTherm(code, adc, ch)
	case ScaleQRDSKUAABattTherm:
		return ScaleQRDSKUAABatteryTherm(code, adc, ch)
	case ScaleQRDSKUGBattTherm:
		return ScaleQRDSKUGBatteryTherm(code, adc, ch)
	case ScaleBattID:
		return ScaleBatteryID(code, adc, ch)
	}
	return Result{}, errors.New(errors.ErrInvalidArgument, fmt.Sprintf("unsupported scale function %d", int(f))).
		SetOption("scale_function")
}

// ScaleDefaultChannel applies the absolute calibration and the channel's
// pre-scaler ratio. A unipolar converter reports negative voltages as 0.
// Physical is in µV.
func ScaleDefaultChannel(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	if adc == nil {
		return Result{}, errors.InvalidArgumentError("adc_properties")
	}
	v, err := AbsoluteVoltage(code, ch)
	if err != nil {
		return Result{}, err
	}
	if v < 0 && !adc.Bipolar {
		v = 0
	}
	m := v * ch.OffsetGainDenominator / ch.OffsetGainNumerator
	return Result{Measurement: m, Physical: m}, nil
}

// ScalePMICDieTherm converts the die temperature sensor output, a 2 mV/K
// voltage, to millidegC.
func ScalePMICDieTherm(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	if adc == nil {
		return Result{}, errors.InvalidArgumentError("adc_properties")
	}
	v, err := AbsoluteVoltage(code, ch)
	if err != nil {
		return Result{}, err
	}
	var m int64
	if v > 0 {
		m = v * ch.OffsetGainDenominator / (ch.OffsetGainNumerator * 2)
	}
	m -= KelvinMilliDegC
	return Result{Measurement: m, Physical: m}, nil
}

// ScaleXOThermistor converts the crystal oscillator thermistor to degC.
func ScaleXOThermistor(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	return thermistor(Therm100K, code, adc, ch)
}

// ScaleThermPullup100K converts a 100k NTC behind a 100k pull-up to degC.
func ScaleThermPullup100K(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	return thermistor(Therm100K, code, adc, ch)
}

// ScaleThermPullup150K converts a 100k NTC behind a 150k pull-up to degC.
func ScaleThermPullup150K(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	return thermistor(Therm150K, code, adc, ch)
}

// ScaleBatteryTherm converts the battery thermistor to 0.1 degC.
func ScaleBatteryTherm(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	return batteryTherm(BTMThreshold, code, adc, ch)
}

// ScaleQRDBatteryTherm converts the QRD board battery thermistor to 0.1 degC.
func ScaleQRDBatteryTherm(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	return batteryTherm(QRDBTMThreshold, code, adc, ch)
}

// ScaleQRDSKUAABatteryTherm converts the SKUAA battery thermistor to 0.1 degC.
func ScaleQRDSKUAABatteryTherm(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	return batteryTherm(QRDSKUAABTMThreshold, code, adc, ch)
}

// ScaleQRDSKUGBatteryTherm converts the SKUG battery thermistor to 0.1 degC.
func ScaleQRDSKUGBatteryTherm(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	return batteryTherm(QRDSKUGBTMThreshold, code, adc, ch)
}

// ScaleBatteryID reports the battery ID divider voltage in mV.
func ScaleBatteryID(code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	v, err := RatiometricVoltage(code, adc, ch)
	if err != nil {
		return Result{}, err
	}
	return Result{Physical: v}, nil
}

// thermistor tables are indexed by voltage, so the lookup runs along x.
func thermistor(t Table, code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	v, err := RatiometricVoltage(code, adc, ch)
	if err != nil {
		return Result{}, err
	}
	temp, err := LookupYForX(t, v)
	if err != nil {
		return Result{}, err
	}
	return Result{Physical: temp}, nil
}

// battery tables are indexed by temperature, so the voltage is searched on y.
func batteryTherm(t Table, code int32, adc *AdcProperties, ch *ChannelProperties) (Result, error) {
	v, err := RatiometricVoltage(code, adc, ch)
	if err != nil {
		return Result{}, err
	}
	temp, err := LookupXForY(t, v)
	if err != nil {
		return Result{}, err
	}
	return Result{Physical: temp}, nil
}
