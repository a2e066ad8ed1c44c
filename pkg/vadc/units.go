// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Unit is the unit of a Result.Physical value.
type Unit int

const (
	UnitMicrovolt Unit = iota
	UnitMillivolt
	UnitMilliDegC
	UnitDeciDegC
	UnitDegC
)

func (u Unit) String() string {
	switch u {
	case UnitMicrovolt:
		return "uV"
	case UnitMillivolt:
		return "mV"
	case UnitMilliDegC:
		return "mdegC"
	case UnitDeciDegC:
		return "ddegC"
	case UnitDegC:
		return "degC"
	default:
		return "unknown"
	}
}

// IsTemperature reports whether u measures temperature.
func (u Unit) IsTemperature() bool {
	return u == UnitMilliDegC || u == UnitDeciDegC || u == UnitDegC
}

// Temperature converts a value expressed in u to a physic.Temperature.
func (u Unit) Temperature(v int64) (physic.Temperature, error) {
	var step physic.Temperature
	switch u {
	case UnitMilliDegC:
		step = physic.MilliKelvin
	case UnitDeciDegC:
		step = 100 * physic.MilliKelvin
	case UnitDegC:
		step = physic.Kelvin
	default:
		return 0, fmt.Errorf("unit %s is not a temperature", u)
	}
	return physic.ZeroCelsius + physic.Temperature(v)*step, nil
}

// Potential converts a value expressed in u to a physic.ElectricPotential.
func (u Unit) Potential(v int64) (physic.ElectricPotential, error) {
	switch u {
	case UnitMicrovolt:
		return physic.ElectricPotential(v) * physic.MicroVolt, nil
	case UnitMillivolt:
		return physic.ElectricPotential(v) * physic.MilliVolt, nil
	}
	return 0, fmt.Errorf("unit %s is not a voltage", u)
}

// Format renders v with periph's unit formatting.
func (u Unit) Format(v int64) string {
	if u.IsTemperature() {
		t, _ := u.Temperature(v)
		return t.String()
	}
	p, err := u.Potential(v)
	if err != nil {
		return fmt.Sprintf("%d", v)
	}
	return p.String()
}
