// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package channel binds configured VADC channels to their scaling policy,
// calibration source and pre-scaler, and converts raw codes by channel name.
package channel

import (
	"fmt"

	"pmic-vadc/pkg/errors"
	"pmic-vadc/pkg/vadc"
)

// Prescale is the channel's input divider as numerator/denominator. A 1/3
// divider means the pin sees a third of the measured voltage.
type Prescale struct {
	Num int64
	Den int64
}

func (p Prescale) String() string {
	return fmt.Sprintf("%d/%d", p.Num, p.Den)
}

// Descriptor is the static description of one channel.
type Descriptor struct {
	Name         string
	Label        string
	Number       uint32
	Decimation   uint32
	Prescale     Prescale
	Scale        vadc.ScaleFunction
	HWSettleTime uint32
	FastAvgSetup uint32
	Calib        vadc.CalibMode
}

// Validate checks the fields conversion depends on.
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return errors.InvalidArgumentError("name")
	}
	if d.Prescale.Num == 0 {
		return errors.InvalidArgumentError("prescale numerator").SetSection(d.Name)
	}
	if d.Prescale.Den == 0 {
		return errors.InvalidArgumentError("prescale denominator").SetSection(d.Name)
	}
	if d.Calib != vadc.CalibAbsolute && d.Calib != vadc.CalibRatiometric {
		return errors.New(errors.ErrInvalidArgument, fmt.Sprintf("unknown calibration mode %d", int(d.Calib))).
			SetSection(d.Name)
	}
	return nil
}

// DisplayName returns the label if set, the name otherwise.
func (d Descriptor) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// Reading is one converted sample.
type Reading struct {
	Channel string
	Code    int32
	Result  vadc.Result
	Unit    vadc.Unit
}

func (r Reading) String() string {
	return fmt.Sprintf("%s: code=%#x %s", r.Channel, r.Code, r.Unit.Format(r.Result.Physical))
}

// Stats tracks the physical values seen on a channel.
type Stats struct {
	Count uint64
	Min   int64
	Max   int64
	Last  int64
}

func (s *Stats) observe(v int64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Last = v
	s.Count++
}
