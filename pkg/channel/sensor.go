// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package channel

import (
	"sync"

	"tinygo.org/x/drivers"

	"pmic-vadc/pkg/errors"
	"pmic-vadc/pkg/vadc"
)

// RawReader reads one raw conversion result for a channel number. The
// register transport behind it is not part of this package.
type RawReader interface {
	ReadRaw(number uint32) (int32, error)
}

// Sensor exposes one bank channel through the TinyGo drivers.Sensor
// interface. Update reads and converts; the accessors return the last
// reading.
type Sensor struct {
	bank   *Bank
	reader RawReader
	desc   Descriptor

	mu    sync.Mutex
	last  Reading
	valid bool
}

var _ drivers.Sensor = (*Sensor)(nil)

// NewSensor binds the named channel to r.
func (b *Bank) NewSensor(name string, r RawReader) (*Sensor, error) {
	d, ok := b.channels[name]
	if !ok {
		return nil, errors.ChannelUnknownError(name)
	}
	if r == nil {
		return nil, errors.New(errors.ErrInvalidArgument, "raw reader is nil").SetSection(name)
	}
	return &Sensor{bank: b, reader: r, desc: d}, nil
}

// Update performs one read if which asks for a quantity this channel
// measures. Other measurements are ignored.
func (s *Sensor) Update(which drivers.Measurement) error {
	want := drivers.Voltage
	if s.desc.Scale.Unit().IsTemperature() {
		want = drivers.Temperature
	}
	if which&want == 0 {
		return nil
	}

	code, err := s.reader.ReadRaw(s.desc.Number)
	if err != nil {
		return s.bank.fail(errors.ChannelReadError(s.desc.Name, err))
	}
	r, err := s.bank.Convert(s.desc.Name, code)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.last, s.valid = r, true
	s.mu.Unlock()
	return nil
}

// Reading returns the last successful reading.
func (s *Sensor) Reading() (Reading, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.valid
}

// Temperature returns the last temperature in milli-degrees Celsius, or 0
// for voltage channels.
func (s *Sensor) Temperature() int32 {
	r, ok := s.Reading()
	if !ok {
		return 0
	}
	v := r.Result.Physical
	switch r.Unit {
	case vadc.UnitMilliDegC:
		return int32(v)
	case vadc.UnitDeciDegC:
		return int32(v * 100)
	case vadc.UnitDegC:
		return int32(v * 1000)
	}
	return 0
}

// Voltage returns the last voltage in microvolts, or 0 for temperature
// channels.
func (s *Sensor) Voltage() int32 {
	r, ok := s.Reading()
	if !ok {
		return 0
	}
	v := r.Result.Physical
	switch r.Unit {
	case vadc.UnitMicrovolt:
		return int32(v)
	case vadc.UnitMillivolt:
		return int32(v * 1000)
	}
	return 0
}
