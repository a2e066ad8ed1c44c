// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package vadc

import "pmic-vadc/pkg/errors"

// CalibrationSource supplies the gain/offset snapshot for one calibration
// mode. Hardware-backed implementations may block while the reference
// channels are measured.
type CalibrationSource interface {
	GainAndOffset(mode CalibMode) (LinearGraph, error)
}

// StaticSource is a CalibrationSource over a fixed snapshot, typically read
// from configuration. It is safe for concurrent use once built.
type StaticSource struct {
	graphs [2]LinearGraph
	valid  [2]bool
}

// NewStaticSource returns an empty source. Modes without a graph fail with
// CALIBRATION_UNAVAILABLE.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// With returns a copy of s carrying g for mode.
func (s StaticSource) With(mode CalibMode, g LinearGraph) *StaticSource {
	s.graphs[mode] = g
	s.valid[mode] = true
	return &s
}

// GainAndOffset implements CalibrationSource.
func (s *StaticSource) GainAndOffset(mode CalibMode) (LinearGraph, error) {
	if mode != CalibAbsolute && mode != CalibRatiometric || !s.valid[mode] {
		return LinearGraph{}, errors.CalibrationUnavailableError(mode.String(), nil)
	}
	if s.graphs[mode].Dy == 0 {
		return LinearGraph{}, errors.CalibrationUnavailableError(mode.String(), errors.InvalidArgumentError("dy"))
	}
	return s.graphs[mode], nil
}

// ChannelPropertiesFor acquires the graph for mode from src and returns
// channel properties for the given pre-scaler ratio. Acquisition failures are
// returned unchanged.
func ChannelPropertiesFor(src CalibrationSource, mode CalibMode, num, den int64) (*ChannelProperties, error) {
	g, err := src.GainAndOffset(mode)
	if err != nil {
		return nil, err
	}
	ch := &ChannelProperties{OffsetGainNumerator: num, OffsetGainDenominator: den}
	ch.Graph[mode] = g
	return ch, nil
}
