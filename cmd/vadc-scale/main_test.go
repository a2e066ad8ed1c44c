// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package main

import (
	"fmt"
	"testing"

	"pmic-vadc/pkg/config"
	"pmic-vadc/pkg/errors"
)

func TestExitCode(t *testing.T) {
	_, parseErr := config.LoadString("[vadc]\nno separator\n")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"parse error", parseErr, 2},
		{"missing option", config.ErrMissingOption("channel batt_id", "reg"), 2},
		{"wrapped config error", fmt.Errorf("loading: %w", config.ErrMissingSection("vadc")), 2},
		{"calibration unavailable", errors.CalibrationUnavailableError("absolute", nil), 3},
		{"invalid argument", errors.InvalidArgumentError("dy"), 3},
		{"unknown channel", errors.ChannelUnknownError("usb_in"), 1},
		{"plain error", fmt.Errorf("usage: therm <code>"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.expected {
				t.Errorf("expected %d, got %d for %v", tt.expected, got, tt.err)
			}
		})
	}
}
