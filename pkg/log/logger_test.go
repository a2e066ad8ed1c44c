// Structured logging tests
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newTestLogger(format OutputFormat) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New("vadc")
	logger.SetWriter(&buf)
	logger.SetLevel(DEBUG)
	logger.SetFormat(format)
	return logger, &buf
}

func TestLoggerBasic(t *testing.T) {
	logger, buf := newTestLogger(FormatText)

	logger.Info("channel %s ready", "batt_therm")

	output := buf.String()
	if !strings.Contains(output, "[INFO ]") {
		t.Errorf("expected INFO level, got: %s", output)
	}
	if !strings.Contains(output, "vadc:") {
		t.Errorf("expected prefix 'vadc:', got: %s", output)
	}
	if !strings.Contains(output, "channel batt_therm ready") {
		t.Errorf("expected formatted message, got: %s", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("expected no color codes for a buffer writer, got: %q", output)
	}
}

func TestLoggerLevels(t *testing.T) {
	logger, buf := newTestLogger(FormatText)
	logger.SetLevel(WARN)

	logger.Debug("debug message")
	logger.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("expected DEBUG and INFO to be filtered, got: %s", buf.String())
	}

	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("expected WARN to pass, got: %s", buf.String())
	}

	buf.Reset()
	logger.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Errorf("expected ERROR to pass, got: %s", buf.String())
	}
}

func TestLoggerJSONFields(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON)

	logger.WithFields(Fields{"channel": "pmic_therm", "code": 0x8000}).Debug("converted")

	var entry JSONLogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v, output: %s", err, buf.String())
	}
	if entry.Level != "DEBUG" || entry.Logger != "vadc" || entry.Message != "converted" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Fields["channel"] != "pmic_therm" {
		t.Errorf("expected channel=pmic_therm, got: %v", entry.Fields["channel"])
	}
	// JSON numbers decode as float64
	if entry.Fields["code"] != float64(0x8000) {
		t.Errorf("expected code=32768, got: %v", entry.Fields["code"])
	}
}

func TestLoggerTextFieldsSorted(t *testing.T) {
	logger, buf := newTestLogger(FormatText)

	logger.WithField("low", 27904).WithField("high", 32500).Info("thresholds")

	if !strings.Contains(buf.String(), "{high=32500, low=27904}") {
		t.Errorf("expected sorted fields, got: %s", buf.String())
	}
}

func TestLoggerWithError(t *testing.T) {
	logger, buf := newTestLogger(FormatJSON)

	logger.WithError(errors.New("dy must be non-zero")).Error("conversion failed")

	var entry JSONLogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if entry.Fields["error"] != "dy must be non-zero" {
		t.Errorf("expected error field, got: %v", entry.Fields)
	}
}

func TestLoggerWithPrefixSharesWriter(t *testing.T) {
	logger, buf := newTestLogger(FormatText)

	child := logger.WithPrefix("channel")
	child.Info("child message")

	if !strings.Contains(buf.String(), "channel:") {
		t.Errorf("expected prefix 'channel:', got: %s", buf.String())
	}
}

func TestLoggerCaller(t *testing.T) {
	logger, buf := newTestLogger(FormatText)
	logger.SetCaller(true)

	logger.Info("caller test")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("expected caller info 'logger_test.go:', got: %s", buf.String())
	}

	buf.Reset()
	logger.WithField("k", "v").Info("entry caller test")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("expected entry caller info 'logger_test.go:', got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{" info ", INFO},
		{"WARNING", WARN},
		{"error", ERROR},
		{"invalid", INFO},
		{"", INFO},
	}

	for _, tt := range tests {
		if result := ParseLevel(tt.input); result != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if DEBUG.String() != "DEBUG" || ERROR.String() != "ERROR" {
		t.Errorf("unexpected level names: %s %s", DEBUG, ERROR)
	}
	if LogLevel(99).String() != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", LogLevel(99))
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Setenv("VADC_LOG_LEVEL", "error")
	t.Setenv("VADC_LOG_FORMAT", "json")
	t.Setenv("VADC_LOG_CALLER", "1")

	logger, _ := newTestLogger(FormatText)
	ConfigureFromEnv(logger)

	if logger.GetLevel() != ERROR {
		t.Errorf("expected level ERROR, got %s", logger.GetLevel())
	}
	if logger.outFormat != FormatJSON {
		t.Errorf("expected JSON format")
	}
	if !logger.caller {
		t.Errorf("expected caller info enabled")
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("threshold")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	if logger.prefix != "threshold" {
		t.Errorf("expected prefix 'threshold', got %q", logger.prefix)
	}
}

func BenchmarkLoggerFiltered(b *testing.B) {
	var buf bytes.Buffer
	logger := New("bench")
	logger.SetWriter(&buf)
	logger.SetLevel(ERROR)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("conversion %d", i)
	}
}
