// Unified error handling for the PMIC VADC scaling engine
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents the category of error
type ErrorCode string

const (
	// Scaling errors
	ErrInvalidArgument        ErrorCode = "INVALID_ARGUMENT"
	ErrInvalidTable           ErrorCode = "INVALID_TABLE"
	ErrCalibrationUnavailable ErrorCode = "CALIBRATION_UNAVAILABLE"

	// Configuration errors
	ErrConfigSection    ErrorCode = "CONFIG_SECTION"
	ErrConfigOption     ErrorCode = "CONFIG_OPTION"
	ErrConfigValidation ErrorCode = "CONFIG_VALIDATION"
	ErrConfigType       ErrorCode = "CONFIG_TYPE"

	// Channel errors
	ErrChannelUnknown ErrorCode = "CHANNEL_UNKNOWN"
	ErrChannelRead    ErrorCode = "CHANNEL_READ"
)

// HostError is the error type returned by every package in this module
type HostError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Section is the config section or channel name
	Section string

	// Option is the config option or parameter name (if applicable)
	Option string

	// Err wraps the underlying error
	Err error

	// Context provides additional context
	Context map[string]interface{}
}

// Error implements the error interface
func (e *HostError) Error() string {
	ctx := e.Section
	if e.Option != "" {
		ctx = e.Option
	}
	msg := fmt.Sprintf("[%s:%s] %s", e.Code, ctx, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *HostError) Unwrap() error {
	return e.Err
}

// SetSection sets the context section
func (e *HostError) SetSection(section string) *HostError {
	e.Section = section
	return e
}

// SetOption sets the option or parameter name
func (e *HostError) SetOption(option string) *HostError {
	e.Option = option
	return e
}

// SetContext adds additional context
func (e *HostError) SetContext(key string, value interface{}) *HostError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Wrap wraps an existing error with additional context
func Wrap(err error, code ErrorCode, message string) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// New creates a new HostError
func New(code ErrorCode, message string) *HostError {
	return &HostError{
		Code:    code,
		Message: message,
	}
}

// Scaling errors

// InvalidArgumentError reports a missing or zero calibration parameter.
// param names the offending field, e.g. "dy" or "offset_gain_numerator".
func InvalidArgumentError(param string) *HostError {
	return New(ErrInvalidArgument, fmt.Sprintf("%s must be non-zero", param)).
		SetOption(param)
}

// InvalidTableError reports a nil or empty interpolation table
func InvalidTableError() *HostError {
	return New(ErrInvalidTable, "interpolation table is empty")
}

// CalibrationUnavailableError reports that no gain/offset snapshot exists
// for the named calibration mode
func CalibrationUnavailableError(mode string, err error) *HostError {
	return Wrap(err, ErrCalibrationUnavailable, fmt.Sprintf("could not acquire %s gain and offset", mode)).
		SetSection(mode)
}

// Config errors

// ConfigSectionError creates an error for missing config section
func ConfigSectionError(section string) *HostError {
	return New(ErrConfigSection, fmt.Sprintf("section '%s' not found", section)).
		SetSection(section)
}

// ConfigOptionError creates an error for missing or invalid config option
func ConfigOptionError(section, option string) *HostError {
	return New(ErrConfigOption, fmt.Sprintf("option '%s' not found in section '%s'", option, section)).
		SetSection(section).
		SetOption(option)
}

// ConfigValidationError creates an error for config validation failure
func ConfigValidationError(section, option string, reason string) *HostError {
	return New(ErrConfigValidation, fmt.Sprintf("option '%s' in section '%s': %s", option, section, reason)).
		SetSection(section).
		SetOption(option)
}

// ConfigTypeError creates an error for config type conversion failure
func ConfigTypeError(section, option, value string, targetType string, err error) *HostError {
	return Wrap(err, ErrConfigType, fmt.Sprintf("option '%s' in section '%s': failed to parse '%s' as %s", option, section, value, targetType)).
		SetSection(section).
		SetOption(option)
}

// Channel errors

// ChannelUnknownError reports a lookup of a channel that is not configured
func ChannelUnknownError(name string) *HostError {
	return New(ErrChannelUnknown, fmt.Sprintf("channel '%s' is not configured", name)).
		SetSection(name)
}

// ChannelReadError wraps a failure of the raw register reader
func ChannelReadError(name string, err error) *HostError {
	return Wrap(err, ErrChannelRead, fmt.Sprintf("reading channel '%s' failed", name)).
		SetSection(name)
}

// Is checks if error, or any error it wraps, carries the given code
func Is(err error, code ErrorCode) bool {
	var hostErr *HostError
	if stderrors.As(err, &hostErr) {
		return hostErr.Code == code
	}
	return false
}

// AsHostError returns the first HostError in err's chain
func AsHostError(err error) (*HostError, bool) {
	var hostErr *HostError
	if stderrors.As(err, &hostErr) {
		return hostErr, true
	}
	return nil, false
}

// IsConfig checks if error is a config error
func IsConfig(err error) bool {
	return Is(err, ErrConfigSection) ||
		Is(err, ErrConfigOption) ||
		Is(err, ErrConfigValidation) ||
		Is(err, ErrConfigType)
}

// IsScaling checks if error is raised by the scaling core
func IsScaling(err error) bool {
	return Is(err, ErrInvalidArgument) ||
		Is(err, ErrInvalidTable) ||
		Is(err, ErrCalibrationUnavailable)
}
