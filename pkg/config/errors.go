// Package config parses INI-style VADC configuration files with access
// tracking and typed, validated option getters.
package config

import (
	"fmt"

	"pmic-vadc/pkg/errors"
)

// ConfigError is the error type returned by this package. Its Code is one
// of the CONFIG_* categories.
type ConfigError = errors.HostError

// NewConfigError creates a CONFIG_VALIDATION error not tied to one option.
func NewConfigError(section, option, message string) *ConfigError {
	return errors.New(errors.ErrConfigValidation, message).
		SetSection(section).
		SetOption(option)
}

// ErrMissingOption returns an error for a required but missing option.
func ErrMissingOption(section, option string) *ConfigError {
	return errors.ConfigOptionError(section, option)
}

// ErrMissingSection returns an error for a missing section.
func ErrMissingSection(section string) *ConfigError {
	return errors.ConfigSectionError(section)
}

// ErrInvalidValue returns an error for a value that does not parse as
// expected.
func ErrInvalidValue(section, option, value, expected string, cause error) *ConfigError {
	return errors.ConfigTypeError(section, option, value, expected, cause)
}

// ErrOutOfRange returns an error for a value outside the allowed range.
func ErrOutOfRange(section, option string, value any, constraint string) *ConfigError {
	return errors.ConfigValidationError(section, option, fmt.Sprintf("value %v %s", value, constraint))
}

// ErrInvalidChoice returns an error for an invalid choice value.
func ErrInvalidChoice(section, option, value string, choices []string) *ConfigError {
	return errors.ConfigValidationError(section, option,
		fmt.Sprintf("'%s' is not a valid choice (valid: %v)", value, choices))
}
