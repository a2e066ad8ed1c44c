// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Section is one [name] block. Option names are case-insensitive and every
// read is recorded.
type Section struct {
	name    string
	options map[string]string

	mu       sync.RWMutex
	accessed map[string]struct{}
}

func newSection(name string, options map[string]string) *Section {
	opts := make(map[string]string, len(options))
	for k, v := range options {
		opts[strings.ToLower(k)] = v
	}
	return &Section{
		name:     name,
		options:  opts,
		accessed: make(map[string]struct{}),
	}
}

// GetName returns the section name.
func (s *Section) GetName() string {
	return s.name
}

// Suffix returns the part of the section name after prefix, trimmed. For
// "channel batt_therm" and prefix "channel" it returns "batt_therm".
func (s *Section) Suffix(prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(s.name, prefix))
}

func (s *Section) markAccessed(option string) {
	s.mu.Lock()
	s.accessed[strings.ToLower(option)] = struct{}{}
	s.mu.Unlock()
}

// lookup returns the raw value and marks the option read.
func (s *Section) lookup(option string) (string, bool) {
	v, ok := s.options[strings.ToLower(option)]
	if ok {
		s.markAccessed(option)
	}
	return v, ok
}

// GetUnusedOptions returns the sorted options that were never read.
func (s *Section) GetUnusedOptions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []string
	for opt := range s.options {
		if _, ok := s.accessed[opt]; !ok {
			result = append(result, opt)
		}
	}
	sort.Strings(result)
	return result
}

// HasOption checks if an option exists in this section.
func (s *Section) HasOption(option string) bool {
	_, ok := s.options[strings.ToLower(option)]
	return ok
}

// Get returns a string option, the fallback if given, or a CONFIG_OPTION
// error.
func (s *Section) Get(option string, fallback ...string) (string, error) {
	if v, ok := s.lookup(option); ok {
		return v, nil
	}
	if len(fallback) > 0 {
		s.markAccessed(option)
		return fallback[0], nil
	}
	return "", ErrMissingOption(s.name, option)
}

// GetInt64 returns an integer option. Values accept Go literal prefixes, so
// register codes may be written as 0x6000.
func (s *Section) GetInt64(option string, fallback ...int64) (int64, error) {
	if v, ok := s.lookup(option); ok {
		i, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return 0, ErrInvalidValue(s.name, option, v, "integer", err)
		}
		return i, nil
	}
	if len(fallback) > 0 {
		s.markAccessed(option)
		return fallback[0], nil
	}
	return 0, ErrMissingOption(s.name, option)
}

// IntBounds limits GetInt64WithBounds. Nil fields are unchecked.
type IntBounds struct {
	MinVal *int64
	MaxVal *int64
}

// Int64 returns a pointer to v for use in IntBounds.
func Int64(v int64) *int64 { return &v }

// GetInt64WithBounds returns an integer option with bounds checking.
func (s *Section) GetInt64WithBounds(option string, bounds IntBounds, fallback ...int64) (int64, error) {
	v, err := s.GetInt64(option, fallback...)
	if err != nil {
		return 0, err
	}
	if bounds.MinVal != nil && v < *bounds.MinVal {
		return 0, ErrOutOfRange(s.name, option, v, fmt.Sprintf("must have minimum of %d", *bounds.MinVal))
	}
	if bounds.MaxVal != nil && v > *bounds.MaxVal {
		return 0, ErrOutOfRange(s.name, option, v, fmt.Sprintf("must have maximum of %d", *bounds.MaxVal))
	}
	return v, nil
}

// GetNonZero returns an integer option that must not be zero, as required
// for divisors.
func (s *Section) GetNonZero(option string, fallback ...int64) (int64, error) {
	v, err := s.GetInt64(option, fallback...)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, ErrOutOfRange(s.name, option, v, "must be non-zero")
	}
	return v, nil
}

// GetBool returns a boolean option.
// Accepts: 1, true, yes, on (true) and 0, false, no, off (false).
func (s *Section) GetBool(option string, fallback ...bool) (bool, error) {
	if v, ok := s.lookup(option); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true, nil
		case "0", "false", "no", "off":
			return false, nil
		default:
			return false, ErrInvalidValue(s.name, option, v, "boolean", nil)
		}
	}
	if len(fallback) > 0 {
		s.markAccessed(option)
		return fallback[0], nil
	}
	return false, ErrMissingOption(s.name, option)
}

// GetChoice returns a string option that must be one of choices. The
// returned value has the spelling used in choices.
func (s *Section) GetChoice(option string, choices []string, fallback ...string) (string, error) {
	v, err := s.Get(option, fallback...)
	if err != nil {
		return "", err
	}
	for _, c := range choices {
		if strings.EqualFold(v, c) {
			return c, nil
		}
	}
	return "", ErrInvalidChoice(s.name, option, v, choices)
}

// GetRatio parses a "num/den" option. A bare integer n means n/1. Both
// parts must be non-zero.
func (s *Section) GetRatio(option string, fallback ...string) (num, den int64, err error) {
	v, err := s.Get(option, fallback...)
	if err != nil {
		return 0, 0, err
	}
	numStr, denStr, found := strings.Cut(v, "/")
	if !found {
		denStr = "1"
	}
	num, err = strconv.ParseInt(strings.TrimSpace(numStr), 0, 64)
	if err != nil {
		return 0, 0, ErrInvalidValue(s.name, option, v, "ratio num/den", err)
	}
	den, err = strconv.ParseInt(strings.TrimSpace(denStr), 0, 64)
	if err != nil {
		return 0, 0, ErrInvalidValue(s.name, option, v, "ratio num/den", err)
	}
	if num == 0 || den == 0 {
		return 0, 0, ErrOutOfRange(s.name, option, v, "must have non-zero numerator and denominator")
	}
	return num, den, nil
}
