// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"pmic-vadc/pkg/channel"
	"pmic-vadc/pkg/metrics"
	"pmic-vadc/pkg/vadc"
)

const shellHelp = `commands:
  channels                        list configured channels
  convert <channel> <code>        scale a raw code
  threshold <kind> <low> <high>   physical limits to monitor codes
  therm <code>                    100k thermistor monitor code to degC
  metrics                         print collected metrics
  help                            show this text
  quit                            leave
`

type shell struct {
	bank    *channel.Bank
	metrics *metrics.VADCMetrics
	out     io.Writer
}

func newShell(bank *channel.Bank, m *metrics.VADCMetrics, out io.Writer) *shell {
	return &shell{bank: bank, metrics: m, out: out}
}

// repl executes one command per line until EOF or quit. Command errors are
// printed and do not end the session.
func (s *shell) repl(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		if err := s.exec(args); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (s *shell) exec(args []string) error {
	switch strings.ToLower(args[0]) {
	case "channels":
		return s.channels()
	case "convert":
		if len(args) != 3 {
			return fmt.Errorf("usage: convert <channel> <code>")
		}
		code, err := parseCode(args[2])
		if err != nil {
			return err
		}
		// codes past the int32 range still clamp to the top of the scale
		r, err := s.bank.Convert(args[1], int32(min(code, math.MaxInt32)))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s (measurement %d)\n", r, r.Result.Measurement)
		return nil
	case "threshold":
		if len(args) != 4 {
			return fmt.Errorf("usage: threshold <kind> <low> <high>")
		}
		lo, err := strconv.ParseInt(args[2], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid low limit %q: %w", args[2], err)
		}
		hi, err := strconv.ParseInt(args[3], 0, 64)
		if err != nil {
			return fmt.Errorf("invalid high limit %q: %w", args[3], err)
		}
		t, err := s.bank.Thresholds(args[1], vadc.BTMParam{LowTemp: lo, HighTemp: hi, LowThr: lo, HighThr: hi})
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s: low=%#x high=%#x\n", args[1], t.Low, t.High)
		return nil
	case "therm":
		if len(args) != 2 {
			return fmt.Errorf("usage: therm <code>")
		}
		code, err := parseCode(args[1])
		if err != nil {
			return err
		}
		temp, err := s.bank.ThermReading(uint32(code))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s\n", vadc.UnitDegC.Format(temp))
		return nil
	case "metrics":
		fmt.Fprint(s.out, s.metrics.Gather())
		return nil
	case "help":
		fmt.Fprint(s.out, shellHelp)
		return nil
	}
	return fmt.Errorf("unknown command %q, try help", args[0])
}

func (s *shell) channels() error {
	w := bufio.NewWriter(s.out)
	fmt.Fprintf(w, "%-16s %-6s %-8s %-22s %s\n", "NAME", "REG", "PRESCALE", "SCALE", "CALIBRATION")
	for _, d := range s.bank.Channels() {
		fmt.Fprintf(w, "%-16s %#-6x %-8s %-22s %s\n", d.DisplayName(), d.Number, d.Prescale, d.Scale, d.Calib)
	}
	return w.Flush()
}

// parseCode accepts decimal or 0x-prefixed codes in the uint32 range.
func parseCode(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil || v < 0 || v > 0xffffffff {
		return 0, fmt.Errorf("invalid code %q", s)
	}
	return v, nil
}
