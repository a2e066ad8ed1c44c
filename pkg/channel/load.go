// Channel bank construction from a configuration file
//
// Copyright (C) 2026  PMIC VADC Team
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package channel

import (
	"pmic-vadc/pkg/config"
	"pmic-vadc/pkg/vadc"
)

const (
	sectionVADC          = "vadc"
	sectionCalibration   = "calibration"
	sectionChannelPrefix = "channel"
)

var calibChoices = []string{
	vadc.CalibAbsolute.String(),
	vadc.CalibRatiometric.String(),
}

// NewBankFromConfig reads the [vadc], [calibration <mode>] and
// [channel <name>] sections of cfg. Every required option is checked and the
// first missing or invalid one is reported with its section and option.
func NewBankFromConfig(cfg *config.Config, opts ...Option) (*Bank, error) {
	adc, err := loadAdcProperties(cfg)
	if err != nil {
		return nil, err
	}
	src, err := loadCalibration(cfg)
	if err != nil {
		return nil, err
	}

	sections := cfg.GetPrefixSections(sectionChannelPrefix + " ")
	if len(sections) == 0 {
		return nil, config.NewConfigError(sectionVADC, "", "no channels configured")
	}
	descs := make([]Descriptor, 0, len(sections))
	for _, sec := range sections {
		d, err := loadDescriptor(sec)
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}

	b, err := NewBank(adc, src, descs, opts...)
	if err != nil {
		return nil, err
	}
	if err := cfg.CheckUnused(); err != nil {
		b.logger.WithError(err).Warn("configuration has unused entries")
	}
	return b, nil
}

func loadAdcProperties(cfg *config.Config) (vadc.AdcProperties, error) {
	sec, err := cfg.GetSection(sectionVADC)
	if err != nil {
		return vadc.AdcProperties{}, err
	}
	vdd, err := sec.GetNonZero("adc_vdd_reference")
	if err != nil {
		return vadc.AdcProperties{}, err
	}
	bits, err := sec.GetInt64WithBounds("bit_resolution", config.IntBounds{MinVal: config.Int64(1), MaxVal: config.Int64(32)})
	if err != nil {
		return vadc.AdcProperties{}, err
	}
	bipolar, err := sec.GetBool("bipolar", false)
	if err != nil {
		return vadc.AdcProperties{}, err
	}
	return vadc.AdcProperties{VddReference: vdd, BitResolution: uint32(bits), Bipolar: bipolar}, nil
}

// loadCalibration builds a static source from the calibration sections.
// A missing section leaves that mode unavailable.
func loadCalibration(cfg *config.Config) (*vadc.StaticSource, error) {
	src := vadc.NewStaticSource()
	for _, mode := range []vadc.CalibMode{vadc.CalibAbsolute, vadc.CalibRatiometric} {
		sec := cfg.GetSectionOptional(sectionCalibration + " " + mode.String())
		if sec == nil {
			continue
		}
		var g vadc.LinearGraph
		var err error
		if g.Dy, err = sec.GetNonZero("dy"); err != nil {
			return nil, err
		}
		if g.Dx, err = sec.GetInt64("dx"); err != nil {
			return nil, err
		}
		if g.AdcVref, err = sec.GetInt64("adc_vref"); err != nil {
			return nil, err
		}
		if g.AdcGnd, err = sec.GetInt64("adc_gnd"); err != nil {
			return nil, err
		}
		src = src.With(mode, g)
	}
	return src, nil
}

func loadDescriptor(sec *config.Section) (Descriptor, error) {
	d := Descriptor{Name: sec.Suffix(sectionChannelPrefix)}
	nonNegative := config.IntBounds{MinVal: config.Int64(0), MaxVal: config.Int64(1<<32 - 1)}

	u32 := func(option string, dst *uint32) error {
		v, err := sec.GetInt64WithBounds(option, nonNegative)
		if err != nil {
			return err
		}
		*dst = uint32(v)
		return nil
	}
	if err := u32("reg", &d.Number); err != nil {
		return Descriptor{}, err
	}
	if err := u32("decimation", &d.Decimation); err != nil {
		return Descriptor{}, err
	}
	if err := u32("hw_settle_time", &d.HWSettleTime); err != nil {
		return Descriptor{}, err
	}
	if err := u32("fast_avg_setup", &d.FastAvgSetup); err != nil {
		return Descriptor{}, err
	}

	num, den, err := sec.GetRatio("prescale")
	if err != nil {
		return Descriptor{}, err
	}
	d.Prescale = Prescale{Num: num, Den: den}

	scale, err := sec.Get("scale_function")
	if err != nil {
		return Descriptor{}, err
	}
	if d.Scale, err = vadc.ParseScaleFunction(scale); err != nil {
		return Descriptor{}, config.ErrInvalidValue(sec.GetName(), "scale_function", scale, "scale function", err)
	}

	calib, err := sec.GetChoice("calibration_type", calibChoices)
	if err != nil {
		return Descriptor{}, err
	}
	d.Calib = vadc.CalibAbsolute
	if calib == vadc.CalibRatiometric.String() {
		d.Calib = vadc.CalibRatiometric
	}

	if d.Label, err = sec.Get("label", ""); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}
