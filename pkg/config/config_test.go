package config

import (
	"os"
	"path/filepath"
	"testing"

	"pmic-vadc/pkg/errors"
)

const sampleConfig = `
[vadc]
adc_vdd_reference: 1800
bit_resolution: 15
bipolar: no

# 625 mV and 1.25 V references
[calibration absolute]
dy: 6400
dx: 625000
adc_vref: 1250000
adc_gnd: 30976

[calibration ratiometric]
dy = 0x4800
dx = 1800
adc_vref = 1800
adc_gnd = 0x6000   ; GND code

[channel  batt_therm]
reg: 48
prescale: 1/3
scale_function: batt_therm
calibration_type: Ratiometric
`

func TestLoadString(t *testing.T) {
	cfg, err := LoadString(sampleConfig)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}

	expected := []string{"vadc", "calibration absolute", "calibration ratiometric", "channel batt_therm"}
	sections := cfg.GetPrefixSections("")
	if len(sections) != len(expected) {
		t.Fatalf("expected %d sections, got %d", len(expected), len(sections))
	}
	for i, name := range expected {
		if sections[i].GetName() != name {
			t.Errorf("section %d: expected %q, got %q", i, name, sections[i].GetName())
		}
	}

	if cfg.GetSectionOptional("nonexistent") != nil {
		t.Error("expected [nonexistent] section to not exist")
	}

	vadc, err := cfg.GetSection("vadc")
	if err != nil {
		t.Fatalf("GetSection(vadc) failed: %v", err)
	}
	vdd, err := vadc.GetInt64("adc_vdd_reference")
	if err != nil {
		t.Fatalf("GetInt64 failed: %v", err)
	}
	if vdd != 1800 {
		t.Errorf("expected 1800, got %d", vdd)
	}
	bipolar, err := vadc.GetBool("bipolar")
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if bipolar {
		t.Error("expected bipolar to be false")
	}
}

func TestHexAndComments(t *testing.T) {
	cfg, err := LoadString(sampleConfig)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	sec, err := cfg.GetSection("calibration ratiometric")
	if err != nil {
		t.Fatalf("GetSection failed: %v", err)
	}

	tests := []struct {
		option   string
		expected int64
	}{
		{"dy", 0x4800},
		{"adc_gnd", 0x6000},
		{"adc_vref", 1800},
	}
	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			got, err := sec.GetInt64(tt.option)
			if err != nil {
				t.Fatalf("GetInt64 failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSectionSuffix(t *testing.T) {
	cfg, err := LoadString(sampleConfig)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}

	channels := cfg.GetPrefixSections("channel ")
	if len(channels) != 1 {
		t.Fatalf("expected 1 channel section, got %d", len(channels))
	}
	if got := channels[0].Suffix("channel"); got != "batt_therm" {
		t.Errorf("expected suffix 'batt_therm', got %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"empty header", "[ ]\nfoo: 1\n", 1},
		{"option before section", "foo: 1\n[vadc]\n", 1},
		{"malformed option", "[vadc]\njust_a_word\n", 2},
		{"include without directory", "# vadc\n\n[include other.cfg]\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.data)
			if !errors.Is(err, errors.ErrConfigValidation) || !errors.IsConfig(err) {
				t.Fatalf("expected CONFIG_VALIDATION, got %v", err)
			}
			herr, _ := errors.AsHostError(err)
			if herr.Context["line"] != tt.line || herr.Context["file"] != "<string>" {
				t.Errorf("expected line %d in <string>, got %v", tt.line, herr.Context)
			}
		})
	}
}

func TestDuplicateSectionsMerge(t *testing.T) {
	cfg, err := LoadString("[vadc]\nbit_resolution: 15\n[vadc]\nbit_resolution: 12\nbipolar: yes\n")
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	sec, _ := cfg.GetSection("vadc")
	bits, _ := sec.GetInt64("bit_resolution")
	if bits != 12 {
		t.Errorf("expected later value 12, got %d", bits)
	}
	if n := len(cfg.GetPrefixSections("vadc")); n != 1 {
		t.Errorf("expected one merged section, got %d", n)
	}
}

func TestLoadWithInclude(t *testing.T) {
	dir := t.TempDir()
	channels := "[channel xo_therm]\nreg: 50\nscale_function: xo_therm\n"
	main := "[include channels/*.cfg]\n[vadc]\nadc_vdd_reference: 1800\n"

	if err := os.Mkdir(filepath.Join(dir, "channels"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "channels", "xo.cfg"), []byte(channels), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "vadc.cfg")
	if err := os.WriteFile(path, []byte(main), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, name := range []string{"channel xo_therm", "vadc"} {
		if _, err := cfg.GetSection(name); err != nil {
			t.Errorf("missing section %s: %v", name, err)
		}
	}
}

func TestLoadRecursiveInclude(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loop.cfg")
	if err := os.WriteFile(path, []byte("[include loop.cfg]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected recursive include error")
	}
	if _, err := Load(filepath.Join(dir, "missing.cfg")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAccessTracking(t *testing.T) {
	cfg, err := LoadString(sampleConfig)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}

	sec, _ := cfg.GetSection("channel batt_therm")
	_, _ = sec.GetInt64("reg")
	_, _, _ = sec.GetRatio("prescale")

	unused := sec.GetUnusedOptions()
	if len(unused) != 2 || unused[0] != "calibration_type" || unused[1] != "scale_function" {
		t.Errorf("expected [calibration_type scale_function], got %v", unused)
	}

	sections := cfg.GetUnusedSections()
	if len(sections) != 3 {
		t.Errorf("expected 3 unused sections, got %v", sections)
	}

	err = cfg.CheckUnused()
	if !errors.Is(err, errors.ErrConfigValidation) {
		t.Errorf("expected CONFIG_VALIDATION, got %v", err)
	}
}

func TestCheckUnusedClean(t *testing.T) {
	cfg, err := LoadString("[vadc]\nbit_resolution: 15\n")
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	sec, _ := cfg.GetSection("vadc")
	_, _ = sec.GetInt64("bit_resolution")
	if err := cfg.CheckUnused(); err != nil {
		t.Errorf("expected no unused entries, got %v", err)
	}
}

func TestGetChoice(t *testing.T) {
	cfg, err := LoadString(sampleConfig)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	sec, _ := cfg.GetSection("channel batt_therm")
	choices := []string{"absolute", "ratiometric"}

	got, err := sec.GetChoice("calibration_type", choices)
	if err != nil {
		t.Fatalf("GetChoice failed: %v", err)
	}
	if got != "ratiometric" {
		t.Errorf("expected canonical 'ratiometric', got %q", got)
	}

	got, err = sec.GetChoice("missing", choices, "absolute")
	if err != nil || got != "absolute" {
		t.Errorf("expected fallback 'absolute', got %q, %v", got, err)
	}

	bad, _ := LoadString("[c]\ncalibration_type: paired\n")
	badSec, _ := bad.GetSection("c")
	if _, err := badSec.GetChoice("calibration_type", choices); !errors.Is(err, errors.ErrConfigValidation) {
		t.Errorf("expected CONFIG_VALIDATION, got %v", err)
	}
}

func TestGetRatio(t *testing.T) {
	tests := []struct {
		value   string
		num     int64
		den     int64
		errCode errors.ErrorCode
	}{
		{"1/1", 1, 1, ""},
		{" 1 / 3 ", 1, 3, ""},
		{"2", 2, 1, ""},
		{"0/1", 0, 0, errors.ErrConfigValidation},
		{"1/0", 0, 0, errors.ErrConfigValidation},
		{"one/3", 0, 0, errors.ErrConfigType},
		{"1/x", 0, 0, errors.ErrConfigType},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := LoadString("[channel t]\nprescale: " + tt.value + "\n")
			if err != nil {
				t.Fatalf("LoadString failed: %v", err)
			}
			sec, _ := cfg.GetSection("channel t")
			num, den, err := sec.GetRatio("prescale")
			if tt.errCode != "" {
				if !errors.Is(err, tt.errCode) {
					t.Errorf("expected %s, got %v", tt.errCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetRatio failed: %v", err)
			}
			if num != tt.num || den != tt.den {
				t.Errorf("expected %d/%d, got %d/%d", tt.num, tt.den, num, den)
			}
		})
	}
}

func TestBoundsChecking(t *testing.T) {
	cfg, err := LoadString("[vadc]\nbit_resolution: 40\nadc_vdd_reference: 0\n")
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	sec, _ := cfg.GetSection("vadc")

	_, err = sec.GetInt64WithBounds("bit_resolution", IntBounds{MinVal: Int64(1), MaxVal: Int64(32)})
	if !errors.Is(err, errors.ErrConfigValidation) {
		t.Errorf("expected CONFIG_VALIDATION for value above max, got %v", err)
	}

	v, err := sec.GetInt64WithBounds("missing", IntBounds{MinVal: Int64(1)}, 15)
	if err != nil || v != 15 {
		t.Errorf("expected fallback 15, got %d, %v", v, err)
	}

	if _, err := sec.GetNonZero("adc_vdd_reference"); !errors.Is(err, errors.ErrConfigValidation) {
		t.Errorf("expected CONFIG_VALIDATION for zero value, got %v", err)
	}
}

func TestMissingOptionError(t *testing.T) {
	cfg, err := LoadString("[vadc]\nbipolar: maybe\nbit_resolution: fifteen\n")
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	sec, _ := cfg.GetSection("vadc")

	_, err = sec.GetInt64("adc_vdd_reference")
	if !errors.Is(err, errors.ErrConfigOption) {
		t.Fatalf("expected CONFIG_OPTION, got %v", err)
	}
	herr, _ := errors.AsHostError(err)
	if herr.Section != "vadc" || herr.Option != "adc_vdd_reference" {
		t.Errorf("expected vadc/adc_vdd_reference context, got %q/%q", herr.Section, herr.Option)
	}

	if _, err := sec.GetBool("bipolar"); !errors.Is(err, errors.ErrConfigType) {
		t.Errorf("expected CONFIG_TYPE for bad bool, got %v", err)
	}
	if _, err := sec.GetInt64("bit_resolution"); !errors.Is(err, errors.ErrConfigType) {
		t.Errorf("expected CONFIG_TYPE for bad int, got %v", err)
	}
	if _, err := cfg.GetSection("calibration absolute"); !errors.Is(err, errors.ErrConfigSection) {
		t.Errorf("expected CONFIG_SECTION, got %v", err)
	}
	if cfg.GetSectionOptional("calibration absolute") != nil {
		t.Error("expected nil for missing optional section")
	}
}
