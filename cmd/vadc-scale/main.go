// vadc-scale converts PMIC VADC raw codes to physical values and physical
// limits to threshold monitor codes, using the channel bank and calibration
// described in a configuration file.
//
// Usage:
//
//	vadc-scale -config vadc.cfg [options]
//
// Options:
//
//	-config string     VADC configuration file (required)
//	-channel string    Channel to convert (with -code)
//	-code string       Raw code, decimal or 0x hex
//	-threshold string  Threshold kind: usb, vbatt, btm, pmic_therm, therm_100k
//	-low int           Low limit for -threshold
//	-high int          High limit for -threshold
//	-therm-code string Threshold monitor code to convert back to degC
//	-list              List configured channels
//	-i                 Read commands from stdin
//	-metrics           Print metrics before exiting
//	-loglevel string   DEBUG, INFO, WARN or ERROR (default "WARN")
//
// Examples:
//
//	# Convert a battery thermistor code
//	vadc-scale -config vadc.cfg -channel batt_therm -code 0x8000
//
//	# Battery temperature monitor codes for -10.0 and 60.0 degC
//	vadc-scale -config vadc.cfg -threshold btm -low -100 -high 600
//
//	# Interactive session
//	vadc-scale -config vadc.cfg -i
//
// Exit status is 2 for configuration errors, 3 for scaling errors such as a
// missing calibration graph, and 1 for anything else.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"pmic-vadc/pkg/channel"
	"pmic-vadc/pkg/config"
	"pmic-vadc/pkg/errors"
	"pmic-vadc/pkg/log"
	"pmic-vadc/pkg/metrics"
)

func main() {
	configFile := flag.String("config", "", "VADC configuration file (required)")
	channelName := flag.String("channel", "", "Channel to convert (with -code)")
	code := flag.String("code", "", "Raw code, decimal or 0x hex")
	threshold := flag.String("threshold", "", "Threshold kind: usb, vbatt, btm, pmic_therm, therm_100k")
	low := flag.Int64("low", 0, "Low limit for -threshold")
	high := flag.Int64("high", 0, "High limit for -threshold")
	thermCode := flag.String("therm-code", "", "Threshold monitor code to convert back to degC")
	list := flag.Bool("list", false, "List configured channels")
	interactive := flag.Bool("i", false, "Read commands from stdin")
	showMetrics := flag.Bool("metrics", false, "Print metrics before exiting")
	logLevel := flag.String("loglevel", "WARN", "DEBUG, INFO, WARN or ERROR")

	flag.Parse()

	if *configFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -config is required\n")
		flag.Usage()
		os.Exit(1)
	}

	// VADC_LOG_* variables override the flag
	root := log.New("vadc")
	root.SetLevel(log.ParseLevel(*logLevel))
	log.ConfigureFromEnv(root)
	log.SetDefaultLogger(root)
	logger := log.GetLogger("vadc-scale")

	cfg, err := config.Load(*configFile)
	if err != nil {
		logger.WithError(err).Error("loading config")
		os.Exit(exitCode(err))
	}
	m := metrics.GlobalMetrics()
	bank, err := channel.NewBankFromConfig(cfg, channel.WithMetrics(m))
	if err != nil {
		logger.WithError(err).Error("building channel bank")
		os.Exit(exitCode(err))
	}

	sh := newShell(bank, m, os.Stdout)
	status := 0
	run := func(args ...string) {
		if err := sh.exec(args); err != nil {
			logger.WithError(err).Error("%s failed", args[0])
			status = max(status, exitCode(err))
		}
	}

	if *list {
		run("channels")
	}
	if *channelName != "" || *code != "" {
		run("convert", *channelName, *code)
	}
	if *threshold != "" {
		run("threshold", *threshold, strconv.FormatInt(*low, 10), strconv.FormatInt(*high, 10))
	}
	if *thermCode != "" {
		run("therm", *thermCode)
	}
	if *interactive {
		if err := sh.repl(os.Stdin); err != nil {
			logger.WithError(err).Error("reading commands")
			status = max(status, exitCode(err))
		}
	}
	if *showMetrics {
		run("metrics")
	}

	os.Exit(status)
}

func exitCode(err error) int {
	switch {
	case errors.IsConfig(err):
		return 2
	case errors.IsScaling(err):
		return 3
	}
	return 1
}
