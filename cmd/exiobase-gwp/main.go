package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	exiobasegwp "github.com/afk-codze/exiobase3-gwp-calculation"

	"github.com/afk-codze/exiobase3-gwp-calculation/internal/demo"
	"github.com/afk-codze/exiobase3-gwp-calculation/internal/exiobase"
	"github.com/afk-codze/exiobase3-gwp-calculation/internal/must"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	flagDatasetPath := ""
	flagOutputCSV := ""
	flagGWPFactors := ""
	flagGWPExtraFlows := ""
	flagDemoEnabled := ""
	flagLogLevel := ""
	flagLogFormat := ""

	flag.StringVar(&flagDatasetPath, "dataset.path", "./IOT_2022_pxp", "path to the pre-extracted EXIOBASE 3 dataset")
	flag.StringVar(&flagOutputCSV, "output.csv", "exiobase_gwp_factors.csv", "path of the multipliers csv to write")
	flag.StringVar(&flagGWPFactors, "gwp.factors", "ar5", "characterization factor set (ar5, ar6)")
	flag.StringVar(&flagGWPExtraFlows, "gwp.extraflows", "", "additional flow=factor pairs to include, comma separated")
	flag.StringVar(&flagDemoEnabled, "demo.enabled", "false", "compute multipliers for a fictive toy economy")
	flag.StringVar(&flagLogLevel, "log.level", "info", "log severity (debug, info, warn, error)")
	flag.StringVar(&flagLogFormat, "log.format", "text", "log format (text, json)")

	flag.Parse()

	initLogging(flagLogLevel, flagLogFormat)

	factors := setupFactors(flagGWPFactors, flagGWPExtraFlows)

	var (
		sys *exiobasegwp.IOSystem
		err error
	)
	if flagDemoEnabled == "true" {
		sys = demo.NewGenerator(4, 6).IOSystem()
	} else {
		sys, err = exiobase.Parse(flagDatasetPath)
		if err != nil {
			slog.Error("failed to parse exiobase dataset", "err", err)
			os.Exit(1)
		}
	}

	slog.Info("computing the leontief inverse")
	if err := sys.CalcL(); err != nil {
		slog.Error("failed to compute the leontief inverse", "err", err)
		os.Exit(1)
	}

	row, err := factors.Aggregate(sys)
	if err != nil {
		slog.Error("failed to aggregate the gwp100 intensity row", "err", err)
		os.Exit(1)
	}

	multipliers, err := exiobasegwp.ComputeMultipliers(row, sys.L)
	if err != nil {
		slog.Error("failed to compute supply chain multipliers", "err", err)
		os.Exit(1)
	}

	if err := multipliers.Export(flagOutputCSV); err != nil {
		slog.Error("failed to write multipliers csv", "err", err)
		os.Exit(1)
	}
}

func setupFactors(set string, extraFlows string) exiobasegwp.GWPFactors {
	var factors exiobasegwp.GWPFactors
	switch strings.ToLower(set) {
	case "ar5":
		factors = exiobasegwp.AR5
	case "ar6":
		factors = exiobasegwp.AR6
	default:
		slog.Error("characterization factor set is not supported", "gwp.factors", set)
		flag.PrintDefaults()
		os.Exit(1)
	}

	if extraFlows == "" {
		return factors
	}

	for _, pair := range strings.Split(extraFlows, ",") {
		flow, factor, found := strings.Cut(pair, "=")
		if !found {
			slog.Error("extra flow is not a flow=factor pair", "gwp.extraflows", pair)
			flag.PrintDefaults()
			os.Exit(1)
		}
		factors = factors.With(strings.TrimSpace(flow), must.CastFloat64(factor))
	}

	return factors
}

func initLogging(logLevel string, logFormat string) {
	switch logFormat {
	case "text":
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:   slogLevel(logLevel),
			NoColor: !isatty.IsTerminal(os.Stdout.Fd()),
		})))
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(logLevel),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Key = "severity"
					return a
				case slog.MessageKey:
					a.Key = "message"
					return a
				default:
					return a
				}
			},
		})))
	default:
		fmt.Fprintf(os.Stderr, "unsupported log format: %s\n", logFormat)
		os.Exit(1)
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
