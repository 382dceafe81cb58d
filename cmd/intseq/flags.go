package main

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/intseq/internal/expand"
	"github.com/samcharles93/intseq/internal/format"
	"github.com/samcharles93/intseq/internal/oeis"
)

var (
	oeisURL      string
	timeout      time.Duration
	offline      bool
	outputFormat string
	maxTerms     int
	logLevel     string
	logFormat    string
	debug        bool
)

func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "oeis-url",
			Usage:       "base URL of the OEIS search service",
			Value:       oeis.DefaultBaseURL,
			Sources:     cli.EnvVars("INTSEQ_OEIS_URL"),
			Destination: &oeisURL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "timeout for one OEIS lookup (0 = none)",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("INTSEQ_TIMEOUT"),
			Destination: &timeout,
		},
		&cli.BoolFlag{
			Name:        "offline",
			Usage:       "never query the OEIS; only affine progressions are expanded",
			Sources:     cli.EnvVars("INTSEQ_OFFLINE"),
			Destination: &offline,
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "output format (array, go, lines, json)",
		Value:       format.Array.String(),
		Destination: &outputFormat,
	}
}

func maxTermsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:        "max-terms",
		Usage:       "reject sequences longer than this (0 = no limit)",
		Value:       expand.DefaultMaxTerms,
		Sources:     cli.EnvVars("INTSEQ_MAX_TERMS"),
		Destination: &maxTerms,
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
