package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/intseq/internal/expand"
	"github.com/samcharles93/intseq/internal/format"
	"github.com/samcharles93/intseq/internal/logger"
	"github.com/samcharles93/intseq/internal/oeis"
	"github.com/samcharles93/intseq/internal/sequence"
)

func expandCmd() *cli.Command {
	var explain bool

	return &cli.Command{
		Name:      "expand",
		Usage:     "Expand one sequence, or one per line of stdin",
		ArgsUsage: "<notation>",
		Flags: withFlags(
			[]cli.Flag{
				formatFlag(),
				maxTermsFlag(),
				&cli.BoolFlag{
					Name:        "explain",
					Usage:       "print the chosen model to stderr",
					Destination: &explain,
				},
			},
			lookupFlags(),
			loggingFlags(),
		),
		Before: setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			style, err := format.ParseStyle(outputFormat)
			if err != nil {
				return err
			}
			e := newExpander(ctx)
			out, errOut := outWriter(cmd), errWriter(cmd)

			run := func(src string) error {
				res, err := e.Expand(ctx, src)
				if err != nil {
					return err
				}
				if explain {
					writeExplanation(errOut, res)
				}
				return writeLiteral(out, res, style)
			}

			if cmd.Args().Len() > 0 {
				return run(strings.Join(cmd.Args().Slice(), " "))
			}
			return eachLine(cmdReader(cmd), run)
		},
	}
}

// newExpander builds the pipeline from the lookup flags.
func newExpander(ctx context.Context) *expand.Expander {
	log := logger.FromContext(ctx)
	var db sequence.Database
	if !offline {
		client := oeis.NewClient(oeisURL, timeout)
		client.Log = log.With("component", "oeis")
		db = client
	}
	e := expand.New(db, log)
	e.Inferrer.MaxTerms = maxTerms
	return e
}

func writeLiteral(w io.Writer, res expand.Result, style format.Style) error {
	lit := res.Literal(style)
	if style == format.Lines {
		_, err := io.WriteString(w, lit)
		return err
	}
	_, err := fmt.Fprintln(w, lit)
	return err
}

func writeExplanation(w io.Writer, res expand.Result) {
	if res.Source != "" {
		_, _ = fmt.Fprintf(w, "model: %s (%s)\n", res.Model, res.Source)
		return
	}
	_, _ = fmt.Fprintf(w, "model: %s\n", res.Model)
}

// eachLine calls fn for every non-blank line of r and stops at the first error.
func eachLine(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func cmdReader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
