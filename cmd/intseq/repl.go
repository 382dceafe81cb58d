package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/intseq/internal/expand"
	"github.com/samcharles93/intseq/internal/format"
)

const replPrompt = "intseq> "

func replCmd() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Expand sequences interactively",
		Description: "Each line is expanded on its own. Lines starting with ':' are commands:\n" +
			"  :format <style>   switch the output format\n" +
			"  :help             list commands\n" +
			"exit, quit or Ctrl+D leaves the prompt.",
		Flags:  withFlags([]cli.Flag{formatFlag(), maxTermsFlag()}, lookupFlags(), loggingFlags()),
		Before: setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			style, err := format.ParseStyle(outputFormat)
			if err != nil {
				return err
			}
			out := outWriter(cmd)
			r := &repl{
				expander: newExpander(ctx),
				in:       newLineReader(cmdReader(cmd), out),
				out:      out,
				style:    style,
			}
			return r.run(ctx)
		},
	}
}

type repl struct {
	expander *expand.Expander
	in       lineReader
	out      io.Writer
	style    format.Style
}

func (r *repl) run(ctx context.Context) error {
	for {
		line, err := r.in.ReadLine(replPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit":
			return nil
		case strings.HasPrefix(line, ":"):
			r.command(line[1:])
			continue
		}

		res, err := r.expander.Expand(ctx, line)
		if err != nil {
			_, _ = fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		if err := writeLiteral(r.out, res, r.style); err != nil {
			return err
		}
	}
}

func (r *repl) command(line string) {
	name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch name {
	case "format":
		style, err := format.ParseStyle(arg)
		if err != nil {
			_, _ = fmt.Fprintf(r.out, "error: %v\n", err)
			return
		}
		r.style = style
		_, _ = fmt.Fprintf(r.out, "format: %s\n", style)
	case "help":
		_, _ = fmt.Fprintf(r.out, ":format <%s>\n:help\nexit | quit\n", strings.Join(format.Styles(), "|"))
	default:
		_, _ = fmt.Fprintf(r.out, "error: unknown command %q\n", ":"+name)
	}
}
