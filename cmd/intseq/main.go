package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "intseq",
		Usage: "Expand integer sequences written in range notation",
		Description: "Writes out the terms of sequences such as \"1, 2, 4, 8..=1024\".\n" +
			"Affine progressions are continued locally; anything else is looked up in the OEIS.",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			expandCmd(),
			replCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}
