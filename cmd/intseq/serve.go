package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/intseq/internal/api"
	"github.com/samcharles93/intseq/internal/logger"
)

var serverAddr string

func serveCmd() *cli.Command {
	var (
		readTimeout time.Duration
		storeLimit  int64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the expansion HTTP API",
		Flags: withFlags(
			[]cli.Flag{
				&cli.StringFlag{
					Name:        "addr",
					Usage:       "listen address",
					Value:       "127.0.0.1:8080",
					Sources:     cli.EnvVars("INTSEQ_ADDR"),
					Destination: &serverAddr,
				},
				&cli.DurationFlag{
					Name:        "read-timeout",
					Usage:       "read header timeout",
					Value:       10 * time.Second,
					Destination: &readTimeout,
				},
				&cli.Int64Flag{
					Name:        "store-limit",
					Usage:       "maximum number of stored expansions (0 = default)",
					Destination: &storeLimit,
				},
				maxTermsFlag(),
			},
			lookupFlags(),
			loggingFlags(),
		),
		Before: setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			store := api.NewExpansionStore(int(storeLimit))
			server := api.NewServer(newExpander(ctx), store, log.With("component", "api"))
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)
			log.Info("starting server", "address", serverAddr, "offline", offline)
			sc := echo.StartConfig{
				Address: serverAddr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
