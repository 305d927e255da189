package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/simaogato/kirimuang-backend/internal/app"
	"github.com/simaogato/kirimuang-backend/internal/cli"
	"github.com/simaogato/kirimuang-backend/internal/config"
	"github.com/simaogato/kirimuang-backend/internal/logging"
)

func main() {
	var verbose bool

	build := func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}

		// logs share the terminal with prompts, so only warnings unless asked
		level := "warn"
		if verbose {
			level = cfg.LogLevel
		}
		logger := logging.NewWithWriter(level, true, os.Stderr)

		return app.New(ctx, cfg, logger)
	}

	root := cli.NewRootCmd(build)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level instead of warn")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
