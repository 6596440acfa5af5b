package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/carson-networks/ledger/internal/cli"
	"github.com/carson-networks/ledger/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(logger).ExecuteContext(ctx); err != nil {
		stop()
		logger.WithError(err).Fatal("cli.Execute")
	}
}
