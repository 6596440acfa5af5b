package cli

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/console"
	"github.com/carson-networks/ledger/internal/config"
	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/operator"
	"github.com/carson-networks/ledger/internal/operator/actions"
)

// demoAccounts are created at startup when seeding is on.
var demoAccounts = []actions.CreateAccount{
	{AccountNumber: 1001, Holder: "John Doe", Type: "Savings", InitialDeposit: decimal.RequireFromString("1000.00")},
	{AccountNumber: 1002, Holder: "Jane Smith", Type: "Checking", InitialDeposit: decimal.RequireFromString("500.00")},
}

func run(ctx context.Context, env *config.Config, logger *logrus.Logger, in io.Reader, out io.Writer) error {
	logger.SetLevel(env.LogLevel)
	logger.WithFields(logrus.Fields{
		"bankName":   env.BankName,
		"systemName": env.SystemName,
		"workers":    env.Workers,
		"seed":       env.Seed,
	}).Info("ledger starting")

	l := ledger.New(env.BankName)
	op := operator.NewOperatorDelegator(l, env.Workers)
	op.Start()
	defer op.Stop()

	if env.Seed {
		if err := seed(ctx, op); err != nil {
			return err
		}
	}

	c := console.Console{
		Title:    env.SystemName,
		Logger:   logger,
		Ledger:   l,
		Operator: op,
		In:       in,
		Out:      out,
	}
	return c.Serve(ctx)
}

func seed(ctx context.Context, op *operator.OperatorDelegator) error {
	for i := range demoAccounts {
		action := demoAccounts[i]
		if err := op.Process(ctx, &action); err != nil {
			return err
		}
	}
	return nil
}
