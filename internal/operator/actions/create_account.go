package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger/internal/ledger"
)

// CreateAccount registers a new account.
type CreateAccount struct {
	AccountNumber  int
	Holder         string
	Type           string
	InitialDeposit decimal.Decimal

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, l *ledger.Ledger) error {
	return l.CreateAccount(c.AccountNumber, c.Holder, c.Type, c.InitialDeposit)
}
