package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger/internal/ledger"
)

// Deposit credits an account. Balance is filled in by Perform, including
// when the deposit is rejected for an invalid amount. TransactionID is
// uuid.Nil unless the deposit was posted.
type Deposit struct {
	AccountNumber int
	Amount        decimal.Decimal

	Balance       decimal.Decimal
	TransactionID uuid.UUID
	IAction
}

func (d *Deposit) Perform(ctx context.Context, l *ledger.Ledger) error {
	receipt, err := l.Deposit(d.AccountNumber, d.Amount)
	d.Balance = receipt.Balance
	d.TransactionID = receipt.TransactionID
	return err
}
