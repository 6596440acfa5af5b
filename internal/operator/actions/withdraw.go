package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger/internal/ledger"
)

// Withdraw debits an account. Balance is filled in by Perform; on
// insufficient funds it holds the untouched balance.
type Withdraw struct {
	AccountNumber int
	Amount        decimal.Decimal

	Balance       decimal.Decimal
	TransactionID uuid.UUID
	IAction
}

func (w *Withdraw) Perform(ctx context.Context, l *ledger.Ledger) error {
	receipt, err := l.Withdraw(w.AccountNumber, w.Amount)
	w.Balance = receipt.Balance
	w.TransactionID = receipt.TransactionID
	return err
}
