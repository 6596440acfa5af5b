package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger/internal/ledger"
)

// Transfer moves money between two accounts. Receipt is filled in by Perform.
type Transfer struct {
	FromAccount int
	ToAccount   int
	Amount      decimal.Decimal

	Receipt ledger.TransferReceipt
	IAction
}

func (t *Transfer) Perform(ctx context.Context, l *ledger.Ledger) error {
	receipt, err := l.Transfer(t.FromAccount, t.ToAccount, t.Amount)
	t.Receipt = receipt
	return err
}
