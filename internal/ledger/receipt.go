package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Receipt is the outcome of a deposit or withdrawal. A rejected change
// carries uuid.Nil and the untouched balance.
type Receipt struct {
	TransactionID uuid.UUID
	Balance       decimal.Decimal
}

// Posted reports whether a transaction was recorded.
func (r Receipt) Posted() bool {
	return r.TransactionID != uuid.Nil
}

// TransferReceipt holds both legs of a transfer. Balances are those of the
// source after the withdrawal and of the destination after the deposit.
type TransferReceipt struct {
	Withdrawal Receipt
	Deposit    Receipt
}
