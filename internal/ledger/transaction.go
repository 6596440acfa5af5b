package ledger

import (
	"fmt"
	"io"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// now is swapped in tests to pin transaction timestamps.
var now = time.Now

// TransactionKind classifies a ledger event.
type TransactionKind int8

const (
	TransactionKindDeposit TransactionKind = iota
	TransactionKindWithdraw
)

func (k TransactionKind) String() string {
	switch k {
	case TransactionKindDeposit:
		return "DEPOSIT"
	case TransactionKindWithdraw:
		return "WITHDRAW"
	default:
		return "UNKNOWN"
	}
}

// Transaction is an immutable record of one balance change.
// Deposits carry a positive amount and withdrawals a negative one.
type Transaction struct {
	id          uuid.UUID
	timestamp   time.Time
	kind        TransactionKind
	amount      decimal.Decimal
	description string
}

func newTransaction(kind TransactionKind, amount decimal.Decimal, description string) Transaction {
	return Transaction{
		id:          uuid.Must(uuid.NewV4()),
		timestamp:   now(),
		kind:        kind,
		amount:      amount,
		description: description,
	}
}

func (t Transaction) ID() uuid.UUID { return t.id }
func (t Transaction) Timestamp() time.Time { return t.timestamp }
func (t Transaction) Kind() TransactionKind { return t.kind }
func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) Description() string { return t.description }

// Render writes the transaction as one row of a transaction history table.
func (t Transaction) Render(w io.Writer) {
	fmt.Fprintf(w, "%-25s%-10s%-15s%s\n",
		t.timestamp.Format(time.ANSIC),
		t.kind,
		t.amount.StringFixed(2),
		t.description,
	)
}
