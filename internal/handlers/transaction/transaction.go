package transaction

import (
	"context"
	"io"

	"github.com/carson-networks/ledger/internal/operator/actions"
)

// actionProcessor submits ledger mutations to the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// transactionReader prints an account's history.
type transactionReader interface {
	DisplayTransactions(w io.Writer, number int) error
}
