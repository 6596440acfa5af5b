package account

import (
	"context"
	"io"

	"github.com/carson-networks/ledger/internal/operator/actions"
)

// actionProcessor submits ledger mutations to the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// accountReader is the read side of the ledger used by the display handlers.
type accountReader interface {
	DisplayAccount(w io.Writer, number int) error
	DisplayAllAccounts(w io.Writer)
	Len() int
}
