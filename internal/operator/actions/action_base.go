package actions

import (
	"context"

	"github.com/carson-networks/ledger/internal/ledger"
)

// IAction is one ledger mutation run by an operator worker.
type IAction interface {
	Perform(ctx context.Context, l *ledger.Ledger) error
}
