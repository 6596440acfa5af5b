package account

import (
	"context"

	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/prompt"
)

// ListAccountsHandler handles the "Display All Accounts" menu entry.
type ListAccountsHandler struct {
	AccountReader accountReader
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(reader accountReader) *ListAccountsHandler {
	return &ListAccountsHandler{AccountReader: reader}
}

// Handler prints every account.
func (h *ListAccountsHandler) Handler(ctx context.Context, p *prompt.Prompt, logData *logging.LogData) error {
	logData.AddData("accountCount", h.AccountReader.Len())
	h.AccountReader.DisplayAllAccounts(p.Out())
	return nil
}
