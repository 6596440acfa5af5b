package transaction

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/prompt"
)

// ListTransactionsHandler handles the "Display Transaction History" menu entry.
type ListTransactionsHandler struct {
	TransactionReader transactionReader
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(reader transactionReader) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionReader: reader}
}

// Handler prints the history of one account.
func (h *ListTransactionsHandler) Handler(ctx context.Context, p *prompt.Prompt, logData *logging.LogData) error {
	number, err := p.Int("Enter Account Number: ")
	if err != nil {
		return err
	}
	logData.AddData("accountNumber", number)

	err = h.TransactionReader.DisplayTransactions(p.Out(), number)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		p.Println("Account not found.")
	}
	return err
}
