package account

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/prompt"
)

// DisplayAccountHandler handles the "Display Account Information" menu entry.
type DisplayAccountHandler struct {
	AccountReader accountReader
}

// NewDisplayAccountHandler creates a new DisplayAccountHandler.
func NewDisplayAccountHandler(reader accountReader) *DisplayAccountHandler {
	return &DisplayAccountHandler{AccountReader: reader}
}

// Handler prints the summary of one account.
func (h *DisplayAccountHandler) Handler(ctx context.Context, p *prompt.Prompt, logData *logging.LogData) error {
	number, err := p.Int("Enter Account Number: ")
	if err != nil {
		return err
	}
	logData.AddData("accountNumber", number)

	err = h.AccountReader.DisplayAccount(p.Out(), number)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		p.Println("Account not found.")
	}
	return err
}
