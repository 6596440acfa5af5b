package transaction

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/prompt"
)

// DepositHandler handles the "Deposit Money" menu entry.
type DepositHandler struct {
	Operator actionProcessor
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(op actionProcessor) *DepositHandler {
	return &DepositHandler{Operator: op}
}

// Handler reads an account number and amount and submits a Deposit action.
func (h *DepositHandler) Handler(ctx context.Context, p *prompt.Prompt, logData *logging.LogData) error {
	number, err := p.Int("Enter Account Number: ")
	if err != nil {
		return err
	}
	amount, err := p.Amount("Enter Deposit Amount: $")
	if err != nil {
		return err
	}
	logData.AddData("accountNumber", number)
	logData.AddData("amount", amount.String())

	action := &actions.Deposit{AccountNumber: number, Amount: amount}
	stopTimer := logData.AddTiming("depositMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()

	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		p.Println("Account not found.")
		return err
	case errors.Is(err, ledger.ErrInvalidAmount):
		p.Println("Invalid amount for deposit.")
		return err
	case err != nil:
		p.Println("Deposit could not be completed.")
		return err
	}

	logData.AddData("transactionId", action.TransactionID.String())
	p.Printf("Deposit successful. New balance: $%s\n", action.Balance.StringFixed(2))
	return nil
}
