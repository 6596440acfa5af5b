package transaction

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/prompt"
)

// WithdrawHandler handles the "Withdraw Money" menu entry.
type WithdrawHandler struct {
	Operator actionProcessor
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(op actionProcessor) *WithdrawHandler {
	return &WithdrawHandler{Operator: op}
}

// Handler reads an account number and amount and submits a Withdraw action.
func (h *WithdrawHandler) Handler(ctx context.Context, p *prompt.Prompt, logData *logging.LogData) error {
	number, err := p.Int("Enter Account Number: ")
	if err != nil {
		return err
	}
	amount, err := p.Amount("Enter Withdrawal Amount: $")
	if err != nil {
		return err
	}
	logData.AddData("accountNumber", number)
	logData.AddData("amount", amount.String())

	action := &actions.Withdraw{AccountNumber: number, Amount: amount}
	stopTimer := logData.AddTiming("withdrawMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()

	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		p.Println("Account not found.")
		return err
	case errors.Is(err, ledger.ErrInvalidAmount):
		p.Println("Invalid amount for withdrawal.")
		return err
	case errors.Is(err, ledger.ErrInsufficientFunds):
		p.Printf("Insufficient funds. Current balance: $%s\n", action.Balance.StringFixed(2))
		return err
	case err != nil:
		p.Println("Withdrawal could not be completed.")
		return err
	}

	logData.AddData("transactionId", action.TransactionID.String())
	p.Printf("Withdrawal successful. New balance: $%s\n", action.Balance.StringFixed(2))
	return nil
}
