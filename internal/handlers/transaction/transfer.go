package transaction

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/prompt"
)

// TransferHandler handles the "Transfer Money" menu entry.
type TransferHandler struct {
	Operator actionProcessor
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(op actionProcessor) *TransferHandler {
	return &TransferHandler{Operator: op}
}

func parseTransferInput(p *prompt.Prompt) (*actions.Transfer, error) {
	from, err := p.Int("Enter From Account Number: ")
	if err != nil {
		return nil, err
	}
	to, err := p.Int("Enter To Account Number: ")
	if err != nil {
		return nil, err
	}
	amount, err := p.Amount("Enter Transfer Amount: $")
	if err != nil {
		return nil, err
	}

	return &actions.Transfer{
		FromAccount: from,
		ToAccount:   to,
		Amount:      amount,
	}, nil
}

// Handler reads both account numbers and an amount and submits a Transfer action.
func (h *TransferHandler) Handler(ctx context.Context, p *prompt.Prompt, logData *logging.LogData) error {
	action, err := parseTransferInput(p)
	if err != nil {
		return err
	}
	logData.AddData("fromAccount", action.FromAccount)
	logData.AddData("toAccount", action.ToAccount)
	logData.AddData("amount", action.Amount.String())

	stopTimer := logData.AddTiming("transferMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()

	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		p.Println("One or both accounts not found.")
		return err
	case errors.Is(err, ledger.ErrInsufficientFunds):
		p.Println("Insufficient funds for transfer.")
		return err
	case err != nil:
		p.Println("Transfer could not be completed.")
		return err
	}

	printTransferLegs(p, action.Receipt, logData)
	p.Println("Transfer completed successfully.")
	return nil
}

// printTransferLegs reports each leg the way a standalone withdrawal and
// deposit would. Legs are only skipped for a non-positive amount.
func printTransferLegs(p *prompt.Prompt, receipt ledger.TransferReceipt, logData *logging.LogData) {
	if !receipt.Withdrawal.Posted() {
		p.Println("Invalid amount for withdrawal.")
		p.Println("Invalid amount for deposit.")
		return
	}

	logData.AddData("withdrawalTransactionId", receipt.Withdrawal.TransactionID.String())
	logData.AddData("depositTransactionId", receipt.Deposit.TransactionID.String())
	p.Printf("Withdrawal successful. New balance: $%s\n", receipt.Withdrawal.Balance.StringFixed(2))
	p.Printf("Deposit successful. New balance: $%s\n", receipt.Deposit.Balance.StringFixed(2))
}
