package account

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/prompt"
)

// CreateAccountHandler handles the "Create New Account" menu entry.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

func parseCreateAccountInput(p *prompt.Prompt) (*actions.CreateAccount, error) {
	number, err := p.Int("Enter Account Number: ")
	if err != nil {
		return nil, err
	}
	holder, err := p.Token("Enter Account Holder Name: ")
	if err != nil {
		return nil, err
	}
	accountType, err := p.Token("Enter Account Type (Savings/Checking): ")
	if err != nil {
		return nil, err
	}
	initialDeposit, err := p.Amount("Enter Initial Deposit Amount: $")
	if err != nil {
		return nil, err
	}

	return &actions.CreateAccount{
		AccountNumber:  number,
		Holder:         holder,
		Type:           accountType,
		InitialDeposit: initialDeposit,
	}, nil
}

// Handler reads the new account fields and submits a CreateAccount action.
func (h *CreateAccountHandler) Handler(ctx context.Context, p *prompt.Prompt, logData *logging.LogData) error {
	action, err := parseCreateAccountInput(p)
	if err != nil {
		return err
	}
	logData.AddData("accountNumber", action.AccountNumber)

	stopTimer := logData.AddTiming("createAccountMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()

	switch {
	case errors.Is(err, ledger.ErrDuplicateAccount):
		p.Printf("Account with number %d already exists.\n", action.AccountNumber)
		return err
	case err != nil:
		p.Println("Account could not be created.")
		return err
	}

	p.Println("Account created successfully.")
	return nil
}
