package console

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger/internal/handlers/account"
	"github.com/carson-networks/ledger/internal/handlers/transaction"
	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator"
	"github.com/carson-networks/ledger/internal/prompt"
)

// Console serves the banking menu over a pair of streams. Title heads the
// menu and the farewell; the ledger's own name is used for listings.
type Console struct {
	Title    string
	Logger   *logrus.Logger
	Ledger   *ledger.Ledger
	Operator *operator.OperatorDelegator
	In       io.Reader
	Out      io.Writer
}

// Serve runs the menu until Exit, end of input or a read error.
func (c *Console) Serve(ctx context.Context) error {
	createAccount := account.NewCreateAccountHandler(c.Operator)
	displayAccount := account.NewDisplayAccountHandler(c.Ledger)
	listAccounts := account.NewListAccountsHandler(c.Ledger)
	deposit := transaction.NewDepositHandler(c.Operator)
	withdraw := transaction.NewWithdrawHandler(c.Operator)
	transfer := transaction.NewTransferHandler(c.Operator)
	listTransactions := transaction.NewListTransactionsHandler(c.Ledger)

	menu := prompt.Menu{
		Title: fmt.Sprintf("=== %s ===", c.Title),
		Items: []prompt.Item{
			{Label: "Create New Account", Handler: logging.LoggingWrapper("CreateAccount", c.Logger, createAccount.Handler)},
			{Label: "Display Account Information", Handler: logging.LoggingWrapper("DisplayAccount", c.Logger, displayAccount.Handler)},
			{Label: "Deposit Money", Handler: logging.LoggingWrapper("Deposit", c.Logger, deposit.Handler)},
			{Label: "Withdraw Money", Handler: logging.LoggingWrapper("Withdraw", c.Logger, withdraw.Handler)},
			{Label: "Transfer Money", Handler: logging.LoggingWrapper("Transfer", c.Logger, transfer.Handler)},
			{Label: "Display Transaction History", Handler: logging.LoggingWrapper("ListTransactions", c.Logger, listTransactions.Handler)},
			{Label: "Display All Accounts", Handler: logging.LoggingWrapper("ListAccounts", c.Logger, listAccounts.Handler)},
		},
		Farewell: fmt.Sprintf("Thank you for using %s. Goodbye!", c.Title),
	}

	c.Logger.Info("Console.Serve.listening")
	err := menu.Run(ctx, prompt.New(c.In, c.Out))
	if err != nil {
		c.Logger.WithError(err).Error("Console.Serve.read error")
	}
	c.Logger.Info("Console.Serve.shutting down")
	return err
}
