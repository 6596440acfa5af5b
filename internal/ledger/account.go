package ledger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	defaultDepositDescription    = "Regular deposit"
	defaultWithdrawalDescription = "Regular withdrawal"
	initialDepositDescription    = "Initial deposit"
)

// Account holds a balance and the append-only history that produced it.
// Deposit and Withdraw are the only mutators.
type Account struct {
	mu           sync.Mutex
	number       int
	holder       string
	accountType  string
	balance      decimal.Decimal
	transactions []Transaction
}

// AccountSnapshot is a point-in-time copy of an account handed out by the Ledger.
type AccountSnapshot struct {
	Number       int
	Holder       string
	Type         string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// newAccount does not reject a negative initial deposit; it only logs
// the opening transaction when the deposit is positive.
func newAccount(number int, holder, accountType string, initialDeposit decimal.Decimal) *Account {
	a := &Account{
		number:      number,
		holder:      holder,
		accountType: accountType,
		balance:     initialDeposit,
	}
	if initialDeposit.IsPositive() {
		a.transactions = append(a.transactions, newTransaction(TransactionKindDeposit, initialDeposit, initialDepositDescription))
	}
	return a
}

// Deposit adds amount to the balance and returns the resulting balance.
func (a *Account) Deposit(amount decimal.Decimal, description string) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	receipt, err := a.deposit(amount, description)
	return receipt.Balance, err
}

// Withdraw removes amount from the balance and returns the resulting balance.
// On failure the unchanged balance is returned alongside the error.
func (a *Account) Withdraw(amount decimal.Decimal, description string) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	receipt, err := a.withdraw(amount, description)
	return receipt.Balance, err
}

// deposit and withdraw expect a.mu to be held.
func (a *Account) deposit(amount decimal.Decimal, description string) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{Balance: a.balance}, fmt.Errorf("deposit %s: %w", amount, ErrInvalidAmount)
	}
	if description == "" {
		description = defaultDepositDescription
	}

	tx := newTransaction(TransactionKindDeposit, amount, description)
	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, tx)
	return Receipt{TransactionID: tx.id, Balance: a.balance}, nil
}

func (a *Account) withdraw(amount decimal.Decimal, description string) (Receipt, error) {
	if !amount.IsPositive() {
		return Receipt{Balance: a.balance}, fmt.Errorf("withdraw %s: %w", amount, ErrInvalidAmount)
	}
	if a.balance.LessThan(amount) {
		return Receipt{Balance: a.balance}, fmt.Errorf("withdraw %s from balance %s: %w", amount, a.balance, ErrInsufficientFunds)
	}
	if description == "" {
		description = defaultWithdrawalDescription
	}

	tx := newTransaction(TransactionKindWithdraw, amount.Neg(), description)
	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, tx)
	return Receipt{TransactionID: tx.id, Balance: a.balance}, nil
}

// Number returns the account number.
func (a *Account) Number() int {
	return a.number
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Transactions returns a copy of the history in insertion order.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Transaction(nil), a.transactions...)
}

func (a *Account) snapshot() AccountSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AccountSnapshot{
		Number:       a.number,
		Holder:       a.holder,
		Type:         a.accountType,
		Balance:      a.balance,
		Transactions: append([]Transaction(nil), a.transactions...),
	}
}

// RenderInfo writes the account summary block.
func (a *Account) RenderInfo(w io.Writer) {
	s := a.snapshot()
	fmt.Fprintln(w, "\nAccount Information:")
	fmt.Fprintf(w, "Account Number: %d\n", s.Number)
	fmt.Fprintf(w, "Account Holder: %s\n", s.Holder)
	fmt.Fprintf(w, "Account Type: %s\n", s.Type)
	fmt.Fprintf(w, "Current Balance: $%s\n", s.Balance.StringFixed(2))
}

// RenderTransactions writes the full history, oldest first.
func (a *Account) RenderTransactions(w io.Writer) {
	s := a.snapshot()
	fmt.Fprintf(w, "\nTransaction History for Account #%d:\n", s.Number)
	fmt.Fprintf(w, "%-25s%-10s%-15s%s\n", "Date & Time", "Type", "Amount ($)", "Description")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	if len(s.Transactions) == 0 {
		fmt.Fprintln(w, "No transactions found.")
		return
	}
	for _, t := range s.Transactions {
		t.Render(w)
	}
}
