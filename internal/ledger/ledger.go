// Package ledger is the in-memory account registry: accounts keyed by number,
// their balances, and the transaction history behind every balance change.
package ledger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

const ruleWidth = 80

// Ledger owns every Account. Accounts are reached by number only; callers
// get snapshots, never the live account.
type Ledger struct {
	name string

	mu       sync.RWMutex
	accounts map[int]*Account
	order    []int
}

// New creates an empty ledger.
func New(name string) *Ledger {
	return &Ledger{
		name:     name,
		accounts: make(map[int]*Account),
	}
}

// Name returns the bank name shown in listings.
func (l *Ledger) Name() string {
	return l.name
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// CreateAccount registers a new account. An existing account with the same
// number is left untouched and ErrDuplicateAccount is returned.
func (l *Ledger) CreateAccount(number int, holder, accountType string, initialDeposit decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.accounts[number]; exists {
		return fmt.Errorf("account %d: %w", number, ErrDuplicateAccount)
	}

	l.accounts[number] = newAccount(number, holder, accountType, initialDeposit)
	l.order = append(l.order, number)
	return nil
}

// Deposit credits the account. The receipt holds the balance after the
// attempt and, on success, the new transaction's ID.
func (l *Ledger) Deposit(number int, amount decimal.Decimal) (Receipt, error) {
	account, err := l.find(number)
	if err != nil {
		return Receipt{}, err
	}
	account.mu.Lock()
	defer account.mu.Unlock()
	return account.deposit(amount, defaultDepositDescription)
}

// Withdraw debits the account. The receipt holds the balance after the
// attempt and, on success, the new transaction's ID.
func (l *Ledger) Withdraw(number int, amount decimal.Decimal) (Receipt, error) {
	account, err := l.find(number)
	if err != nil {
		return Receipt{}, err
	}
	account.mu.Lock()
	defer account.mu.Unlock()
	return account.withdraw(amount, defaultWithdrawalDescription)
}

// Transfer withdraws amount from one account and deposits it into another.
// Both accounts stay locked, in ascending number order, for the whole pair,
// so either both records are written or neither is. A transfer to the same
// account writes a withdrawal and a deposit and leaves the balance as it was.
//
// A zero or negative amount succeeds without posting either leg; the
// returned receipt then reports the current balances and no transaction IDs.
func (l *Ledger) Transfer(from, to int, amount decimal.Decimal) (TransferReceipt, error) {
	source, err := l.find(from)
	if err != nil {
		return TransferReceipt{}, err
	}
	destination, err := l.find(to)
	if err != nil {
		return TransferReceipt{}, err
	}

	unlock := lockPair(source, destination)
	defer unlock()

	if !amount.IsPositive() {
		return TransferReceipt{
			Withdrawal: Receipt{Balance: source.balance},
			Deposit:    Receipt{Balance: destination.balance},
		}, nil
	}

	var receipt TransferReceipt
	receipt.Withdrawal, err = source.withdraw(amount, fmt.Sprintf("Transfer to account #%d", to))
	if err != nil {
		return receipt, err
	}
	// Cannot fail: amount is positive.
	receipt.Deposit, err = destination.deposit(amount, fmt.Sprintf("Transfer from account #%d", from))
	return receipt, err
}

func lockPair(a, b *Account) func() {
	if a == b {
		a.mu.Lock()
		return a.mu.Unlock
	}
	first, second := a, b
	if second.number < first.number {
		first, second = second, first
	}
	first.mu.Lock()
	second.mu.Lock()
	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

// Account returns a snapshot of one account.
func (l *Ledger) Account(number int) (AccountSnapshot, error) {
	account, err := l.find(number)
	if err != nil {
		return AccountSnapshot{}, err
	}
	return account.snapshot(), nil
}

// Accounts returns snapshots of every account in creation order.
func (l *Ledger) Accounts() []AccountSnapshot {
	l.mu.RLock()
	accounts := make([]*Account, len(l.order))
	for i, number := range l.order {
		accounts[i] = l.accounts[number]
	}
	l.mu.RUnlock()

	snapshots := make([]AccountSnapshot, len(accounts))
	for i, account := range accounts {
		snapshots[i] = account.snapshot()
	}
	return snapshots
}

// DisplayAccount writes the summary block of one account.
func (l *Ledger) DisplayAccount(w io.Writer, number int) error {
	account, err := l.find(number)
	if err != nil {
		return err
	}
	account.RenderInfo(w)
	return nil
}

// DisplayTransactions writes the history of one account, oldest first.
func (l *Ledger) DisplayTransactions(w io.Writer, number int) error {
	account, err := l.find(number)
	if err != nil {
		return err
	}
	account.RenderTransactions(w)
	return nil
}

// DisplayAllAccounts writes one row per account. An empty ledger prints a
// notice rather than failing.
func (l *Ledger) DisplayAllAccounts(w io.Writer) {
	fmt.Fprintf(w, "\n=== All Accounts at %s ===\n", l.name)

	accounts := l.Accounts()
	if len(accounts) == 0 {
		fmt.Fprintln(w, "No accounts found.")
		return
	}

	fmt.Fprintf(w, "%-15s%-25s%-15s%s\n", "Account No.", "Account Holder", "Account Type", "Balance ($)")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, a := range accounts {
		fmt.Fprintf(w, "%-15d%-25s%-15s%s\n", a.Number, a.Holder, a.Type, a.Balance.StringFixed(2))
	}
}

func (l *Ledger) find(number int) (*Account, error) {
	l.mu.RLock()
	account, ok := l.accounts[number]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("account %d: %w", number, ErrAccountNotFound)
	}
	return account, nil
}
