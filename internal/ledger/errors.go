package ledger

import "errors"

var (
	// ErrInvalidAmount is returned when a deposit, withdrawal or transfer amount is not positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when creating an account whose number is taken.
	ErrDuplicateAccount = errors.New("account already exists")
)
