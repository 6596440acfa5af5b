package account

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger/internal/ledger"
	"github.com/carson-networks/ledger/internal/logging"
	"github.com/carson-networks/ledger/internal/operator/actions"
	"github.com/carson-networks/ledger/internal/prompt"
)

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// mockAccountReader is a mock for accountReader.
type mockAccountReader struct {
	mock.Mock
}

func (m *mockAccountReader) DisplayAccount(w io.Writer, number int) error {
	args := m.Called(w, number)
	return args.Error(0)
}

func (m *mockAccountReader) DisplayAllAccounts(w io.Writer) {
	m.Called(w)
}

func (m *mockAccountReader) Len() int {
	return m.Called().Int(0)
}

func createTestLogData() *logging.LogData {
	logger := logging.SetupLogging()
	logger.SetOutput(io.Discard)
	return logging.NewLogData(logger)
}

func newTestPrompt(input string) (*prompt.Prompt, *bytes.Buffer) {
	var out bytes.Buffer
	return prompt.New(strings.NewReader(input), &out), &out
}

// -- parseCreateAccountInput --

func TestParseCreateAccountInput_Valid(t *testing.T) {
	p, out := newTestPrompt("2001 Alice Savings 250.75")

	action, err := parseCreateAccountInput(p)

	assert.NoError(t, err)
	assert.Equal(t, 2001, action.AccountNumber)
	assert.Equal(t, "Alice", action.Holder)
	assert.Equal(t, "Savings", action.Type)
	assert.True(t, action.InitialDeposit.Equal(decimal.RequireFromString("250.75")))
	assert.Equal(t, "Enter Account Number: Enter Account Holder Name: "+
		"Enter Account Type (Savings/Checking): Enter Initial Deposit Amount: $", out.String())
}

func TestParseCreateAccountInput_BadNumber(t *testing.T) {
	p, _ := newTestPrompt("abc Alice Savings 1")

	_, err := parseCreateAccountInput(p)

	assert.ErrorIs(t, err, prompt.ErrInvalidInput)
}

// -- CreateAccountHandler --

func TestCreateAccount_Success(t *testing.T) {
	op := new(mockActionProcessor)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.CreateAccount) bool {
		return a.AccountNumber == 2001 && a.Holder == "Alice" && a.Type == "Checking" && a.InitialDeposit.IsZero()
	})).Return(nil)
	p, out := newTestPrompt("2001 Alice Checking 0")

	err := NewCreateAccountHandler(op).Handler(context.Background(), p, createTestLogData())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Account created successfully.\n")
	op.AssertExpectations(t)
}

func TestCreateAccount_Duplicate(t *testing.T) {
	op := new(mockActionProcessor)
	op.On("Process", mock.Anything, mock.Anything).
		Return(fmt.Errorf("account 1001: %w", ledger.ErrDuplicateAccount))
	p, out := newTestPrompt("1001 Bob Savings 5")

	err := NewCreateAccountHandler(op).Handler(context.Background(), p, createTestLogData())

	assert.ErrorIs(t, err, ledger.ErrDuplicateAccount)
	assert.Contains(t, out.String(), "Account with number 1001 already exists.\n")
	assert.NotContains(t, out.String(), "created successfully")
}

func TestCreateAccount_EOFMidway(t *testing.T) {
	op := new(mockActionProcessor)
	p, _ := newTestPrompt("1001 Bob")

	err := NewCreateAccountHandler(op).Handler(context.Background(), p, createTestLogData())

	assert.ErrorIs(t, err, io.EOF)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

// -- DisplayAccountHandler --

func TestDisplayAccount_Success(t *testing.T) {
	reader := new(mockAccountReader)
	reader.On("DisplayAccount", mock.Anything, 1001).Return(nil)
	p, out := newTestPrompt("1001")

	err := NewDisplayAccountHandler(reader).Handler(context.Background(), p, createTestLogData())

	assert.NoError(t, err)
	assert.NotContains(t, out.String(), "Account not found.")
	reader.AssertExpectations(t)
}

func TestDisplayAccount_NotFound(t *testing.T) {
	reader := new(mockAccountReader)
	reader.On("DisplayAccount", mock.Anything, 3).
		Return(fmt.Errorf("account 3: %w", ledger.ErrAccountNotFound))
	p, out := newTestPrompt("3")

	err := NewDisplayAccountHandler(reader).Handler(context.Background(), p, createTestLogData())

	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	assert.Contains(t, out.String(), "Account not found.\n")
}

// -- ListAccountsHandler --

func TestListAccounts_WritesTable(t *testing.T) {
	l := ledger.New("Test Bank")
	assert.NoError(t, l.CreateAccount(1001, "John", "Savings", decimal.NewFromInt(1000)))
	p, out := newTestPrompt("")

	err := NewListAccountsHandler(l).Handler(context.Background(), p, createTestLogData())

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "=== All Accounts at Test Bank ===")
	assert.Contains(t, out.String(), "1000.00")
}

func TestListAccounts_Empty(t *testing.T) {
	reader := new(mockAccountReader)
	reader.On("Len").Return(0)
	reader.On("DisplayAllAccounts", mock.Anything).Run(func(args mock.Arguments) {
		_, _ = io.WriteString(args.Get(0).(io.Writer), "No accounts found.\n")
	})
	p, out := newTestPrompt("")

	err := NewListAccountsHandler(reader).Handler(context.Background(), p, createTestLogData())

	assert.NoError(t, err)
	assert.Equal(t, "No accounts found.\n", out.String())
	reader.AssertExpectations(t)
}
