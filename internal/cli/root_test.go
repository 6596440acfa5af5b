package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger/internal/logging"
)

// executeCommand runs the root command against a scripted stdin and returns stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logger := logging.SetupLogging()
	logger.SetOutput(io.Discard)

	root := NewRootCmd(logger)
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRoot_SeedsDemoAccounts(t *testing.T) {
	out, err := executeCommand(t, "7\n8\n")

	require.NoError(t, err)
	assert.Contains(t, out, "=== All Accounts at Go Bank ===")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "500.00")
	assert.Contains(t, out, "=== Go Banking System ===")
	assert.Contains(t, out, "Thank you for using Go Banking System. Goodbye!")
}

func TestRoot_NoSeed(t *testing.T) {
	out, err := executeCommand(t, "7\n8\n", "--seed=false", "--bank-name", "Harbor")

	require.NoError(t, err)
	assert.Contains(t, out, "=== All Accounts at Harbor ===\nNo accounts found.")
}

func TestRoot_DuplicateOfSeededAccount(t *testing.T) {
	out, err := executeCommand(t, "1 1001 Someone Savings 10 8")

	require.NoError(t, err)
	assert.Contains(t, out, "Account with number 1001 already exists.")
}

func TestRoot_EnvConfig(t *testing.T) {
	t.Setenv("LEDGER_BANK_NAME", "Env Bank")
	t.Setenv("LEDGER_SYSTEM_NAME", "Env System")

	out, err := executeCommand(t, "7\n8\n", "--workers", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "=== Env System ===")
	assert.Contains(t, out, "=== All Accounts at Env Bank ===")
	assert.Contains(t, out, "Thank you for using Env System. Goodbye!")
}

func TestRoot_InvalidWorkers(t *testing.T) {
	_, err := executeCommand(t, "8\n", "--workers", "0")

	assert.ErrorContains(t, err, "workers")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := executeCommand(t, "8\n", "extra")

	assert.Error(t, err)
}
