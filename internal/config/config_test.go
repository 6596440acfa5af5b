package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	env, err := ProcessEnvironmentVariables(NewViper())

	require.NoError(t, err)
	assert.Equal(t, "Go Bank", env.BankName)
	assert.Equal(t, "Go Banking System", env.SystemName)
	assert.True(t, env.Seed)
	assert.Equal(t, 1, env.Workers)
	assert.Equal(t, logrus.ErrorLevel, env.LogLevel)
}

func TestProcessEnvironmentVariables_Env(t *testing.T) {
	t.Setenv("LEDGER_BANK_NAME", "Harbor Savings")
	t.Setenv("LEDGER_SYSTEM_NAME", "Harbor Console")
	t.Setenv("LEDGER_SEED", "false")
	t.Setenv("LEDGER_WORKERS", "4")
	t.Setenv("LEDGER_LOG_LEVEL", "debug")

	env, err := ProcessEnvironmentVariables(NewViper())

	require.NoError(t, err)
	assert.Equal(t, "Harbor Savings", env.BankName)
	assert.Equal(t, "Harbor Console", env.SystemName)
	assert.False(t, env.Seed)
	assert.Equal(t, 4, env.Workers)
	assert.Equal(t, logrus.DebugLevel, env.LogLevel)
}

func TestProcessEnvironmentVariables_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bank-name: File Bank\nworkers: 3\n"), 0o600))
	v := NewViper()
	v.Set(KeyConfigFile, path)

	env, err := ProcessEnvironmentVariables(v)

	require.NoError(t, err)
	assert.Equal(t, "File Bank", env.BankName)
	assert.Equal(t, 3, env.Workers)
}

func TestProcessEnvironmentVariables_MissingConfigFile(t *testing.T) {
	v := NewViper()
	v.Set(KeyConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := ProcessEnvironmentVariables(v)

	assert.Error(t, err)
}

func TestProcessEnvironmentVariables_BadLogLevel(t *testing.T) {
	t.Setenv("LEDGER_LOG_LEVEL", "loud")

	_, err := ProcessEnvironmentVariables(NewViper())

	assert.Error(t, err)
}

func TestProcessEnvironmentVariables_BadWorkers(t *testing.T) {
	t.Setenv("LEDGER_WORKERS", "0")

	_, err := ProcessEnvironmentVariables(NewViper())

	assert.ErrorContains(t, err, "workers")
}
