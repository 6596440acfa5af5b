package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Keys double as flag names; the env form is LEDGER_<KEY> with dashes as underscores.
const (
	KeyConfigFile = "config"
	KeyBankName   = "bank-name"
	KeySystemName = "system-name"
	KeySeed       = "seed"
	KeyWorkers    = "workers"
	KeyLogLevel   = "log-level"
)

type Config struct {
	BankName   string
	SystemName string
	Seed       bool
	Workers    int
	LogLevel   logrus.Level
}

// NewViper returns a viper instance with the defaults and env binding in place.
// Callers bind flags on top of it before ProcessEnvironmentVariables.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// In all cases the default behavior should be the interactive demo
	v.SetDefault(KeyBankName, "Go Bank")
	v.SetDefault(KeySystemName, "Go Banking System")
	v.SetDefault(KeySeed, true)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyLogLevel, "error")

	return v
}

// ProcessEnvironmentVariables reads the optional config file and returns the
// validated Config.
func ProcessEnvironmentVariables(v *viper.Viper) (*Config, error) {
	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	env := Config{
		BankName:   v.GetString(KeyBankName),
		SystemName: v.GetString(KeySystemName),
		Seed:       v.GetBool(KeySeed),
		Workers:    v.GetInt(KeyWorkers),
		LogLevel:   level,
	}

	if env.Workers < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", KeyWorkers, env.Workers)
	}
	if strings.TrimSpace(env.BankName) == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyBankName)
	}
	if strings.TrimSpace(env.SystemName) == "" {
		return nil, fmt.Errorf("%s must not be empty", KeySystemName)
	}

	return &env, nil
}
