package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/ledger/internal/config"
)

// NewRootCmd builds the ledger command. Flags are bound to viper so each one
// can also come from LEDGER_* env vars or a config file.
func NewRootCmd(logger *logrus.Logger) *cobra.Command {
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:          "ledger",
		Short:        "Interactive in-memory account ledger",
		Long:         "ledger keeps accounts in memory and offers a numbered menu to create accounts, move money and print statements. Nothing is saved on exit.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ProcessEnvironmentVariables(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), env, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.String(config.KeyConfigFile, "", "config file (yaml, json or toml)")
	flags.String(config.KeyBankName, "Go Bank", "bank name shown in account listings")
	flags.String(config.KeySystemName, "Go Banking System", "title shown above the menu and in the farewell")
	flags.Bool(config.KeySeed, true, "start with the two demo accounts")
	flags.Int(config.KeyWorkers, 1, "operator workers applying ledger changes")
	flags.String(config.KeyLogLevel, "error", "log level (trace, debug, info, warn, error)")

	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(flags)

	return rootCmd
}
