// Package command contains the CLI command constructors.
package command

import (
	"context"
	"log/slog"

	"herbal/config"
	"herbal/internal/errors"
	logs "herbal/internal/infra/log"

	"github.com/spf13/cobra"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	var configDir string
	cmd := &cobra.Command{
		Use:          "herbal [command] [flags]",
		Short:        "Credential and plant catalog backend",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFile(configDir)
			if err != nil {
				return errors.Wrap(err, "failed to load configuration")
			}
			logger, err := logs.New(logs.Params{Config: cfg})
			if err != nil {
				return errors.Wrap(err, "failed to build logger")
			}
			slog.SetDefault(logger)
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configDir,
		"config", "c",
		"",
		"directory containing config.yaml",
	)

	cmd.AddCommand(
		serveCommand(),
		migrateCommand(),
		accountCommand(),
	)

	return cmd
}

func loadConfigFile(dir string) (*config.Config, error) {
	if dir == "" {
		return config.New()
	}

	return config.Load(dir)
}
