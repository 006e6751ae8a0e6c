package command

import (
	"context"

	"herbal/internal/app"
	"herbal/internal/domain/lifecycle"
	"herbal/internal/errors"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the credential and plant HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}

			fxApp := fx.New(app.Options(cfg))
			if err := fxApp.Err(); err != nil {
				return errors.Wrap(err, "failed to build application")
			}

			startCtx, cancelStart := context.WithTimeout(cmd.Context(), lifecycle.DefaultTimeout)
			defer cancelStart()
			if err := fxApp.Start(startCtx); err != nil {
				return errors.Wrap(err, "failed to start application")
			}

			exitCode := 0
			select {
			case <-cmd.Context().Done():
			case sig := <-fxApp.Wait():
				exitCode = sig.ExitCode
			}

			stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			defer cancelStop()
			if err := fxApp.Stop(stopCtx); err != nil {
				return errors.Wrap(err, "failed to stop application")
			}
			if exitCode != 0 {
				return errors.Errorf("server exited with code %d", exitCode)
			}

			return nil
		},
	}
}
