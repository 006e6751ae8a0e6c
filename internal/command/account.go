package command

import (
	"context"
	"log/slog"

	"herbal/config"
	"herbal/internal/domain/repository"
	"herbal/internal/errors"
	"herbal/internal/infra/auth"
	"herbal/internal/infra/persistence/postgres"
	"herbal/internal/usecase"
	"herbal/internal/usecase/impl"

	"github.com/spf13/cobra"
)

func accountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account commands",
	}
	cmd.AddCommand(
		accountRegisterCommand(),
		accountVerifyCommand(),
	)

	return cmd
}

func accountRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register USERNAME",
		Short: "Register an account",
		Long: "Registers USERNAME through the same rules as POST /register. The password\n" +
			"may be provided via stdin or through the interactive prompt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCredentials(cmd, args[0], func(ctx context.Context, uc usecase.CredentialUsecase, input *usecase.CredentialsInput) error {
				outcome, err := uc.Register(ctx, input)
				if err != nil {
					return err
				}
				if outcome != usecase.OutcomeCreated {
					return errors.Errorf("registration refused: %s", outcome)
				}
				slog.InfoContext(ctx, "Account registered", slog.String("username", input.Username))

				return nil
			})
		},
	}
}

func accountVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify USERNAME",
		Short: "Check a password against a stored account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCredentials(cmd, args[0], func(ctx context.Context, uc usecase.CredentialUsecase, input *usecase.CredentialsInput) error {
				outcome, err := uc.Login(ctx, input)
				if err != nil {
					return err
				}
				if outcome != usecase.OutcomeAuthenticated {
					return errors.Errorf("verification failed: %s", outcome)
				}
				slog.InfoContext(ctx, "Password verified", slog.String("username", input.Username))

				return nil
			})
		},
	}
}

type credentialAction func(ctx context.Context, uc usecase.CredentialUsecase, input *usecase.CredentialsInput) error

// withCredentials prompts for the password and runs action against the configured store.
func withCredentials(cmd *cobra.Command, username string, action credentialAction) (runErr error) {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger := slog.Default()

	accountRepo, closeRepo, err := openAccountRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}()

	passwd, err := prompt("password: ", true)
	if err != nil {
		return errors.Wrap(err, "failed to read password")
	}

	uc := impl.NewCredentialService(impl.CredentialServiceParams{
		AccountRepo: accountRepo,
		Hasher:      auth.NewBcryptHasher(cfg),
		Logger:      logger,
	})

	return action(cmd.Context(), uc, &usecase.CredentialsInput{
		Username: username,
		Password: string(passwd),
	})
}

// errVolatileStore is returned for stores that do not outlive the command.
var errVolatileStore = errors.New("account commands require a persistent storage driver")

func openAccountRepository(cfg *config.Config, logger *slog.Logger) (repository.AccountRepository, func() error, error) {
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return nil, nil, errors.Wrapf(errVolatileStore, "storage.driver is %q", cfg.Storage.Driver)
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return postgres.NewAccountRepository(db), sqlDB.Close, nil
}
