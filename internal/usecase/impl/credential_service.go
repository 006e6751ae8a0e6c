// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "herbal/internal/delivery/context"
	"herbal/internal/domain/entity"
	domainerrors "herbal/internal/domain/errors"
	"herbal/internal/domain/repository"
	"herbal/internal/domain/service"
	"herbal/internal/errors"
	"herbal/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	validate    *validator.Validate
	logger      *slog.Logger
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *credentialService) validInput(input *usecase.CredentialsInput) bool {
	return input != nil && srv.validate.Struct(input) == nil
}

// Register stores a new account for the given username.
//
// The existence check only short-circuits the expensive hash; uniqueness itself
// is decided by the store's atomic insert.
func (srv *credentialService) Register(ctx context.Context, input *usecase.CredentialsInput) (usecase.Outcome, error) {
	if !srv.validInput(input) {
		srv.log(ctx).Debug("Registration rejected, missing credentials")

		return usecase.OutcomeInvalidInput, nil
	}

	logger := srv.log(ctx).With(slog.String("username", input.Username))

	_, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		logger.Info("Registration rejected, username already exists")

		return usecase.OutcomeConflict, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return usecase.OutcomeUnknown, errors.Wrap(err, "failed to look up account during registration")
	}

	if err := ctx.Err(); err != nil {
		return usecase.OutcomeUnknown, errors.Wrap(err, "registration abandoned before hashing")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return usecase.OutcomeUnknown, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "failed to hash password during registration")
	}

	account := &entity.Account{
		Username:     input.Username,
		PasswordHash: passwordHash,
	}
	if err := srv.accountRepo.Insert(ctx, account); err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			logger.Info("Registration lost race against concurrent registration")

			return usecase.OutcomeConflict, nil
		}

		return usecase.OutcomeUnknown, errors.Wrap(err, "failed to insert account during registration")
	}

	logger.Info("Account registered", slog.Any("accountID", account.ID))

	return usecase.OutcomeCreated, nil
}

// Login verifies the password against the stored hash. No session is issued.
func (srv *credentialService) Login(ctx context.Context, input *usecase.CredentialsInput) (usecase.Outcome, error) {
	if !srv.validInput(input) {
		srv.log(ctx).Debug("Login rejected, missing credentials")

		return usecase.OutcomeInvalidInput, nil
	}

	logger := srv.log(ctx).With(slog.String("username", input.Username))

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		logger.Info("Login failed, unknown username")

		return usecase.OutcomeNotFound, nil
	}
	if err != nil {
		return usecase.OutcomeUnknown, errors.Wrap(err, "failed to look up account during login")
	}

	if err := ctx.Err(); err != nil {
		return usecase.OutcomeUnknown, errors.Wrap(err, "login abandoned before verification")
	}

	ok, err := srv.hasher.Check(input.Password, account.PasswordHash)
	if err != nil {
		logger.Error("Stored password hash could not be verified", slog.Any("error", err))

		return usecase.OutcomeUnknown, errors.Wrap(errors.Join(domainerrors.ErrPasswordHashFailed, err), "failed to verify password")
	}
	if !ok {
		logger.Info("Login failed, password mismatch")

		return usecase.OutcomeUnauthorized, nil
	}

	logger.Debug("Login successful")

	return usecase.OutcomeAuthenticated, nil
}
