// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// Outcome classifies the result of a credential operation. Outcomes are expected
// control flow; unexpected failures are reported through the accompanying error.
type Outcome int

const (
	// OutcomeUnknown accompanies a non-nil error and carries no meaning.
	OutcomeUnknown Outcome = iota
	// OutcomeInvalidInput means a required field was missing or empty.
	OutcomeInvalidInput
	// OutcomeConflict means the username is already registered.
	OutcomeConflict
	// OutcomeNotFound means no account holds the username.
	OutcomeNotFound
	// OutcomeUnauthorized means the password did not match the stored hash.
	OutcomeUnauthorized
	// OutcomeCreated means a new account was stored.
	OutcomeCreated
	// OutcomeAuthenticated means the password matched.
	OutcomeAuthenticated
)

var outcomeNames = map[Outcome]string{
	OutcomeUnknown:       "unknown",
	OutcomeInvalidInput:  "invalid_input",
	OutcomeConflict:      "conflict",
	OutcomeNotFound:      "not_found",
	OutcomeUnauthorized:  "unauthorized",
	OutcomeCreated:       "created",
	OutcomeAuthenticated: "authenticated",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}

	return "unknown"
}

// --- Input DTOs ---

// CredentialsInput is the body of both register and login requests.
// Empty strings count as missing.
type CredentialsInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CredentialUsecase defines the register and login operations.
// This is the contract that the delivery layer depends on.
type CredentialUsecase interface {
	Register(ctx context.Context, input *CredentialsInput) (Outcome, error)
	Login(ctx context.Context, input *CredentialsInput) (Outcome, error)
}
